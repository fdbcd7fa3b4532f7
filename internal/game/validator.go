package game

import (
	"sort"
	"strconv"
	"strings"
)

// Verdict is the outcome of validating a draft against its prompt.
type Verdict struct {
	Correct bool
	// CorrectPairs is the subset of draft pairings that are individually
	// right. Only set by the pairing validator; the session uses it to
	// prune the draft after an incorrect submit.
	CorrectPairs []Pair
}

// Validator decides correctness of a completed draft against its prompt.
// Implementations are pure: no state, no side effects.
type Validator interface {
	Validate(p *Prompt, d *Draft) (Verdict, error)
}

// SetMembershipValidator checks classification prompts: every item placed
// in category C must carry ground-truth label C, and every item must have
// left the tray.
type SetMembershipValidator struct{}

func (SetMembershipValidator) Validate(p *Prompt, d *Draft) (Verdict, error) {
	if len(d.Slot(SlotTray)) > 0 {
		return Verdict{}, nil
	}

	placed := 0
	for _, cat := range p.Categories {
		for _, id := range d.Slot(cat.Name) {
			it, ok := p.Item(id)
			if !ok || it.Label != cat.Name {
				return Verdict{}, nil
			}
			placed++
		}
	}

	return Verdict{Correct: placed == len(p.Items)}, nil
}

// PairingValidator checks matching ("relier") prompts. Each pairing is
// judged independently so that correct pairs can be retained across
// retries. A connection holds a right element ID; it is judged by the
// value that element displays, so two elements showing the same
// conjugation are interchangeable.
type PairingValidator struct{}

func (PairingValidator) Validate(p *Prompt, d *Draft) (Verdict, error) {
	rightValues := make(map[string]string, len(p.Right))
	for _, it := range p.Right {
		rightValues[it.ID] = it.Display
	}

	pairs := d.Pairs()

	var correct []Pair
	for _, pr := range pairs {
		want, ok := p.Pairs[pr.Left]
		if !ok {
			continue
		}
		if got, ok := rightValues[pr.Right]; ok && got == want {
			correct = append(correct, pr)
		}
	}

	return Verdict{
		Correct:      len(pairs) == len(p.Items) && len(correct) == len(pairs),
		CorrectPairs: correct,
	}, nil
}

// TotalOrderValidator checks ordering prompts: the draft sequence must
// equal, element for element, the canonical sort of the same numbers in
// the prompt's direction.
type TotalOrderValidator struct{}

func (TotalOrderValidator) Validate(p *Prompt, d *Draft) (Verdict, error) {
	seq := d.Slot(SlotSequence)
	if len(seq) != len(p.Items) {
		return Verdict{}, nil
	}

	got := make([]int, 0, len(seq))
	for _, id := range seq {
		it, ok := p.Item(id)
		if !ok {
			return Verdict{}, nil
		}
		got = append(got, it.Value)
	}

	want := make([]int, 0, len(p.Items))
	for _, it := range p.Items {
		want = append(want, it.Value)
	}
	sort.SliceStable(want, func(i, j int) bool {
		if p.Order == OrderDesc {
			return want[i] > want[j]
		}
		return want[i] < want[j]
	})

	for i := range want {
		if got[i] != want[i] {
			return Verdict{}, nil
		}
	}
	return Verdict{Correct: true}, nil
}

// ArithmeticValidator checks a single numeric free-text answer against
// the precomputed result.
type ArithmeticValidator struct{}

func (ArithmeticValidator) Validate(p *Prompt, d *Draft) (Verdict, error) {
	raw := strings.TrimSpace(d.Text(SlotAnswer))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Verdict{}, &MalformedInputError{
			Slot:    SlotAnswer,
			Input:   raw,
			Message: "Veuillez entrer un nombre valide.",
		}
	}
	return Verdict{Correct: n == p.Answer.Value}, nil
}

// ClockValidator checks an "HH:MM" answer against the displayed time.
type ClockValidator struct{}

func (ClockValidator) Validate(p *Prompt, d *Draft) (Verdict, error) {
	raw := strings.TrimSpace(d.Text(SlotTime))
	malformed := &MalformedInputError{
		Slot:    SlotTime,
		Input:   raw,
		Message: "Veuillez entrer une heure au format HH:MM.",
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return Verdict{}, malformed
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Verdict{}, malformed
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Verdict{}, malformed
	}

	return Verdict{Correct: hours == p.Answer.Hours && minutes == p.Answer.Minutes}, nil
}

// ComparisonValidator checks the comparison sign placed between two
// numbers.
type ComparisonValidator struct{}

func (ComparisonValidator) Validate(p *Prompt, d *Draft) (Verdict, error) {
	sign := strings.TrimSpace(d.Text(SlotSign))
	switch sign {
	case "<", ">", "=":
		return Verdict{Correct: sign == p.Answer.Operator}, nil
	default:
		return Verdict{}, &MalformedInputError{
			Slot:    SlotSign,
			Input:   sign,
			Message: "Veuillez sélectionner un signe pour valider.",
		}
	}
}

// FillInValidator checks fill-in prompts: every blank slot must hold its
// expected content, compared case-insensitively. Missing or wrong letters
// are an incorrect answer, not malformed input.
type FillInValidator struct{}

func (FillInValidator) Validate(p *Prompt, d *Draft) (Verdict, error) {
	for slot, want := range p.Blanks {
		got := strings.ToUpper(strings.TrimSpace(d.Text(slot)))
		if got != strings.ToUpper(want) {
			return Verdict{}, nil
		}
	}
	return Verdict{Correct: true}, nil
}

// SentenceValidator checks sentence-correction prompts: the reconstructed
// sentence must equal one member of the fixed accepted set, exactly
// (case, spaces and punctuation included).
type SentenceValidator struct{}

func (SentenceValidator) Validate(p *Prompt, d *Draft) (Verdict, error) {
	got := d.Text(SlotSentence)
	for _, want := range p.Accepted {
		if got == want {
			return Verdict{Correct: true}, nil
		}
	}
	return Verdict{}, nil
}
