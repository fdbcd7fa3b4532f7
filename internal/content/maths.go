package content

import (
	"fmt"
	"math/rand"

	"ecoleludique/internal/game"
)

// numberRange is the inclusive operand range a school period works with.
type numberRange struct {
	Min int
	Max int
}

var periodRanges = map[int]numberRange{
	1: {Min: 0, Max: 20},
	2: {Min: 0, Max: 60},
	3: {Min: 0, Max: 69},
}

// rangeFor maps a school period to its number range. An unknown period is
// a configuration error, not a gameplay outcome.
func rangeFor(period int) (numberRange, error) {
	r, ok := periodRanges[period]
	if !ok {
		return numberRange{}, fmt.Errorf("%w: no number range for period %d", game.ErrInvalidConfiguration, period)
	}
	return r, nil
}

// checkPeriod rejects periods that have no content tables.
func checkPeriod(period int) error {
	_, err := rangeFor(period)
	return err
}

func (r numberRange) random() int {
	return r.Min + rand.Intn(r.Max-r.Min+1)
}

// ArithmeticProvider generates addition and subtraction prompts with
// operands drawn from the period's range. Operands are ordered largest
// first so subtractions never go negative.
type ArithmeticProvider struct{}

func (ArithmeticProvider) NextPrompt(previousTheme string, period int) (*game.Prompt, error) {
	r, err := rangeFor(period)
	if err != nil {
		return nil, err
	}

	a, b := r.random(), r.random()
	if a < b {
		a, b = b, a
	}

	op := "+"
	result := a + b
	if rand.Intn(2) == 1 {
		op = "-"
		result = a - b
	}

	return &game.Prompt{
		Kind: game.KindArithmetic,
		Items: []game.Item{
			{ID: "a", Display: fmt.Sprintf("%d", a), Value: a},
			{ID: "b", Display: fmt.Sprintf("%d", b), Value: b},
		},
		Answer: game.Answer{Value: result, Operator: op},
	}, nil
}

// OrderingProvider generates a shuffled sequence of distinct numbers to
// be sorted ascending or descending.
type OrderingProvider struct {
	Count int
}

func (p OrderingProvider) NextPrompt(previousTheme string, period int) (*game.Prompt, error) {
	r, err := rangeFor(period)
	if err != nil {
		return nil, err
	}

	count := p.Count
	if count <= 0 {
		count = 6
	}

	seen := make(map[int]bool, count)
	values := make([]int, 0, count)
	for len(values) < count {
		n := r.random()
		if seen[n] {
			continue
		}
		seen[n] = true
		values = append(values, n)
	}

	items := make([]game.Item, 0, count)
	sequence := make([]string, 0, count)
	for i, v := range values {
		id := fmt.Sprintf("n%d", i)
		items = append(items, game.Item{ID: id, Display: fmt.Sprintf("%d", v), Value: v})
		sequence = append(sequence, id)
	}

	order := game.OrderAsc
	if rand.Intn(2) == 1 {
		order = game.OrderDesc
	}

	return &game.Prompt{
		Kind:  game.KindOrdering,
		Items: items,
		Order: order,
		Start: map[string][]string{game.SlotSequence: sequence},
	}, nil
}

// ComparisonProvider generates two numbers to be compared with <, > or =.
type ComparisonProvider struct{}

func (ComparisonProvider) NextPrompt(previousTheme string, period int) (*game.Prompt, error) {
	r, err := rangeFor(period)
	if err != nil {
		return nil, err
	}

	a, b := r.random(), r.random()
	op := "="
	switch {
	case a < b:
		op = "<"
	case a > b:
		op = ">"
	}

	return &game.Prompt{
		Kind: game.KindComparison,
		Items: []game.Item{
			{ID: "a", Display: fmt.Sprintf("%d", a), Value: a},
			{ID: "b", Display: fmt.Sprintf("%d", b), Value: b},
		},
		Answer: game.Answer{Operator: op},
	}, nil
}

// ClockProvider generates an analog clock time to read: hours on the
// 1..12 dial, minutes in five minute steps.
type ClockProvider struct{}

func (ClockProvider) NextPrompt(previousTheme string, period int) (*game.Prompt, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}

	hours := 1 + rand.Intn(12)
	minutes := 5 * rand.Intn(12)

	return &game.Prompt{
		Kind:   game.KindClock,
		Answer: game.Answer{Hours: hours, Minutes: minutes},
	}, nil
}
