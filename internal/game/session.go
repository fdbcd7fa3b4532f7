package game

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// Phase is the state of a session's round lifecycle.
type Phase string

const (
	PhaseLoading       Phase = "loading"
	PhaseAwaitingInput Phase = "awaiting_input"
	PhaseValidating    Phase = "validating"
	PhaseCorrect       Phase = "correct"
	PhaseIncorrect     Phase = "incorrect"
)

// DefaultAdvanceDelay is how long the positive feedback stays on screen
// before a fresh prompt replaces it.
const DefaultAdvanceDelay = 2 * time.Second

const (
	feedbackCorrect   = "Bravo ! Bonne réponse 🎉"
	feedbackIncorrect = "Ce n'est pas correct. Essaie encore !"
	feedbackLoadError = "Une erreur s'est produite. Réessaie plus tard."
)

// Provider produces a fresh prompt for each round. The previous theme is
// passed so providers can avoid repeating it back to back.
type Provider interface {
	NextPrompt(previousTheme string, period int) (*Prompt, error)
}

// Attempt is one submit outcome to be counted against the student's
// statistics.
type Attempt struct {
	StudentID string
	Period    int
	Subject   string
	Game      string
	Correct   bool
}

// Recorder persists attempt outcomes. Recording is a best-effort side
// channel: the session never blocks gameplay on it.
type Recorder interface {
	RecordAttempt(ctx context.Context, attempt Attempt) error
}

// Config assembles a session. The student identity is passed explicitly
// by construction; there is no ambient lookup.
type Config struct {
	StudentID string
	Period    int
	Subject   string
	Game      string

	Provider  Provider
	Validator Validator
	Recorder  Recorder

	// OnCorrect is invoked exactly once per correct verdict, never on an
	// incorrect one. Used by the surrounding page for its celebration
	// animation.
	OnCorrect func()

	// AdvanceDelay overrides DefaultAdvanceDelay when positive.
	AdvanceDelay time.Duration

	// OnRecordError receives the final error after persistence retries
	// are exhausted. Defaults to logging.
	OnRecordError func(error)
}

// State is a point-in-time snapshot of a session, safe to render.
type State struct {
	Phase    Phase
	Feedback string
	Prompt   *Prompt
	Slots    map[string][]string
	Texts    map[string]string
	Pairs    []Pair
}

// Session drives one game's round lifecycle:
//
//	loading -> awaiting_input -> validating -> correct | incorrect
//
// An incorrect verdict returns to awaiting_input on the same prompt; a
// correct one schedules a fresh prompt after a fixed delay. There is no
// retry limit and no terminal state; the session loops until Close.
type Session struct {
	mu sync.Mutex

	studentID string
	period    int
	subject   string
	game      string

	provider      Provider
	validator     Validator
	recorder      Recorder
	onCorrect     func()
	onRecordError func(error)
	advanceDelay  time.Duration

	prompt   *Prompt
	draft    *Draft
	phase    Phase
	feedback string

	timer  *time.Timer
	closed bool
}

// NewSession creates a session and loads its first round.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Provider == nil || cfg.Validator == nil {
		return nil, errors.New("game: provider and validator are required")
	}

	delay := cfg.AdvanceDelay
	if delay <= 0 {
		delay = DefaultAdvanceDelay
	}

	s := &Session{
		studentID:     cfg.StudentID,
		period:        cfg.Period,
		subject:       cfg.Subject,
		game:          cfg.Game,
		provider:      cfg.Provider,
		validator:     cfg.Validator,
		recorder:      cfg.Recorder,
		onCorrect:     cfg.OnCorrect,
		onRecordError: cfg.OnRecordError,
		advanceDelay:  delay,
		draft:         NewDraft(),
		phase:         PhaseLoading,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.startRound(""); err != nil {
		return nil, err
	}
	return s, nil
}

// startRound clears the draft, generates a fresh prompt and initializes
// the draft for it. The clear happens before generation so a provider
// failure can never leave stale item references behind. Callers hold mu.
func (s *Session) startRound(previousTheme string) error {
	s.phase = PhaseLoading
	s.draft.Clear()

	p, err := s.provider.NextPrompt(previousTheme, s.period)
	if err != nil {
		return err
	}

	s.prompt = p
	s.draft.Init(p)
	s.feedback = ""
	s.phase = PhaseAwaitingInput
	return nil
}

// Move relocates one item between draft slots.
func (s *Session) Move(src, dst, itemID string, pos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseAwaitingInput {
		return ErrNotAcceptingInput
	}
	s.draft.ApplyMove(src, dst, itemID, pos)
	return nil
}

// SetFreeText stores a raw text answer.
func (s *Session) SetFreeText(slot, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseAwaitingInput {
		return ErrNotAcceptingInput
	}
	s.draft.SetFreeText(slot, text)
	return nil
}

// Connect records a matching pair.
func (s *Session) Connect(left, right string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseAwaitingInput {
		return ErrNotAcceptingInput
	}
	s.draft.Connect(left, right)
	return nil
}

// ClearPairs removes every matching pair ("Annuler").
func (s *Session) ClearPairs() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseAwaitingInput {
		return ErrNotAcceptingInput
	}
	s.draft.ClearPairs()
	return nil
}

// Submit validates the draft. Validation is synchronous; persistence of
// the attempt is an asynchronous best-effort side effect that never
// blocks the state transition. Malformed input is reported as an error
// and is not counted as an attempt.
func (s *Session) Submit(ctx context.Context) (Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAwaitingInput {
		return Verdict{}, ErrNotAcceptingInput
	}

	s.phase = PhaseValidating
	verdict, err := s.validator.Validate(s.prompt, s.draft)
	if err != nil {
		var malformed *MalformedInputError
		if errors.As(err, &malformed) {
			s.feedback = malformed.Message
		}
		s.phase = PhaseAwaitingInput
		return Verdict{}, err
	}

	s.recordAttempt(verdict.Correct)

	if verdict.Correct {
		s.phase = PhaseCorrect
		s.feedback = feedbackCorrect
		if s.onCorrect != nil {
			s.onCorrect()
		}
		previous := s.prompt.Theme
		s.timer = time.AfterFunc(s.advanceDelay, func() { s.advance(previous) })
		return verdict, nil
	}

	if s.prompt.Kind == KindMatching {
		s.draft.KeepPairs(verdict.CorrectPairs)
	}
	s.phase = PhaseAwaitingInput
	s.feedback = feedbackIncorrect
	return verdict, nil
}

// recordAttempt fires the persistence call on its own goroutine. An
// in-flight call is abandoned if the process goes away; the worst case is
// an undercounted statistic. Callers hold mu.
func (s *Session) recordAttempt(correct bool) {
	if s.recorder == nil {
		return
	}

	attempt := Attempt{
		StudentID: s.studentID,
		Period:    s.period,
		Subject:   s.subject,
		Game:      s.game,
		Correct:   correct,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.recorder.RecordAttempt(ctx, attempt); err != nil {
			if s.onRecordError != nil {
				s.onRecordError(err)
				return
			}
			log.Printf("Error recording attempt for student %s: %v", attempt.StudentID, err)
		}
	}()
}

// advance moves from the correct phase to a fresh round once the
// feedback delay has elapsed. A failed reload is retried after the same
// delay so the session never strands in the loading phase.
func (s *Session) advance(previousTheme string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || (s.phase != PhaseCorrect && s.phase != PhaseLoading) {
		return
	}

	if err := s.startRound(previousTheme); err != nil {
		log.Printf("Error loading next round: %v", err)
		s.feedback = feedbackLoadError
		s.timer = time.AfterFunc(s.advanceDelay, func() { s.advance(previousTheme) })
	}
}

// State returns a snapshot of the session. The prompt pointer is shared:
// prompts are immutable once generated.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Phase:    s.phase,
		Feedback: s.feedback,
		Prompt:   s.prompt,
		Slots:    s.draft.Slots(),
		Texts:    s.draft.Texts(),
		Pairs:    s.draft.Pairs(),
	}
}

// Close stops the advance timer. The session accepts no input afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.phase = PhaseLoading
	if s.timer != nil {
		s.timer.Stop()
	}
}
