package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns arithmetic prompts and remembers the themes it was
// asked to avoid.
type stubProvider struct {
	mu       sync.Mutex
	calls    int
	previous []string
	err      error
	theme    string
}

func (p *stubProvider) NextPrompt(previousTheme string, period int) (*Prompt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.previous = append(p.previous, previousTheme)
	if p.err != nil {
		return nil, p.err
	}
	return &Prompt{
		Kind:   KindArithmetic,
		Theme:  p.theme,
		Items:  []Item{{ID: "a", Value: 5}, {ID: "b", Value: 3}},
		Answer: Answer{Value: 8, Operator: "+"},
	}, nil
}

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// stubRecorder counts attempts, optionally failing the first n calls.
type stubRecorder struct {
	mu        sync.Mutex
	attempts  []Attempt
	failFirst int
}

func (r *stubRecorder) RecordAttempt(ctx context.Context, attempt Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFirst > 0 {
		r.failFirst--
		return errors.New("database unavailable")
	}
	r.attempts = append(r.attempts, attempt)
	return nil
}

func (r *stubRecorder) recorded() []Attempt {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Attempt, len(r.attempts))
	copy(out, r.attempts)
	return out
}

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	if cfg.Provider == nil {
		cfg.Provider = &stubProvider{}
	}
	if cfg.Validator == nil {
		cfg.Validator = ArithmeticValidator{}
	}
	if cfg.AdvanceDelay == 0 {
		cfg.AdvanceDelay = 20 * time.Millisecond
	}
	s, err := NewSession(cfg)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNewSessionLoadsFirstRound(t *testing.T) {
	provider := &stubProvider{}
	s := newTestSession(t, Config{Provider: provider})

	state := s.State()
	assert.Equal(t, PhaseAwaitingInput, state.Phase)
	assert.NotNil(t, state.Prompt)
	assert.Empty(t, state.Feedback)
	assert.Equal(t, 1, provider.callCount())
	assert.Equal(t, []string{""}, provider.previous)
}

func TestNewSessionProviderFailure(t *testing.T) {
	_, err := NewSession(Config{
		Provider:  &stubProvider{err: errors.New("no content")},
		Validator: ArithmeticValidator{},
	})
	require.Error(t, err)
}

func TestSubmitCorrectTransitionsAndAdvances(t *testing.T) {
	provider := &stubProvider{theme: "animaux"}
	s := newTestSession(t, Config{Provider: provider})

	require.NoError(t, s.SetFreeText(SlotAnswer, "8"))
	verdict, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, verdict.Correct)

	state := s.State()
	assert.Equal(t, PhaseCorrect, state.Phase)
	assert.Equal(t, feedbackCorrect, state.Feedback)

	// No input is accepted while the positive feedback is showing.
	assert.ErrorIs(t, s.SetFreeText(SlotAnswer, "9"), ErrNotAcceptingInput)
	_, err = s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotAcceptingInput)

	// After the delay a fresh prompt replaces the feedback, avoiding the
	// previous theme.
	assert.Eventually(t, func() bool {
		return s.State().Phase == PhaseAwaitingInput
	}, time.Second, 5*time.Millisecond)

	state = s.State()
	assert.Empty(t, state.Feedback)
	assert.Empty(t, state.Texts[SlotAnswer])
	assert.Equal(t, 2, provider.callCount())
	assert.Equal(t, []string{"", "animaux"}, provider.previous)
}

func TestSubmitIncorrectKeepsPrompt(t *testing.T) {
	provider := &stubProvider{}
	s := newTestSession(t, Config{Provider: provider})

	before := s.State().Prompt
	require.NoError(t, s.SetFreeText(SlotAnswer, "7"))
	verdict, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.False(t, verdict.Correct)

	state := s.State()
	assert.Equal(t, PhaseAwaitingInput, state.Phase)
	assert.Equal(t, feedbackIncorrect, state.Feedback)
	assert.Same(t, before, state.Prompt, "an incorrect answer must not change the prompt")
	assert.Equal(t, 1, provider.callCount())

	// The student retries on the same prompt.
	require.NoError(t, s.SetFreeText(SlotAnswer, "8"))
	verdict, err = s.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, verdict.Correct)
}

func TestSubmitMalformedInputIsNotAnAttempt(t *testing.T) {
	recorder := &stubRecorder{}
	s := newTestSession(t, Config{Recorder: recorder})

	require.NoError(t, s.SetFreeText(SlotAnswer, "huit"))
	_, err := s.Submit(context.Background())
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)

	state := s.State()
	assert.Equal(t, PhaseAwaitingInput, state.Phase)
	assert.Equal(t, malformed.Message, state.Feedback)

	// Still playable, and nothing was counted.
	require.NoError(t, s.SetFreeText(SlotAnswer, "8"))
	_, err = s.Submit(context.Background())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(recorder.recorded()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, recorder.recorded()[0].Correct)
}

func TestSubmitRecordsAttempts(t *testing.T) {
	recorder := &stubRecorder{}
	s := newTestSession(t, Config{
		StudentID:    "student-1",
		Period:       2,
		Subject:      "mathsGame",
		Game:         "operations",
		Recorder:     recorder,
		AdvanceDelay: 5 * time.Millisecond,
	})

	require.NoError(t, s.SetFreeText(SlotAnswer, "7"))
	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	require.NoError(t, s.SetFreeText(SlotAnswer, "8"))
	_, err = s.Submit(context.Background())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(recorder.recorded()) == 2
	}, time.Second, 5*time.Millisecond)

	attempts := recorder.recorded()
	for _, a := range attempts {
		assert.Equal(t, "student-1", a.StudentID)
		assert.Equal(t, 2, a.Period)
		assert.Equal(t, "mathsGame", a.Subject)
		assert.Equal(t, "operations", a.Game)
	}
	correct := 0
	for _, a := range attempts {
		if a.Correct {
			correct++
		}
	}
	assert.Equal(t, 1, correct)
}

func TestSubmitRecorderFailureDoesNotBlockPlay(t *testing.T) {
	recorder := &stubRecorder{failFirst: 1}

	errs := make(chan error, 1)
	s := newTestSession(t, Config{
		Recorder:      recorder,
		OnRecordError: func(err error) { errs <- err },
	})

	require.NoError(t, s.SetFreeText(SlotAnswer, "7"))
	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	select {
	case err := <-errs:
		require.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("expected a record error to surface")
	}

	// Gameplay was never interrupted.
	assert.Equal(t, PhaseAwaitingInput, s.State().Phase)
}

func TestOnCorrectFiresOncePerCorrectAnswer(t *testing.T) {
	var mu sync.Mutex
	celebrations := 0

	s := newTestSession(t, Config{
		AdvanceDelay: 5 * time.Millisecond,
		OnCorrect: func() {
			mu.Lock()
			celebrations++
			mu.Unlock()
		},
	})

	// A randomized mix of right and wrong answers; the celebration count
	// must equal the correct count exactly, whatever the interleaving.
	wantCorrect := 0
	for i := 0; i < 100; i++ {
		require.Eventually(t, func() bool {
			return s.State().Phase == PhaseAwaitingInput
		}, time.Second, time.Millisecond)

		answer := "7"
		if rand.Intn(2) == 1 {
			answer = "8"
		}
		require.NoError(t, s.SetFreeText(SlotAnswer, answer))
		verdict, err := s.Submit(context.Background())
		require.NoError(t, err)
		if verdict.Correct {
			wantCorrect++
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, wantCorrect, celebrations)
}

func TestIncorrectMatchingSubmitRetainsCorrectPairs(t *testing.T) {
	prompt := &Prompt{
		Kind: KindMatching,
		Items: []Item{
			{ID: "je", Label: "mange"},
			{ID: "tu", Label: "manges"},
			{ID: "nous", Label: "mangeons"},
		},
		Pairs: map[string]string{"je": "mange", "tu": "manges", "nous": "mangeons"},
		Right: []Item{
			{ID: "r0", Display: "manges"},
			{ID: "r1", Display: "mangeons"},
			{ID: "r2", Display: "mange"},
		},
	}
	provider := promptProviderFunc(func(string, int) (*Prompt, error) { return prompt, nil })

	s := newTestSession(t, Config{Provider: provider, Validator: PairingValidator{}})

	require.NoError(t, s.Connect("je", "r2"))
	require.NoError(t, s.Connect("tu", "r1"))
	require.NoError(t, s.Connect("nous", "r0"))

	verdict, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.False(t, verdict.Correct)

	// Only the wrong pairings disappeared.
	assert.Equal(t, []Pair{{Left: "je", Right: "r2"}}, s.State().Pairs)

	require.NoError(t, s.Connect("tu", "r0"))
	require.NoError(t, s.Connect("nous", "r1"))
	verdict, err = s.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, verdict.Correct)
}

type promptProviderFunc func(previousTheme string, period int) (*Prompt, error)

func (f promptProviderFunc) NextPrompt(previousTheme string, period int) (*Prompt, error) {
	return f(previousTheme, period)
}

func TestAdvanceFailureShowsLoadError(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	provider := promptProviderFunc(func(string, int) (*Prompt, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls > 1 {
			return nil, errors.New("content exhausted")
		}
		return &Prompt{Kind: KindArithmetic, Answer: Answer{Value: 8}}, nil
	})

	s := newTestSession(t, Config{Provider: provider, AdvanceDelay: 5 * time.Millisecond})

	require.NoError(t, s.SetFreeText(SlotAnswer, "8"))
	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return s.State().Feedback == feedbackLoadError
	}, time.Second, time.Millisecond)

	// The failed reload cleared the draft before generating, so no stale
	// answer text survives.
	assert.Empty(t, s.State().Texts)
}

func TestAdvanceFailureRetriesUntilLoaded(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	provider := promptProviderFunc(func(string, int) (*Prompt, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		// The first reload fails twice before content comes back.
		if calls == 2 || calls == 3 {
			return nil, errors.New("content exhausted")
		}
		return &Prompt{Kind: KindArithmetic, Answer: Answer{Value: 8}}, nil
	})

	s := newTestSession(t, Config{Provider: provider, AdvanceDelay: 5 * time.Millisecond})

	require.NoError(t, s.SetFreeText(SlotAnswer, "8"))
	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	// The session recovers on its own instead of stranding in loading.
	assert.Eventually(t, func() bool {
		return s.State().Phase == PhaseAwaitingInput
	}, time.Second, time.Millisecond)

	state := s.State()
	assert.Empty(t, state.Feedback)
	assert.NotNil(t, state.Prompt)

	// Still playable end to end.
	require.NoError(t, s.SetFreeText(SlotAnswer, "8"))
	verdict, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, verdict.Correct)
}

func TestCloseStopsSession(t *testing.T) {
	s := newTestSession(t, Config{AdvanceDelay: time.Hour})

	require.NoError(t, s.SetFreeText(SlotAnswer, "8"))
	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	s.Close()

	assert.ErrorIs(t, s.SetFreeText(SlotAnswer, "1"), ErrNotAcceptingInput)
	assert.ErrorIs(t, s.Connect("a", "b"), ErrNotAcceptingInput)
	assert.ErrorIs(t, s.ClearPairs(), ErrNotAcceptingInput)
	assert.ErrorIs(t, s.Move("a", "b", "c", -1), ErrNotAcceptingInput)
	_, err = s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotAcceptingInput)
}

func TestSessionRequiresProviderAndValidator(t *testing.T) {
	for _, tt := range []struct {
		name string
		cfg  Config
	}{
		{name: "missing provider", cfg: Config{Validator: ArithmeticValidator{}}},
		{name: "missing validator", cfg: Config{Provider: &stubProvider{}}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.cfg)
			require.Error(t, err)
		})
	}
}

func TestConcurrentStateReads(t *testing.T) {
	s := newTestSession(t, Config{AdvanceDelay: time.Millisecond})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.State()
				_ = s.SetFreeText(SlotAnswer, fmt.Sprint(n*100+j))
			}
		}(i)
	}
	wg.Wait()
}
