package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/google/uuid"

	"ecoleludique/internal/content"
	"ecoleludique/internal/game"
)

var (
	// ErrUnknownGame is returned when no game matches the subject and id
	ErrUnknownGame = errors.New("unknown game")

	// ErrNoActivePeriod is returned when play is requested but no school
	// period is active
	ErrNoActivePeriod = errors.New("no active period")

	// ErrSessionNotFound is returned for an unknown or expired session id
	ErrSessionNotFound = errors.New("play session not found")
)

// retryingRecorder wraps a recorder with one retry after a short backoff.
// Persistence is best effort; two failures in a row are handed to the
// session's error hook.
type retryingRecorder struct {
	inner game.Recorder
}

func (r retryingRecorder) RecordAttempt(ctx context.Context, attempt game.Attempt) error {
	return retry.Do(
		func() error { return r.inner.RecordAttempt(ctx, attempt) },
		retry.Context(ctx),
		retry.Attempts(2),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}

// playEntry is one live session plus its bookkeeping
type playEntry struct {
	session *game.Session

	studentID string
	subject   string
	gameID    string
	period    int

	mu           sync.Mutex
	lastActive   time.Time
	celebrations int
}

func (e *playEntry) touch() {
	e.mu.Lock()
	e.lastActive = time.Now()
	e.mu.Unlock()
}

func (e *playEntry) addCelebration() {
	e.mu.Lock()
	e.celebrations++
	e.mu.Unlock()
}

// popCelebration consumes one pending celebration, if any. Celebrations
// accumulate between polls so a fast double submit cannot swallow one.
func (e *playEntry) popCelebration() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.celebrations == 0 {
		return false
	}
	e.celebrations--
	return true
}

// PlayView is a session snapshot extended with service-level fields
type PlayView struct {
	SessionID string
	Subject   string
	GameID    string
	Period    int
	State     game.State
	Celebrate bool
}

// PlayService owns live game sessions. Sessions live in memory, keyed by
// a generated id; the client holds the id and plays through it.
type PlayService struct {
	catalog  *content.Catalog
	roster   *RosterService
	recorder game.Recorder

	// OnCorrectAnswer, when set, is notified of every correct answer in
	// addition to the per-session celebration flag.
	OnCorrectAnswer func(studentID, subject, gameID string)

	mu       sync.Mutex
	sessions map[string]*playEntry
}

// NewPlayService creates a play service recording attempts through the
// given recorder
func NewPlayService(catalog *content.Catalog, roster *RosterService, recorder game.Recorder) *PlayService {
	return &PlayService{
		catalog:  catalog,
		roster:   roster,
		recorder: retryingRecorder{inner: recorder},
		sessions: make(map[string]*playEntry),
	}
}

// Games returns the playable catalog
func (s *PlayService) Games() []content.Game {
	return s.catalog.Games()
}

// Start opens a session for a student on one game, counting against the
// active school period
func (s *PlayService) Start(studentID, subject, gameID string) (*PlayView, error) {
	if _, err := s.roster.GetStudent(studentID); err != nil {
		return nil, err
	}

	g, ok := s.catalog.Lookup(subject, gameID)
	if !ok {
		return nil, ErrUnknownGame
	}

	period, err := s.roster.ActivePeriod()
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, ErrNoActivePeriod
	}

	entry := &playEntry{
		studentID:  studentID,
		subject:    subject,
		gameID:     gameID,
		period:     period.Number,
		lastActive: time.Now(),
	}

	session, err := game.NewSession(game.Config{
		StudentID: studentID,
		Period:    period.Number,
		Subject:   subject,
		Game:      gameID,
		Provider:  g.Provider,
		Validator: g.Validator,
		Recorder:  s.recorder,
		OnCorrect: func() {
			entry.addCelebration()
			if s.OnCorrectAnswer != nil {
				s.OnCorrectAnswer(studentID, subject, gameID)
			}
		},
		OnRecordError: func(err error) {
			log.Printf("Error recording attempt for student %s in %s/%s: %v", studentID, subject, gameID, err)
		},
	})
	if err != nil {
		return nil, err
	}
	entry.session = session

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = entry
	s.mu.Unlock()

	return s.view(id, entry, false), nil
}

func (s *PlayService) entry(sessionID string) (*playEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

// Move relocates an item between slots
func (s *PlayService) Move(sessionID, src, dst, itemID string, pos int) (*PlayView, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.touch()
	if err := entry.session.Move(src, dst, itemID, pos); err != nil {
		return nil, err
	}
	return s.view(sessionID, entry, false), nil
}

// SetText stores a free-text answer
func (s *PlayService) SetText(sessionID, slot, text string) (*PlayView, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.touch()
	if err := entry.session.SetFreeText(slot, text); err != nil {
		return nil, err
	}
	return s.view(sessionID, entry, false), nil
}

// Connect records a matching pair
func (s *PlayService) Connect(sessionID, left, right string) (*PlayView, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.touch()
	if err := entry.session.Connect(left, right); err != nil {
		return nil, err
	}
	return s.view(sessionID, entry, false), nil
}

// ClearPairs removes every matching pair
func (s *PlayService) ClearPairs(sessionID string) (*PlayView, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.touch()
	if err := entry.session.ClearPairs(); err != nil {
		return nil, err
	}
	return s.view(sessionID, entry, false), nil
}

// Submit validates the current draft. The returned view carries the
// celebration flag exactly once per correct answer.
func (s *PlayService) Submit(ctx context.Context, sessionID string) (*PlayView, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.touch()

	if _, err := entry.session.Submit(ctx); err != nil {
		var malformed *game.MalformedInputError
		if errors.As(err, &malformed) {
			// Malformed input keeps the session playable; the view carries
			// the feedback message.
			return s.view(sessionID, entry, false), err
		}
		return nil, err
	}

	return s.view(sessionID, entry, entry.popCelebration()), nil
}

// State returns the session snapshot
func (s *PlayService) State(sessionID string) (*PlayView, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(sessionID, entry, false), nil
}

// End closes and forgets a session
func (s *PlayService) End(sessionID string) error {
	s.mu.Lock()
	entry, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	entry.session.Close()
	return nil
}

// CleanupIdle closes sessions idle longer than maxIdle and returns how
// many were reaped
func (s *PlayService) CleanupIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	var stale []*playEntry
	for id, entry := range s.sessions {
		entry.mu.Lock()
		idle := entry.lastActive.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			stale = append(stale, entry)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, entry := range stale {
		entry.session.Close()
	}
	return len(stale)
}

func (s *PlayService) view(sessionID string, entry *playEntry, celebrate bool) *PlayView {
	return &PlayView{
		SessionID: sessionID,
		Subject:   entry.subject,
		GameID:    entry.gameID,
		Period:    entry.period,
		State:     entry.session.State(),
		Celebrate: celebrate,
	}
}
