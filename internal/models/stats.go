package models

import "time"

// AttemptRecord is the persisted counter row for one student, period,
// subject and game combination
type AttemptRecord struct {
	StudentID      string
	PeriodNumber   int
	Subject        string
	Game           string
	CorrectCount   int
	IncorrectCount int
	UpdatedAt      time.Time
}

// GameStats is one game's aggregate shown on the dashboard. Note is the
// French "note sur 20": correct answers over total attempts scaled to 20.
type GameStats struct {
	Game           string
	GameName       string
	CorrectCount   int
	IncorrectCount int
	Note           float64
}

// SubjectStats aggregates a subject's games for one student and period
type SubjectStats struct {
	Subject string
	Games   []GameStats
	Average float64
}
