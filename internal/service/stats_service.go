package service

import (
	"context"

	"ecoleludique/internal/content"
	"ecoleludique/internal/models"
	"ecoleludique/internal/repository"
	"ecoleludique/internal/utils"
)

// StatsService computes the dashboard statistics from attempt counters
type StatsService struct {
	catalog  *content.Catalog
	attempts *repository.AttemptRepository
	roster   *RosterService
}

// NewStatsService creates a new stats service
func NewStatsService(catalog *content.Catalog, attempts *repository.AttemptRepository, roster *RosterService) *StatsService {
	return &StatsService{catalog: catalog, attempts: attempts, roster: roster}
}

// SubjectStats returns one student's per-game results for a subject and
// period. Every catalog game of the subject appears, played or not, so the
// dashboard shows a complete row set. The note is the French "note sur
// 20": correct answers over total attempts scaled to 20.
func (s *StatsService) SubjectStats(ctx context.Context, studentID string, period int, subject string) (*models.SubjectStats, error) {
	if err := utils.ValidatePeriodNumber(period); err != nil {
		return nil, err
	}
	if _, err := s.roster.GetStudent(studentID); err != nil {
		return nil, err
	}

	records, err := s.attempts.GetRecords(ctx, studentID, period, subject)
	if err != nil {
		return nil, err
	}

	stats := &models.SubjectStats{Subject: subject}
	totalCorrect, totalAttempts := 0, 0

	for _, g := range s.catalog.Games() {
		if g.Subject != subject {
			continue
		}

		gs := models.GameStats{Game: g.ID, GameName: g.Name}
		if rec, ok := records[g.ID]; ok {
			gs.CorrectCount = rec.CorrectCount
			gs.IncorrectCount = rec.IncorrectCount
			gs.Note = note(rec.CorrectCount, rec.CorrectCount+rec.IncorrectCount)
			totalCorrect += rec.CorrectCount
			totalAttempts += rec.CorrectCount + rec.IncorrectCount
		}
		stats.Games = append(stats.Games, gs)
	}

	stats.Average = note(totalCorrect, totalAttempts)
	return stats, nil
}

// note scales a correct/total ratio to a mark out of 20. No attempts
// yields zero rather than a division error.
func note(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 20
}
