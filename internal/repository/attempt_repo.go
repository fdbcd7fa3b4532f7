package repository

import (
	"context"
	"fmt"

	"ecoleludique/internal/database"
	"ecoleludique/internal/game"
	"ecoleludique/internal/models"
)

// AttemptRepository persists per-game answer counters
type AttemptRepository struct {
	db *database.DB
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db *database.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// RecordAttempt atomically increments the correct or incorrect counter for
// the attempt's student, period, subject and game. The increment happens
// in SQL, so concurrent submits never lose counts.
func (r *AttemptRepository) RecordAttempt(ctx context.Context, attempt game.Attempt) error {
	correct, incorrect := 0, 1
	if attempt.Correct {
		correct, incorrect = 1, 0
	}

	query := r.db.Dialect.UpsertAttemptQuery()
	_, err := r.db.ExecContext(ctx, query,
		attempt.StudentID, attempt.Period, attempt.Subject, attempt.Game, correct, incorrect)
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}
	return nil
}

// GetRecords returns a student's counter rows for one period and subject,
// keyed by game ID
func (r *AttemptRepository) GetRecords(ctx context.Context, studentID string, period int, subject string) (map[string]models.AttemptRecord, error) {
	query := `
		SELECT student_id, period_number, subject, game, correct_count, incorrect_count, updated_at
		FROM attempt_records
		WHERE student_id = ? AND period_number = ? AND subject = ?
	`
	rows, err := r.db.QueryContext(ctx, query, studentID, period, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempt records: %w", err)
	}
	defer rows.Close()

	records := make(map[string]models.AttemptRecord)
	for rows.Next() {
		var rec models.AttemptRecord
		if err := rows.Scan(&rec.StudentID, &rec.PeriodNumber, &rec.Subject, &rec.Game,
			&rec.CorrectCount, &rec.IncorrectCount, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attempt record: %w", err)
		}
		records[rec.Game] = rec
	}
	return records, rows.Err()
}
