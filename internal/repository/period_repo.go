package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"ecoleludique/internal/database"
	"ecoleludique/internal/models"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// PeriodRepository handles database operations for school periods
type PeriodRepository struct {
	db *database.DB
}

// NewPeriodRepository creates a new period repository
func NewPeriodRepository(db *database.DB) *PeriodRepository {
	return &PeriodRepository{db: db}
}

// EnsureDefaults seeds the given period numbers if the table is empty and
// activates the first one
func (r *PeriodRepository) EnsureDefaults(numbers []int) error {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM periods").Scan(&count); err != nil {
		return fmt.Errorf("failed to count periods: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, n := range numbers {
		active := 0
		if i == 0 {
			active = 1
		}
		if _, err := tx.Exec("INSERT INTO periods (number, active) VALUES (?, ?)", n, active); err != nil {
			return fmt.Errorf("failed to seed period %d: %w", n, err)
		}
	}
	return tx.Commit()
}

// ListPeriods returns all periods ordered by number
func (r *PeriodRepository) ListPeriods() ([]models.Period, error) {
	rows, err := r.db.Query("SELECT id, number, active, created_at FROM periods ORDER BY number")
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	var periods []models.Period
	for rows.Next() {
		var p models.Period
		if err := rows.Scan(&p.ID, &p.Number, &p.Active, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// GetActivePeriod returns the currently active period
func (r *PeriodRepository) GetActivePeriod() (*models.Period, error) {
	p := &models.Period{}
	err := r.db.QueryRow("SELECT id, number, active, created_at FROM periods WHERE active = ?", true).Scan(
		&p.ID, &p.Number, &p.Active, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active period: %w", err)
	}
	return p, nil
}

// ActivatePeriod makes the given period number the single active one.
// Deactivation and activation happen in one transaction so there is never
// a moment with two active periods visible.
func (r *PeriodRepository) ActivatePeriod(number int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE periods SET active = ?", false); err != nil {
		return fmt.Errorf("failed to deactivate periods: %w", err)
	}

	result, err := tx.Exec("UPDATE periods SET active = ? WHERE number = ?", true, number)
	if err != nil {
		return fmt.Errorf("failed to activate period: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("period %d: %w", number, ErrNotFound)
	}

	return tx.Commit()
}
