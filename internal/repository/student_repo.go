package repository

import (
	"database/sql"
	"fmt"

	"ecoleludique/internal/database"
	"ecoleludique/internal/models"
)

// StudentRepository handles database operations for the class roster
type StudentRepository struct {
	db *database.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *database.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// CreateStudent inserts a new student row
func (r *StudentRepository) CreateStudent(s *models.Student) error {
	query := "INSERT INTO students (id, first_name, last_name, password_hash) VALUES (?, ?, ?, ?)"
	_, err := r.db.Exec(query, s.ID, s.FirstName, s.LastName, s.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// GetStudentByID retrieves a student by ID, or nil when absent
func (r *StudentRepository) GetStudentByID(id string) (*models.Student, error) {
	query := "SELECT id, first_name, last_name, password_hash, created_at, updated_at FROM students WHERE id = ?"
	s := &models.Student{}
	err := r.db.QueryRow(query, id).Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.PasswordHash,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return s, nil
}

// ListStudents returns the full roster ordered by name
func (r *StudentRepository) ListStudents() ([]models.Student, error) {
	query := "SELECT id, first_name, last_name, password_hash, created_at, updated_at FROM students ORDER BY last_name, first_name"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// UpdateStudent updates a student's name
func (r *StudentRepository) UpdateStudent(id, firstName, lastName string) error {
	query := "UPDATE students SET first_name = ?, last_name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	result, err := r.db.Exec(query, firstName, lastName, id)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return requireRowAffected(result, "student")
}

// UpdatePassword replaces a student's password hash
func (r *StudentRepository) UpdatePassword(id, passwordHash string) error {
	query := "UPDATE students SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	result, err := r.db.Exec(query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return requireRowAffected(result, "student")
}

// DeleteStudent removes a student and, via cascade, their attempt records
func (r *StudentRepository) DeleteStudent(id string) error {
	result, err := r.db.Exec("DELETE FROM students WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return requireRowAffected(result, "student")
}

// requireRowAffected converts a zero-row update into ErrNotFound
func requireRowAffected(result sql.Result, entity string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
