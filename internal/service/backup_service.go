package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"ecoleludique/internal/database"
)

// BackupData is the complete portable snapshot of the database. The
// format is backend neutral so an export from sqlite can be imported
// into postgres or mysql.
type BackupData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Students   []StudentBackup `json:"students"`
	Periods    []PeriodBackup  `json:"periods"`
	Attempts   []AttemptBackup `json:"attempts"`
}

// StudentBackup is one student record for backup
type StudentBackup struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PeriodBackup is one school period record for backup
type PeriodBackup struct {
	Number    int       `json:"number"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// AttemptBackup is one attempt counter row for backup
type AttemptBackup struct {
	StudentID      string    `json:"student_id"`
	PeriodNumber   int       `json:"period_number"`
	Subject        string    `json:"subject"`
	Game           string    `json:"game"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Database exported successfully to %s", outputPath)
	return nil
}

// ExportToWriter exports the database as indented JSON
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	if err := s.exportStudents(backup); err != nil {
		return fmt.Errorf("failed to export students: %w", err)
	}
	if err := s.exportPeriods(backup); err != nil {
		return fmt.Errorf("failed to export periods: %w", err)
	}
	if err := s.exportAttempts(backup); err != nil {
		return fmt.Errorf("failed to export attempts: %w", err)
	}

	log.Printf("Exported: %d students, %d periods, %d attempt rows",
		len(backup.Students), len(backup.Periods), len(backup.Attempts))

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(backup)
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup reader
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Import in order of dependencies: attempts reference students and
	// period numbers.
	if err := s.importStudents(backup.Students); err != nil {
		return fmt.Errorf("failed to import students: %w", err)
	}
	if err := s.importPeriods(backup.Periods); err != nil {
		return fmt.Errorf("failed to import periods: %w", err)
	}
	if err := s.importAttempts(backup.Attempts); err != nil {
		return fmt.Errorf("failed to import attempts: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportStudents(backup *BackupData) error {
	query := "SELECT id, first_name, last_name, password_hash, created_at, updated_at FROM students ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var st StudentBackup
		if err := rows.Scan(&st.ID, &st.FirstName, &st.LastName, &st.PasswordHash, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return err
		}
		backup.Students = append(backup.Students, st)
	}
	return rows.Err()
}

func (s *BackupService) exportPeriods(backup *BackupData) error {
	query := "SELECT number, active, created_at FROM periods ORDER BY number"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p PeriodBackup
		if err := rows.Scan(&p.Number, &p.Active, &p.CreatedAt); err != nil {
			return err
		}
		backup.Periods = append(backup.Periods, p)
	}
	return rows.Err()
}

func (s *BackupService) exportAttempts(backup *BackupData) error {
	query := "SELECT student_id, period_number, subject, game, correct_count, incorrect_count, updated_at FROM attempt_records ORDER BY student_id, period_number, subject, game"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a AttemptBackup
		if err := rows.Scan(&a.StudentID, &a.PeriodNumber, &a.Subject, &a.Game, &a.CorrectCount, &a.IncorrectCount, &a.UpdatedAt); err != nil {
			return err
		}
		backup.Attempts = append(backup.Attempts, a)
	}
	return rows.Err()
}

func (s *BackupService) importStudents(students []StudentBackup) error {
	log.Printf("Importing %d students...", len(students))
	for _, st := range students {
		query := "INSERT INTO students (id, first_name, last_name, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, st.ID, st.FirstName, st.LastName, st.PasswordHash, st.CreatedAt, st.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import student %s: %w", st.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importPeriods(periods []PeriodBackup) error {
	log.Printf("Importing %d periods...", len(periods))
	for _, p := range periods {
		query := "INSERT INTO periods (number, active, created_at) VALUES (?, ?, ?)"
		if _, err := s.db.Exec(query, p.Number, p.Active, p.CreatedAt); err != nil {
			return fmt.Errorf("failed to import period %d: %w", p.Number, err)
		}
	}
	return nil
}

func (s *BackupService) importAttempts(attempts []AttemptBackup) error {
	log.Printf("Importing %d attempt rows...", len(attempts))
	for _, a := range attempts {
		query := "INSERT INTO attempt_records (student_id, period_number, subject, game, correct_count, incorrect_count, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, a.StudentID, a.PeriodNumber, a.Subject, a.Game, a.CorrectCount, a.IncorrectCount, a.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import attempts for student %s in %s/%s: %w", a.StudentID, a.Subject, a.Game, err)
		}
	}
	return nil
}
