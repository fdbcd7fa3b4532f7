package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ecoleludique/internal/credentials"
	"ecoleludique/internal/models"
	"ecoleludique/internal/repository"
	"ecoleludique/internal/utils"
)

// RosterService manages the class roster and school periods
type RosterService struct {
	students *repository.StudentRepository
	periods  *repository.PeriodRepository
}

// NewRosterService creates a new roster service
func NewRosterService(students *repository.StudentRepository, periods *repository.PeriodRepository) *RosterService {
	return &RosterService{students: students, periods: periods}
}

// CreateStudent adds a pupil to the roster. The generated plaintext
// password is returned once for the teacher to hand out; only its bcrypt
// hash is stored.
func (s *RosterService) CreateStudent(firstName, lastName string) (*models.Student, string, error) {
	if err := utils.ValidateStudentName("first_name", firstName); err != nil {
		return nil, "", err
	}
	if err := utils.ValidateStudentName("last_name", lastName); err != nil {
		return nil, "", err
	}

	password, err := credentials.GeneratePassword()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.Student{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		PasswordHash: string(hash),
	}
	if err := s.students.CreateStudent(student); err != nil {
		return nil, "", err
	}
	return student, password, nil
}

// RegeneratePassword replaces a student's password and returns the new
// plaintext once
func (s *RosterService) RegeneratePassword(studentID string) (string, error) {
	student, err := s.students.GetStudentByID(studentID)
	if err != nil {
		return "", err
	}
	if student == nil {
		return "", repository.ErrNotFound
	}

	password, err := credentials.GeneratePassword()
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.students.UpdatePassword(studentID, string(hash)); err != nil {
		return "", err
	}
	return password, nil
}

// GetStudent returns one student or repository.ErrNotFound
func (s *RosterService) GetStudent(studentID string) (*models.Student, error) {
	student, err := s.students.GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, repository.ErrNotFound
	}
	return student, nil
}

// ListStudents returns the roster
func (s *RosterService) ListStudents() ([]models.Student, error) {
	return s.students.ListStudents()
}

// UpdateStudent renames a student
func (s *RosterService) UpdateStudent(studentID, firstName, lastName string) error {
	if err := utils.ValidateStudentName("first_name", firstName); err != nil {
		return err
	}
	if err := utils.ValidateStudentName("last_name", lastName); err != nil {
		return err
	}
	return s.students.UpdateStudent(studentID, strings.TrimSpace(firstName), strings.TrimSpace(lastName))
}

// DeleteStudent removes a student and their statistics
func (s *RosterService) DeleteStudent(studentID string) error {
	return s.students.DeleteStudent(studentID)
}

// EnsureDefaultPeriods seeds periods 1 to 3 on first start, activating
// period 1
func (s *RosterService) EnsureDefaultPeriods() error {
	return s.periods.EnsureDefaults([]int{1, 2, 3})
}

// ListPeriods returns all school periods
func (s *RosterService) ListPeriods() ([]models.Period, error) {
	return s.periods.ListPeriods()
}

// ActivePeriod returns the active period, or nil when none is set
func (s *RosterService) ActivePeriod() (*models.Period, error) {
	return s.periods.GetActivePeriod()
}

// ActivatePeriod switches the active period
func (s *RosterService) ActivatePeriod(number int) error {
	if err := utils.ValidatePeriodNumber(number); err != nil {
		return err
	}
	return s.periods.ActivatePeriod(number)
}
