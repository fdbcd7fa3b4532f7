package models

import "time"

// Student represents one pupil of the class roster
type Student struct {
	ID           string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the display name used across the teacher dashboard
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
