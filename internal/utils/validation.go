package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateStudentName checks a first or last name from the roster form
func ValidateStudentName(field, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: field, Message: field + " is required"}
	}
	if utf8.RuneCountInString(name) < 2 {
		return ValidationError{Field: field, Message: field + " must be at least 2 characters"}
	}
	if utf8.RuneCountInString(name) > 100 {
		return ValidationError{Field: field, Message: field + " must be at most 100 characters"}
	}
	return nil
}

// ValidatePeriodNumber checks a school period number
func ValidatePeriodNumber(number int) error {
	if number < 1 || number > 3 {
		return ValidationError{Field: "period", Message: "period must be between 1 and 3"}
	}
	return nil
}
