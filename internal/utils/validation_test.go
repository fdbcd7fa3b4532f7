package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateStudentName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid name", input: "Camille", wantErr: false},
		{name: "two characters", input: "Bo", wantErr: false},
		{name: "accented name", input: "Éloïse", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "single character", input: "A", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 101), wantErr: true},
		{name: "exactly max length", input: strings.Repeat("a", 100), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStudentName("firstName", tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStudentName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var verr ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected a ValidationError, got %T", err)
				}
				if verr.Field != "firstName" {
					t.Fatalf("expected field firstName, got %q", verr.Field)
				}
			}
		})
	}
}

func TestValidatePeriodNumber(t *testing.T) {
	for _, number := range []int{1, 2, 3} {
		if err := ValidatePeriodNumber(number); err != nil {
			t.Fatalf("period %d should be valid, got %v", number, err)
		}
	}
	for _, number := range []int{0, 4, -1, 100} {
		if err := ValidatePeriodNumber(number); err == nil {
			t.Fatalf("period %d should be rejected", number)
		}
	}
}
