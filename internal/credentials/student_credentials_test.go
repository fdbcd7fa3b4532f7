package credentials

import (
	"strings"
	"testing"
)

func TestGeneratePassword(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		password, err := GeneratePassword()
		if err != nil {
			t.Fatalf("GeneratePassword() error: %v", err)
		}

		parts := strings.Split(password, "-")
		if len(parts) != 3 {
			t.Fatalf("password %q should have three dash-separated parts", password)
		}
		if len(parts[2]) != 2 {
			t.Errorf("password %q should end with two digits", password)
		}

		seen[password] = true
	}

	// With two word lists and a numeric suffix, 100 draws should not
	// collapse to a handful of values.
	if len(seen) < 50 {
		t.Errorf("expected varied passwords, got %d distinct out of 100", len(seen))
	}
}
