package domain

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		password string
		reasons  int
		contains string
	}{
		{name: "strong password passes", password: "Secret123!", reasons: 0},
		{name: "too short", password: "S1!a", reasons: 1, contains: "at least 6 characters"},
		{name: "missing digit", password: "Secretive!", reasons: 1, contains: "digit"},
		{name: "missing uppercase", password: "secret123!", reasons: 1, contains: "uppercase"},
		{name: "missing lowercase", password: "SECRET123!", reasons: 1, contains: "lowercase"},
		{name: "missing symbol", password: "Secret123", reasons: 1, contains: "non alphanumeric"},
		{name: "everything wrong", password: "abc", reasons: 4},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reasons := ValidatePassword(tc.password)
			if len(reasons) != tc.reasons {
				t.Fatalf("expected %d reasons, got %d: %v", tc.reasons, len(reasons), reasons)
			}
			if tc.contains == "" {
				return
			}
			found := false
			for _, reason := range reasons {
				if strings.Contains(reason, tc.contains) {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected a reason containing %q, got %v", tc.contains, reasons)
			}
		})
	}
}
