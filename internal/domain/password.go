package domain

import "unicode"

const minPasswordLength = 6

// ValidatePassword checks the baseline account password policy and returns
// every failed rule as a human-readable reason. Callers surface the full list
// so a client can fix all problems in one round trip.
func ValidatePassword(password string) []string {
	var reasons []string

	if len(password) < minPasswordLength {
		reasons = append(reasons, "Passwords must be at least 6 characters.")
	}

	var (
		hasUpper bool
		hasLower bool
		hasDigit bool
		hasOther bool
	)
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasOther = true
		}
	}

	if !hasOther {
		reasons = append(reasons, "Passwords must have at least one non alphanumeric character.")
	}
	if !hasDigit {
		reasons = append(reasons, "Passwords must have at least one digit ('0'-'9').")
	}
	if !hasLower {
		reasons = append(reasons, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !hasUpper {
		reasons = append(reasons, "Passwords must have at least one uppercase ('A'-'Z').")
	}

	return reasons
}
