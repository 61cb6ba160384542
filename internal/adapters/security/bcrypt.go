package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher derives and verifies salted password hashes with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given work factor.
func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

// Hash derives a hash of the password. A work factor outside bcrypt's
// supported range falls back to the library default, so a zero-valued
// config never weakens stored credentials.
func (h *BcryptHasher) Hash(password string) (string, error) {
	cost := h.cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether the password matches the stored hash.
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
