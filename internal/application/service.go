package application

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/rentmy/rentmy-api/internal/domain"
	"github.com/rentmy/rentmy-api/internal/ports"
)

// tokenTTL is the fixed lifetime of every issued bearer token.
// It is deliberately not configurable at call time.
const tokenTTL = 6 * time.Hour

type Service struct {
	users       ports.UserRepository
	items       ports.ItemRepository
	hasher      ports.PasswordHasher
	tokenSigner ports.TokenSigner
	nowFn       func() time.Time
}

type Dependencies struct {
	Users       ports.UserRepository
	Items       ports.ItemRepository
	Hasher      ports.PasswordHasher
	TokenSigner ports.TokenSigner
}

func NewService(deps Dependencies) *Service {
	return &Service{
		users:       deps.Users,
		items:       deps.Items,
		hasher:      deps.Hasher,
		tokenSigner: deps.TokenSigner,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	return trimmed, nil
}
