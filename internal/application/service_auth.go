package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rentmy/rentmy-api/internal/domain"
	"github.com/rentmy/rentmy-api/internal/ports"
)

// Register creates a local account and issues a bearer token for it.
// Expected failures (bad shape, duplicate email, weak password) are folded
// into the result envelope; only store faults surface as errors.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return InvalidPayloadResult(), nil
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return InvalidPayloadResult(), nil
	}

	// Explicit lookup before create keeps the duplicate-email message
	// deterministic; the unique index still backstops the race.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return authFailure(msgEmailInUse), nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return AuthResult{}, fmt.Errorf("lookup email: %w", err)
	}

	if reasons := domain.ValidatePassword(req.Password); len(reasons) > 0 {
		return authFailure(reasons...), nil
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, ports.CreateUserParams{
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: passwordHash,
		RegisteredAt: s.nowFn(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return authFailure(msgEmailInUse), nil
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return AuthResult{}, err
	}

	slog.Default().InfoContext(ctx, "user registered",
		"service", "rentmy-api",
		"module", "application",
		"layer", "application",
		"operation", "register",
		"outcome", "success",
		"user_id", user.UserID,
	)
	return AuthResult{Success: true, Token: token}, nil
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password produce identical envelopes.
func (s *Service) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return InvalidPayloadResult(), nil
	}
	if req.Password == "" {
		return InvalidPayloadResult(), nil
	}

	user, err := s.authenticate(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.logLoginFailure(ctx, err)
			return authFailure(msgInvalidLogin), nil
		}
		return AuthResult{}, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return AuthResult{}, err
	}

	slog.Default().InfoContext(ctx, "user logged in",
		"service", "rentmy-api",
		"module", "application",
		"layer", "application",
		"operation", "login",
		"outcome", "success",
		"user_id", user.UserID,
	)
	return AuthResult{Success: true, Token: token}, nil
}

// authenticate resolves the account and checks the password. Both failure
// modes wrap domain.ErrInvalidCredentials so the caller folds them into the
// same envelope; store faults pass through unwrapped.
func (s *Service) authenticate(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, fmt.Errorf("%w: unknown email", domain.ErrInvalidCredentials)
		}
		return domain.User{}, fmt.Errorf("lookup email: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return domain.User{}, fmt.Errorf("%w: password mismatch", domain.ErrInvalidCredentials)
	}
	return user, nil
}

// logLoginFailure records which credential check failed. The distinction
// lives only in the logs; the response envelope stays uniform.
func (s *Service) logLoginFailure(ctx context.Context, err error) {
	slog.Default().WarnContext(ctx, "login rejected",
		"service", "rentmy-api",
		"module", "application",
		"layer", "application",
		"operation", "login",
		"outcome", "failure",
		"error", err.Error(),
	)
}

// issueToken mints a signed bearer token for the identity. Each call draws a
// fresh jti, so concurrent tokens for one user stay independently valid until
// their own expiry. Nothing is persisted.
func (s *Service) issueToken(user domain.User) (string, error) {
	now := s.nowFn()
	token, err := s.tokenSigner.Sign(ports.AuthClaims{
		UserID:    user.UserID,
		Email:     user.Email,
		TokenID:   uuid.New(),
		IssuedAt:  now,
		ExpiresAt: now.Add(tokenTTL),
	})
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ValidateToken checks signature and lifetime of a presented bearer token.
// Issuer and audience are not validated in this configuration.
func (s *Service) ValidateToken(_ context.Context, token string) (ports.AuthClaims, error) {
	claims, err := s.tokenSigner.ParseAndValidate(token)
	if err != nil {
		return ports.AuthClaims{}, domain.ErrUnauthorized
	}
	return claims, nil
}
