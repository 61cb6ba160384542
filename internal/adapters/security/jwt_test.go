package security

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rentmy/rentmy-api/internal/ports"
)

func testClaims(issuedAt time.Time) ports.AuthClaims {
	return ports.AuthClaims{
		UserID:    uuid.New(),
		Email:     "a@x.com",
		TokenID:   uuid.New(),
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(6 * time.Hour),
	}
}

func TestSignParseRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewJWTSigner("test-secret")
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	claims := testClaims(time.Now().UTC().Truncate(time.Second))
	token, err := signer.Sign(claims)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parsed, err := signer.ParseAndValidate(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.UserID != claims.UserID || parsed.Email != claims.Email || parsed.TokenID != claims.TokenID {
		t.Fatalf("claims changed in transit: %+v vs %+v", parsed, claims)
	}
	if !parsed.ExpiresAt.Equal(claims.ExpiresAt) {
		t.Fatalf("expiry changed in transit: %s vs %s", parsed.ExpiresAt, claims.ExpiresAt)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, _ := NewJWTSigner("test-secret")
	other, _ := NewJWTSigner("different-secret")

	token, err := signer.Sign(testClaims(time.Now().UTC()))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := other.ParseAndValidate(token); err == nil {
		t.Fatalf("expected verification failure under a different secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer, _ := NewJWTSigner("test-secret")

	issuedAt := time.Now().UTC().Add(-7 * time.Hour)
	token, err := signer.Sign(testClaims(issuedAt))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := signer.ParseAndValidate(token); err == nil {
		t.Fatalf("expected expired-token rejection")
	}
}

func TestNewJWTSignerRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTSigner(""); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
