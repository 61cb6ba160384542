package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentmy/rentmy-api/internal/domain"
)

// CreateUserParams captures the inputs for a new identity record.
// Email arrives pre-normalized (lowercase) so the unique index holds
// case-insensitively.
type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	RegisteredAt time.Time
}

// UserRepository defines persistence for user identities. Create must fail
// with domain.ErrEmailTaken when the email is already registered, relying on
// the store's uniqueness guarantee rather than a read-then-write race.
type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// ItemRepository is plain CRUD over rental items. Get/Update/Delete return
// domain.ErrNotFound for unknown ids.
type ItemRepository interface {
	List(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, itemID uuid.UUID) (domain.Item, error)
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	Delete(ctx context.Context, itemID uuid.UUID) (domain.Item, error)
}
