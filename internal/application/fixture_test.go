package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rentmy/rentmy-api/internal/adapters/security"
	"github.com/rentmy/rentmy-api/internal/domain"
	"github.com/rentmy/rentmy-api/internal/ports"
)

const testSecret = "unit-test-secret"

type fixture struct {
	service *Service
	users   *memUserRepo
	items   *memItemRepo
}

func newFixture() *fixture {
	users := newMemUserRepo()
	items := newMemItemRepo()
	signer, err := security.NewJWTSigner(testSecret)
	if err != nil {
		panic(err)
	}
	svc := NewService(Dependencies{
		Users:       users,
		Items:       items,
		Hasher:      security.NewBcryptHasher(4),
		TokenSigner: signer,
	})
	return &fixture{service: svc, users: users, items: items}
}

type memUserRepo struct {
	mu       sync.Mutex
	byEmail  map[string]domain.User
	failWith error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]domain.User)}
}

// failStore makes every subsequent call return err, simulating a lost
// database connection.
func (r *memUserRepo) failStore(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWith = err
}

func (r *memUserRepo) Create(_ context.Context, params ports.CreateUserParams) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return domain.User{}, r.failWith
	}
	if _, exists := r.byEmail[params.Email]; exists {
		return domain.User{}, domain.ErrEmailTaken
	}
	user := domain.User{
		UserID:       uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		CreatedAt:    params.RegisteredAt,
		UpdatedAt:    params.RegisteredAt,
	}
	r.byEmail[params.Email] = user
	return user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return domain.User{}, r.failWith
	}
	user, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

// memItemRepo counts every call so tests can assert the store was never
// touched on pre-store rejections.
type memItemRepo struct {
	mu       sync.Mutex
	byID     map[uuid.UUID]domain.Item
	calls    int
	failWith error
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{byID: make(map[uuid.UUID]domain.Item)}
}

func (r *memItemRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// failStore makes every subsequent call return err, simulating a lost
// database connection.
func (r *memItemRepo) failStore(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWith = err
}

func (r *memItemRepo) List(_ context.Context) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	items := make([]domain.Item, 0, len(r.byID))
	for _, item := range r.byID {
		items = append(items, item)
	}
	return items, nil
}

func (r *memItemRepo) Get(_ context.Context, itemID uuid.UUID) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failWith != nil {
		return domain.Item{}, r.failWith
	}
	item, ok := r.byID[itemID]
	if !ok {
		return domain.Item{}, domain.ErrNotFound
	}
	return item, nil
}

func (r *memItemRepo) Create(_ context.Context, item domain.Item) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failWith != nil {
		return domain.Item{}, r.failWith
	}
	item.ItemID = uuid.New()
	r.byID[item.ItemID] = item
	return item, nil
}

func (r *memItemRepo) Update(_ context.Context, item domain.Item) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failWith != nil {
		return domain.Item{}, r.failWith
	}
	existing, ok := r.byID[item.ItemID]
	if !ok {
		return domain.Item{}, domain.ErrNotFound
	}
	existing.Name = item.Name
	existing.Description = item.Description
	existing.Price = item.Price
	existing.Available = item.Available
	existing.UpdatedAt = item.UpdatedAt
	r.byID[item.ItemID] = existing
	return existing, nil
}

func (r *memItemRepo) Delete(_ context.Context, itemID uuid.UUID) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failWith != nil {
		return domain.Item{}, r.failWith
	}
	item, ok := r.byID[itemID]
	if !ok {
		return domain.Item{}, domain.ErrNotFound
	}
	delete(r.byID, itemID)
	return item, nil
}

// freezeTime pins the service clock for expiry assertions.
func (f *fixture) freezeTime(at time.Time) {
	f.service.nowFn = func() time.Time { return at }
}
