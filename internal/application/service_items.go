package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentmy/rentmy-api/internal/domain"
)

func (s *Service) ListItems(ctx context.Context) ([]ItemView, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, toItemView(item))
	}
	return views, nil
}

func (s *Service) GetItem(ctx context.Context, itemID uuid.UUID) (ItemView, error) {
	item, err := s.items.Get(ctx, itemID)
	if err != nil {
		return ItemView{}, err
	}
	return toItemView(item), nil
}

func (s *Service) CreateItem(ctx context.Context, req ItemRequest) (ItemView, error) {
	now := s.nowFn()
	item, err := s.items.Create(ctx, domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   req.Available,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return ItemView{}, fmt.Errorf("create item: %w", err)
	}
	return toItemView(item), nil
}

// UpdateItem replaces a stored item. The path/body id agreement check runs
// before any store access, per the REST contract for PUT.
func (s *Service) UpdateItem(ctx context.Context, itemID uuid.UUID, req ItemRequest) error {
	if req.ID != itemID {
		return domain.ErrIDMismatch
	}

	_, err := s.items.Update(ctx, domain.Item{
		ItemID:      itemID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   req.Available,
		UpdatedAt:   s.nowFn(),
	})
	return err
}

func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) (ItemView, error) {
	item, err := s.items.Delete(ctx, itemID)
	if err != nil {
		return ItemView{}, err
	}
	return toItemView(item), nil
}
