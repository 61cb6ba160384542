package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentmy/rentmy-api/internal/domain"
)

type itemRepository struct {
	db *gorm.DB
}

func (r *itemRepository) List(ctx context.Context) ([]domain.Item, error) {
	var rows []itemModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainItem(row))
	}
	return result, nil
}

func (r *itemRepository) Get(ctx context.Context, itemID uuid.UUID) (domain.Item, error) {
	var rec itemModel
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Item{}, domain.ErrNotFound
		}
		return domain.Item{}, err
	}
	return toDomainItem(rec), nil
}

func (r *itemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	rec := itemModel{
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Item{}, err
	}
	return toDomainItem(rec), nil
}

// Update replaces the mutable columns of an existing item in a transaction,
// so the existence check and the write observe the same row.
func (r *itemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	var result domain.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec itemModel
		if err := tx.Where("item_id = ?", item.ItemID).Take(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		rec.Name = item.Name
		rec.Description = item.Description
		rec.Price = item.Price
		rec.Available = item.Available
		rec.UpdatedAt = item.UpdatedAt
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}

		result = toDomainItem(rec)
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}
	return result, nil
}

// Delete removes the item and returns its last stored state.
func (r *itemRepository) Delete(ctx context.Context, itemID uuid.UUID) (domain.Item, error) {
	var result domain.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec itemModel
		if err := tx.Where("item_id = ?", itemID).Take(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&itemModel{}, "item_id = ?", itemID).Error; err != nil {
			return err
		}
		result = toDomainItem(rec)
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}
	return result, nil
}
