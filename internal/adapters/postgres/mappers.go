package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rentmy/rentmy-api/internal/domain"
)

func toDomainUser(row userModel) domain.User {
	return domain.User{
		UserID:       row.UserID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func toDomainItem(row itemModel) domain.Item {
	return domain.Item{
		ItemID:      row.ItemID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Available:   row.Available,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
