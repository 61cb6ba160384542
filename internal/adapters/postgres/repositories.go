package postgres

import (
	"gorm.io/gorm"

	"github.com/rentmy/rentmy-api/internal/ports"
)

type Repositories struct {
	Users ports.UserRepository
	Items ports.ItemRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users: &userRepository{db: db},
		Items: &itemRepository{db: db},
	}
}
