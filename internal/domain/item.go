package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single rentable listing. No business rules beyond id uniqueness
// apply; handlers pass it through the store as-is.
type Item struct {
	ItemID      uuid.UUID
	Name        string
	Description string
	Price       float64
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
