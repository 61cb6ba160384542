package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/rentmy/rentmy-api/internal/domain"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the response envelope shared by register and login.
// Exactly one of Token or Errors is populated, keyed off Success.
type AuthResult struct {
	Success bool     `json:"success"`
	Token   string   `json:"token,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Canonical auth failure messages. Login failures share one message whether
// the email is unknown or the password is wrong, so the response leaks
// nothing about which accounts exist.
const (
	msgInvalidPayload = "Invalid payload"
	msgEmailInUse     = "Email already in use"
	msgInvalidLogin   = "Invalid login request"
)

func authFailure(messages ...string) AuthResult {
	return AuthResult{Success: false, Errors: messages}
}

// InvalidPayloadResult is the envelope for requests that fail shape
// validation before reaching the service.
func InvalidPayloadResult() AuthResult {
	return authFailure(msgInvalidPayload)
}

type ItemRequest struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Available   bool      `json:"available"`
}

type ItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toItemView(item domain.Item) ItemView {
	return ItemView{
		ID:          item.ItemID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
