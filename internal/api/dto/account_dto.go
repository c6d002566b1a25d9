package dto

import (
	"time"

	"github.com/spec-kit/blog-service/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountView is the transport shape of an account. It deliberately omits
// the credential hash.
type AccountView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Account AccountView `json:"account"`
	Token   string      `json:"token"`
	Expires time.Time   `json:"expires_at"`
}

// NewAccountView maps the domain record to its transport shape.
func NewAccountView(account *domain.Account) AccountView {
	return AccountView{
		ID:        account.ID,
		Email:     account.Email,
		Status:    string(account.Status),
		CreatedAt: account.CreatedAt,
	}
}
