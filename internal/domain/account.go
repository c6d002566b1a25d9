package domain

import "time"

// AccountStatus represents lifecycle states for an account.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// Account is the domain model for registered authors.
// Email is stored lowercase; the credential hash never leaves the service layer.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Status       AccountStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the account may authenticate.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}
