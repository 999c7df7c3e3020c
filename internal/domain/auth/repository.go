package auth

import (
	"context"
)

// AccountRepository defines data access methods for login accounts.
type AccountRepository interface {
	// GetByEmail retrieves an account by email
	GetByEmail(ctx context.Context, email string) (Account, error)

	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id string) (Account, error)

	// Create creates a new account
	Create(ctx context.Context, account Account) (Account, error)
}
