// Package accounts stores registered credentials for strict authentication
// mode. Passwords are never stored; only an argon2 salt and verifier are.
package accounts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
)

// Account is a registered user plus the material needed to check a password.
type Account struct {
	User      models.User
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}

type Repository interface {
	// Create inserts a new account. It fails with common.ErrorAlreadyExists
	// if the email is taken.
	Create(ctx context.Context, a *Account) error
	// GetByEmail fails with common.ErrorNotFound if no account matches.
	GetByEmail(ctx context.Context, email string) (*Account, error)
}
