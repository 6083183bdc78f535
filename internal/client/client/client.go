package client

import (
	"context"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
)

// Backend is the remote account service the session store talks to.
type Backend interface {
	Login(ctx context.Context, email, password string, userType models.UserType) (*models.User, error)
	Register(ctx context.Context, name, email, password string, userType models.UserType) (*models.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	// IssueToken mints an access token for u.
	IssueToken(u models.User) (string, error)
	// VerifyToken checks that token is valid and was issued to u.
	VerifyToken(token string, u models.User) error
}
