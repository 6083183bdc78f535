package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/common"
	"github.com/dmitrijs2005/homefinder/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, a *Account) error {
	query := `INSERT INTO accounts (email, user_id, name, user_type, avatar, phone, salt, verifier)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(email) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query,
		a.User.Email, a.User.ID, a.User.Name, string(a.User.UserType),
		a.User.Avatar, a.User.Phone, a.Salt, a.Verifier)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("account %s: %w", a.User.Email, common.ErrorAlreadyExists)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	query := `SELECT email, user_id, name, user_type, avatar, phone, salt, verifier, created_at
		FROM accounts WHERE email = ?`

	var (
		a        Account
		userType string
	)
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&a.User.Email, &a.User.ID, &a.User.Name, &userType,
		&a.User.Avatar, &a.User.Phone, &a.Salt, &a.Verifier, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	a.User.UserType = models.UserType(userType)
	return &a, nil
}
