package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE accounts (
    email      TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL UNIQUE,
    name       TEXT NOT NULL,
    user_type  TEXT NOT NULL CHECK (user_type IN ('renter', 'owner')),
    avatar     TEXT NOT NULL DEFAULT '',
    phone      TEXT NOT NULL DEFAULT '',
    salt       BLOB NOT NULL,
    verifier   BLOB NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func sampleAccount() *Account {
	return &Account{
		User: models.User{
			ID:       "u-1",
			Email:    "jane@example.com",
			Name:     "Jane Doe",
			UserType: models.UserTypeOwner,
			Avatar:   "https://images.example.com/a.png",
		},
		Salt:     []byte{1, 2, 3},
		Verifier: []byte{4, 5, 6},
	}
}

func TestCreateThenGetByEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, sampleAccount()))

	got, err := r.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, sampleAccount().User, got.User)
	assert.Equal(t, []byte{1, 2, 3}, got.Salt)
	assert.Equal(t, []byte{4, 5, 6}, got.Verifier)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, sampleAccount()))

	dup := sampleAccount()
	dup.User.ID = "u-2"
	err := r.Create(ctx, dup)
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestGetByEmail_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate_DBErrorWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO accounts`).WillReturnError(errors.New("boom"))

	err = NewSQLiteRepository(db).Create(context.Background(), sampleAccount())
	require.ErrorContains(t, err, "failed to insert account")
	require.NoError(t, mock.ExpectationsWereMet())
}
