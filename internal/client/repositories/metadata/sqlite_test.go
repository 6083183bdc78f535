package metadata

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T, schema string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

const metadataSchema = `CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`

func TestSQLiteRepository_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Repository {
		return NewSQLiteRepository(setupDB(t, metadataSchema))
	})
}

func TestSQLiteRepository_ClosedDBErrorsAreWrapped(t *testing.T) {
	db := setupDB(t, metadataSchema)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	v, err := r.Get(ctx, "auth-storage")
	require.ErrorContains(t, err, "failed to get metadata[auth-storage]")
	assert.Nil(t, v)

	require.ErrorContains(t, r.Set(ctx, "auth-storage", []byte("{}")), "failed to set metadata[auth-storage]")
}

func TestSQLiteRepository_SetFailureKeepsCause(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	diskFull := errors.New("database or disk is full")
	mock.ExpectExec(`INSERT INTO metadata`).
		WithArgs("favorites-storage", []byte(`{"state":{"favorites":["1"]},"version":0}`)).
		WillReturnError(diskFull)

	r := NewSQLiteRepository(db)
	err = r.Set(context.Background(), "favorites-storage", []byte(`{"state":{"favorites":["1"]},"version":0}`))
	require.ErrorIs(t, err, diskFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_GetNullValue(t *testing.T) {
	db := setupDB(t, `CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB);`)
	r := NewSQLiteRepository(db)

	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES ('bad', NULL);`)
	require.NoError(t, err)

	v, err := r.Get(context.Background(), "bad")
	require.NoError(t, err)
	require.Nil(t, v)
}
