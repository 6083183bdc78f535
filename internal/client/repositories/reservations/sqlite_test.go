package reservations

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/homefinder/internal/client/migrations"
	"github.com/dmitrijs2005/homefinder/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	t.Cleanup(func() { goose.SetBaseFS(nil) })
	require.NoError(t, goose.SetDialect("sqlite3"))
	goose.SetLogger(goose.NopLogger())
	require.NoError(t, goose.Up(db, "."))
	return db
}

func TestListByStatus_Seeded(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	tests := []struct {
		status models.ReservationStatus
		ids    []string
	}{
		{models.ReservationPending, []string{"r2", "r4"}},
		{models.ReservationConfirmed, []string{"r1", "r5"}},
		{models.ReservationCancelled, []string{"r3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, err := r.ListByStatus(ctx, tt.status)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, res := range got {
				assert.Equal(t, tt.status, res.Status)
				ids = append(ids, res.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestListByStatus_Fields(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.ListByStatus(context.Background(), models.ReservationPending)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	first := got[0]
	assert.Equal(t, "2", first.ApartmentID)
	assert.Equal(t, "Emily Johnson", first.RenterName)
	assert.Equal(t, "2023-06-16", first.Date)
	assert.Equal(t, "2:30 PM", first.Time)
	assert.Contains(t, first.Message, "long-term lease")
	assert.Empty(t, got[1].Message)
}

func TestListByStatus_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	mock.ExpectQuery(`SELECT id, apartment_id`).WithArgs("pending").WillReturnError(boom)

	_, err = NewSQLiteRepository(db).ListByStatus(context.Background(), models.ReservationPending)
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
