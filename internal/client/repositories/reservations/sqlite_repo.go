package reservations

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ListByStatus(ctx context.Context, status models.ReservationStatus) ([]models.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, apartment_id, renter_name, renter_avatar, date, time, status, message
		FROM reservations
		WHERE status = ?
		ORDER BY date, id
	`, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to select reservations: %w", err)
	}
	defer rows.Close()

	var result []models.Reservation
	for rows.Next() {
		var (
			res models.Reservation
			st  string
		)
		if err := rows.Scan(&res.ID, &res.ApartmentID, &res.RenterName, &res.RenterAvatar,
			&res.Date, &res.Time, &st, &res.Message); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		res.Status = models.ReservationStatus(st)
		result = append(result, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}
	return result, nil
}
