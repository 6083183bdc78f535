// Package reservations reads the viewing requests shown on the owner's
// reservations screen. Requests are seeded by the client migrations and are
// read-only at runtime.
package reservations

import (
	"context"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
)

type Repository interface {
	// ListByStatus returns the reservations with the given status, oldest
	// date first.
	ListByStatus(ctx context.Context, status models.ReservationStatus) ([]models.Reservation, error)
}
