package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/client/services"
)

// Reservations prints one status tab of the owner's reservations, pending
// by default.
func (a *App) Reservations(ctx context.Context, status string) error {
	st := models.ReservationPending
	if status != "" {
		st = models.ReservationStatus(status)
	}

	list, err := a.reservations.ByStatus(ctx, st)
	if errors.Is(err, services.ErrUnknownReservationStatus) {
		fmt.Fprintf(a.out, "Unknown status %q. Use pending, confirmed or cancelled.\n", status)
		return nil
	}
	if err != nil {
		return err
	}

	counts, err := a.reservations.Counts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Pending: %d | Confirmed: %d | Cancelled: %d\n",
		counts[models.ReservationPending], counts[models.ReservationConfirmed], counts[models.ReservationCancelled])

	if len(list) == 0 {
		fmt.Fprintf(a.out, "No %s reservations.\n", st)
		return nil
	}
	for _, r := range list {
		fmt.Fprintf(a.out, "  [%s] %s: %s (%s)\n", r.ID, r.RenterName, r.Apartment.Title, r.Apartment.Location.City)
		fmt.Fprintf(a.out, "        %s at %s\n", r.Date, r.Time)
		if r.Message != "" {
			fmt.Fprintf(a.out, "        %q\n", r.Message)
		}
	}
	return nil
}
