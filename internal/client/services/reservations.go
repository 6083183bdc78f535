package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
	"github.com/dmitrijs2005/homefinder/internal/client/repositories/listings"
	"github.com/dmitrijs2005/homefinder/internal/client/repositories/reservations"
	"github.com/dmitrijs2005/homefinder/internal/common"
)

var ErrUnknownReservationStatus = errors.New("unknown reservation status")

// ReservationEntry is a reservation together with the listing it is for.
type ReservationEntry struct {
	models.Reservation
	Apartment models.Apartment
}

// ReservationService serves the owner's read-only reservations screen.
type ReservationService struct {
	repo     reservations.Repository
	listings listings.Repository
}

func NewReservationService(repo reservations.Repository, listings listings.Repository) *ReservationService {
	return &ReservationService{repo: repo, listings: listings}
}

// ByStatus returns the reservations in one tab of the screen. Reservations
// whose listing is no longer in the catalogue are left out.
func (s *ReservationService) ByStatus(ctx context.Context, status models.ReservationStatus) ([]ReservationEntry, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReservationStatus, status)
	}

	list, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	out := make([]ReservationEntry, 0, len(list))
	for _, r := range list {
		a, err := s.listings.GetByID(ctx, r.ApartmentID)
		if errors.Is(err, common.ErrorNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, ReservationEntry{Reservation: r, Apartment: *a})
	}
	return out, nil
}

// Counts returns the number of reservations per status.
func (s *ReservationService) Counts(ctx context.Context) (map[models.ReservationStatus]int, error) {
	counts := make(map[models.ReservationStatus]int, len(models.ReservationStatuses))
	for _, st := range models.ReservationStatuses {
		list, err := s.ByStatus(ctx, st)
		if err != nil {
			return nil, err
		}
		counts[st] = len(list)
	}
	return counts, nil
}
