package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/homefinder/internal/client/models"
)

type fakeReservations struct {
	items []models.Reservation
	err   error
}

func (f *fakeReservations) ListByStatus(ctx context.Context, status models.ReservationStatus) ([]models.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Reservation
	for _, r := range f.items {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func reservationFixture() *fakeReservations {
	return &fakeReservations{items: []models.Reservation{
		{ID: "r1", ApartmentID: "1", RenterName: "John Smith", Status: models.ReservationConfirmed},
		{ID: "r2", ApartmentID: "2", RenterName: "Emily Johnson", Status: models.ReservationPending},
		{ID: "r3", ApartmentID: "99", RenterName: "Ghost", Status: models.ReservationPending},
		{ID: "r4", ApartmentID: "3", RenterName: "Michael Brown", Status: models.ReservationCancelled},
	}}
}

func TestReservationService_ByStatusJoinsListings(t *testing.T) {
	s := NewReservationService(reservationFixture(), catalogue())

	got, err := s.ByStatus(context.Background(), models.ReservationPending)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, "Luxury 2BR", got[0].Apartment.Title)
}

func TestReservationService_UnknownStatus(t *testing.T) {
	s := NewReservationService(reservationFixture(), catalogue())

	_, err := s.ByStatus(context.Background(), models.ReservationStatus("archived"))
	require.ErrorIs(t, err, ErrUnknownReservationStatus)
}

func TestReservationService_Counts(t *testing.T) {
	s := NewReservationService(reservationFixture(), catalogue())

	counts, err := s.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[models.ReservationStatus]int{
		models.ReservationPending:   1,
		models.ReservationConfirmed: 1,
		models.ReservationCancelled: 1,
	}, counts)
}

func TestReservationService_RepositoryError(t *testing.T) {
	boom := errors.New("boom")
	s := NewReservationService(&fakeReservations{err: boom}, catalogue())

	_, err := s.ByStatus(context.Background(), models.ReservationConfirmed)
	require.ErrorIs(t, err, boom)
}
