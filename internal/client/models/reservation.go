package models

// ReservationStatus is the state of a viewing request on an owner's listing.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// ReservationStatuses lists the statuses in the order the owner screen shows them.
var ReservationStatuses = []ReservationStatus{ReservationPending, ReservationConfirmed, ReservationCancelled}

func (s ReservationStatus) Valid() bool {
	return s == ReservationPending || s == ReservationConfirmed || s == ReservationCancelled
}

// Reservation is a renter's request to view a listing. Date and Time are
// kept as displayed.
type Reservation struct {
	ID           string
	ApartmentID  string
	RenterName   string
	RenterAvatar string
	Date         string
	Time         string
	Status       ReservationStatus
	Message      string
}
