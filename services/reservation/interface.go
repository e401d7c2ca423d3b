package reservation

import (
	"context"

	"beautyconnect/models"
)

// Service manages the reservation lifecycle: slot listing, booking with
// availability/conflict validation, status transitions, and owner-scoped
// listings.
type Service interface {
	// GetAvailableSlots expands the pro's availability for the date's weekday
	// into slots sized by the service's duration, minus already-reserved times.
	GetAvailableSlots(ctx context.Context, proID, date, serviceID string) (*models.AvailableSlotsResponse, error)
	// Create validates the proposed slot against availability and existing
	// reservations, then persists a pending reservation with a snapshot of
	// the service's name, price and duration.
	Create(ctx context.Context, req models.CreateReservationRequest) (*models.Reservation, error)
	// UpdateStatus sets a reservation's status. The value must belong to the
	// allowed enumeration; no transition graph is enforced beyond that.
	UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error)
	// ListByClient returns a client's reservations, most recently created first.
	ListByClient(ctx context.Context, clientID string) ([]models.Reservation, error)
	// ListByPro returns a pro's reservations sorted by date then time.
	ListByPro(ctx context.Context, proID string) ([]models.Reservation, error)
}
