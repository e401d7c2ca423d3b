package reservationRepo

import (
	"context"

	"beautyconnect/models"
)

// ReservationRepository defines data access for reservation records.
type ReservationRepository interface {
	// Create inserts a new reservation. Returns ErrDuplicateSlot when the
	// unique (proId, date, time) index rejects the write.
	Create(ctx context.Context, res *models.Reservation) error
	// GetByID retrieves a reservation by id. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// UpdateStatus sets the status field and returns the updated record, or
	// (nil, nil) when no reservation matches the id.
	UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error)
	// ListByClient returns a client's reservations, most recently created first.
	ListByClient(ctx context.Context, clientID string) ([]models.Reservation, error)
	// ListByPro returns a pro's reservations sorted by date then time ascending.
	ListByPro(ctx context.Context, proID string) ([]models.Reservation, error)
	// ListTimesForProDate returns the reserved "HH:MM" values for a pro on a date.
	ListTimesForProDate(ctx context.Context, proID, date string) ([]string, error)
	// ExistsForSlot reports whether a reservation exists for the exact
	// (proId, date, time) triple.
	ExistsForSlot(ctx context.Context, proID, date, timeStr string) (bool, error)
}
