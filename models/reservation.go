package models

import "time"

// Reservation status lifecycle: pending is the initial state; accepted,
// rejected and cancelled are terminal. Membership in the set is validated;
// no transition graph is enforced beyond that.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// ReservationStatuses lists every allowed status value.
var ReservationStatuses = []string{StatusPending, StatusAccepted, StatusRejected, StatusCancelled}

// IsValidStatus reports whether s is one of the allowed status values.
func IsValidStatus(s string) bool {
	for _, st := range ReservationStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Reservation is a booked appointment linking a client, a pro, a service, a
// date and a time. Name, price and duration are snapshots of the service at
// creation time, not live references.
type Reservation struct {
	ID          string    `bson:"id" json:"id"`
	ClientID    string    `bson:"clientId" json:"clientId"`
	ProID       string    `bson:"proId" json:"proId"`
	ServiceID   string    `bson:"serviceId" json:"serviceId"`
	ServiceName string    `bson:"serviceName" json:"serviceName"`
	Price       float64   `bson:"price" json:"price"`
	Duration    int       `bson:"duration" json:"duration"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time        string    `bson:"time" json:"time"` // "HH:MM"
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateReservationRequest is the booking payload. ClientID is filled from the
// authenticated identity, never from the body.
type CreateReservationRequest struct {
	ClientID  string `json:"-"`
	ProID     string `json:"proId"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
}

// UpdateStatusRequest is the payload for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AvailableSlotsResponse is the slot-listing payload. Slots are derived per
// request and never persisted.
type AvailableSlotsResponse struct {
	ProID          string   `json:"proId"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}
