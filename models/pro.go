package models

import "time"

// TimeRange is a single availability window within a day. Start and End are
// naive local wall-clock values in "HH:MM" format.
type TimeRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// AvailabilityWindow is one weekday's entry in a pro's weekly availability
// template. Day is a lowercase English weekday name ("sunday".."saturday").
// Storage does not enforce one entry per weekday; readers must tolerate
// duplicates and aggregate them.
type AvailabilityWindow struct {
	Day     string      `bson:"day" json:"day"`
	Enabled bool        `bson:"enabled" json:"enabled"`
	Slots   []TimeRange `bson:"slots" json:"slots"`
}

// Service is one entry in a pro's service catalog. Duration is in minutes.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Duration    int     `bson:"duration" json:"duration"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// ProDetails is the pro-owned record holding their service catalog and weekly
// availability template. One document per pro.
type ProDetails struct {
	ProID        string               `bson:"proId" json:"proId"`
	Services     []Service            `bson:"services" json:"services"`
	Availability []AvailabilityWindow `bson:"availability" json:"availability"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// FindService resolves a service by id on the pro's catalog. Returns nil when absent.
func (d *ProDetails) FindService(serviceID string) *Service {
	for i := range d.Services {
		if d.Services[i].ID == serviceID {
			return &d.Services[i]
		}
	}
	return nil
}

// UpsertServiceRequest is the payload for creating or updating a catalog entry.
type UpsertServiceRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Description string  `json:"description"`
}

// SetAvailabilityRequest replaces a pro's full weekly availability template.
type SetAvailabilityRequest struct {
	Availability []AvailabilityWindow `json:"availability" binding:"required"`
}
