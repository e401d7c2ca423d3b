package proRepo

import (
	"context"

	"beautyconnect/models"
)

// ProDetailsRepository defines data access for a pro's service catalog and
// weekly availability template.
type ProDetailsRepository interface {
	// GetByProID retrieves the details record for a pro. Returns (nil, nil)
	// when no record exists.
	GetByProID(ctx context.Context, proID string) (*models.ProDetails, error)
	// AddService appends a service to the pro's catalog, creating the details
	// record if needed.
	AddService(ctx context.Context, proID string, svc models.Service) error
	// UpdateService replaces the catalog entry with the matching id. Returns
	// ErrServiceNotFound when no entry matches.
	UpdateService(ctx context.Context, proID string, svc models.Service) error
	// DeleteService removes the catalog entry with the matching id. Returns
	// ErrServiceNotFound when no entry matches.
	DeleteService(ctx context.Context, proID, serviceID string) error
	// SetAvailability replaces the pro's weekly availability template,
	// creating the details record if needed.
	SetAvailability(ctx context.Context, proID string, availability []models.AvailabilityWindow) error
}
