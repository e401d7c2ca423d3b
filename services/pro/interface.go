package pro

import (
	"context"

	"beautyconnect/models"
)

// Service manages a pro's service catalog and weekly availability template.
type Service interface {
	GetDetails(ctx context.Context, proID string) (*models.ProDetails, error)
	CreateService(ctx context.Context, proID string, req models.UpsertServiceRequest) (*models.Service, error)
	UpdateService(ctx context.Context, proID, serviceID string, req models.UpsertServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, proID, serviceID string) error
	SetAvailability(ctx context.Context, proID string, availability []models.AvailabilityWindow) error
	GetAvailability(ctx context.Context, proID string) ([]models.AvailabilityWindow, error)
}
