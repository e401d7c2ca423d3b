package pro

import (
	"context"
	"errors"
	"fmt"
	"strings"

	proRepo "beautyconnect/database/repository/pro"
	"beautyconnect/models"
	"beautyconnect/services/schedule"

	"github.com/google/uuid"
)

// DefaultProService implements Service on top of the pro-details repository.
type DefaultProService struct {
	Repo proRepo.ProDetailsRepository
}

func (s *DefaultProService) GetDetails(ctx context.Context, proID string) (*models.ProDetails, error) {
	details, err := s.Repo.GetByProID(ctx, proID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pro details: %w", err)
	}
	if details == nil {
		return nil, &NotFoundError{Resource: "pro", ID: proID}
	}
	return details, nil
}

func (s *DefaultProService) CreateService(ctx context.Context, proID string, req models.UpsertServiceRequest) (*models.Service, error) {
	if err := validateServiceRequest(req); err != nil {
		return nil, err
	}
	svc := models.Service{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Duration:    req.Duration,
		Description: req.Description,
	}
	if err := s.Repo.AddService(ctx, proID, svc); err != nil {
		return nil, fmt.Errorf("failed to add service: %w", err)
	}
	return &svc, nil
}

func (s *DefaultProService) UpdateService(ctx context.Context, proID, serviceID string, req models.UpsertServiceRequest) (*models.Service, error) {
	if err := validateServiceRequest(req); err != nil {
		return nil, err
	}
	svc := models.Service{
		ID:          serviceID,
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Duration:    req.Duration,
		Description: req.Description,
	}
	if err := s.Repo.UpdateService(ctx, proID, svc); err != nil {
		if errors.Is(err, proRepo.ErrServiceNotFound) {
			return nil, &NotFoundError{Resource: "service", ID: serviceID}
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return &svc, nil
}

func (s *DefaultProService) DeleteService(ctx context.Context, proID, serviceID string) error {
	if err := s.Repo.DeleteService(ctx, proID, serviceID); err != nil {
		if errors.Is(err, proRepo.ErrServiceNotFound) {
			return &NotFoundError{Resource: "service", ID: serviceID}
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (s *DefaultProService) SetAvailability(ctx context.Context, proID string, availability []models.AvailabilityWindow) error {
	fields := map[string]string{}
	for i, w := range availability {
		if !schedule.IsWeekdayName(w.Day) {
			fields[fmt.Sprintf("availability[%d].day", i)] = "must be a lowercase English weekday name"
		}
		for j, r := range w.Slots {
			if !schedule.IsClockTime(r.Start) {
				fields[fmt.Sprintf("availability[%d].slots[%d].start", i, j)] = "expected HH:MM"
			}
			if !schedule.IsClockTime(r.End) {
				fields[fmt.Sprintf("availability[%d].slots[%d].end", i, j)] = "expected HH:MM"
			}
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Message: "invalid availability template", Fields: fields}
	}
	if err := s.Repo.SetAvailability(ctx, proID, availability); err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}
	return nil
}

func (s *DefaultProService) GetAvailability(ctx context.Context, proID string) ([]models.AvailabilityWindow, error) {
	details, err := s.GetDetails(ctx, proID)
	if err != nil {
		return nil, err
	}
	if details.Availability == nil {
		return []models.AvailabilityWindow{}, nil
	}
	return details.Availability, nil
}

func validateServiceRequest(req models.UpsertServiceRequest) error {
	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "required"
	}
	if req.Price < 0 {
		fields["price"] = "must be zero or positive"
	}
	if req.Duration <= 0 {
		fields["duration"] = "must be a positive number of minutes"
	}
	if len(fields) > 0 {
		return &ValidationError{Message: "invalid service payload", Fields: fields}
	}
	return nil
}
