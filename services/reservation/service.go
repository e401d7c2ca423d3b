package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	proRepo "beautyconnect/database/repository/pro"
	reservationRepo "beautyconnect/database/repository/reservation"
	"beautyconnect/models"
	"beautyconnect/services/schedule"
	"beautyconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReservationService implements Service on top of the pro-details and
// reservation repositories.
type DefaultReservationService struct {
	Pros         proRepo.ProDetailsRepository
	Reservations reservationRepo.ReservationRepository
}

func (s *DefaultReservationService) GetAvailableSlots(ctx context.Context, proID, date, serviceID string) (*models.AvailableSlotsResponse, error) {
	if proID == "" || date == "" || serviceID == "" {
		fields := map[string]string{}
		if proID == "" {
			fields["proId"] = "required"
		}
		if date == "" {
			fields["date"] = "required"
		}
		if serviceID == "" {
			fields["serviceId"] = "required"
		}
		return nil, missingFields(fields)
	}

	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, &ValidationError{Message: err.Error(), Fields: map[string]string{"date": "expected YYYY-MM-DD"}}
	}

	details, svc, err := s.resolveService(ctx, proID, serviceID)
	if err != nil {
		return nil, err
	}
	if svc.Duration <= 0 {
		return nil, &ValidationError{Message: "service has an invalid duration", Fields: map[string]string{"duration": "must be a positive number of minutes"}}
	}

	windows := schedule.WindowsForWeekday(details.Availability, schedule.WeekdayName(day))
	slots := schedule.GenerateSlots(windows, svc.Duration)

	reserved, err := s.Reservations.ListTimesForProDate(ctx, proID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing reservations: %w", err)
	}
	available := schedule.SubtractReserved(slots, reserved)
	if available == nil {
		available = []string{}
	}

	return &models.AvailableSlotsResponse{
		ProID:          proID,
		Date:           date,
		AvailableSlots: available,
	}, nil
}

func (s *DefaultReservationService) Create(ctx context.Context, req models.CreateReservationRequest) (*models.Reservation, error) {
	fields := map[string]string{}
	if req.ClientID == "" {
		fields["clientId"] = "required"
	}
	if req.ProID == "" {
		fields["proId"] = "required"
	}
	if req.ServiceID == "" {
		fields["serviceId"] = "required"
	}
	if req.Date == "" {
		fields["date"] = "required"
	}
	if req.Time == "" {
		fields["time"] = "required"
	}
	if len(fields) > 0 {
		return nil, missingFields(fields)
	}

	day, err := schedule.ParseDate(req.Date)
	if err != nil {
		return nil, &ValidationError{Message: err.Error(), Fields: map[string]string{"date": "expected YYYY-MM-DD"}}
	}
	if _, err := schedule.ParseTime(req.Time); err != nil {
		return nil, &ValidationError{Message: err.Error(), Fields: map[string]string{"time": "expected HH:MM"}}
	}

	// Service resolution runs before any availability or conflict check.
	details, svc, err := s.resolveService(ctx, req.ProID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	windows := schedule.WindowsForWeekday(details.Availability, schedule.WeekdayName(day))
	if !schedule.ContainsTime(windows, req.Time) {
		return nil, &ConflictError{Reason: "requested time is outside the pro's availability"}
	}

	// Fast-path rejection; the unique index is the authoritative guard.
	taken, err := s.Reservations.ExistsForSlot(ctx, req.ProID, req.Date, req.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to check for conflicting reservations: %w", err)
	}
	if taken {
		return nil, &ConflictError{Reason: "requested slot is already booked"}
	}

	res := &models.Reservation{
		ID:          uuid.NewString(),
		ClientID:    req.ClientID,
		ProID:       req.ProID,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Price:       svc.Price,
		Duration:    svc.Duration,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}
	if err := s.Reservations.Create(ctx, res); err != nil {
		if errors.Is(err, reservationRepo.ErrDuplicateSlot) {
			return nil, &ConflictError{Reason: "requested slot is already booked"}
		}
		return nil, fmt.Errorf("failed to persist reservation: %w", err)
	}

	utils.GetLogger().Info("reservation created",
		zap.String("id", res.ID),
		zap.String("proId", res.ProID),
		zap.String("date", res.Date),
		zap.String("time", res.Time),
	)
	return res, nil
}

func (s *DefaultReservationService) UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error) {
	if !models.IsValidStatus(status) {
		return nil, &ValidationError{
			Message: fmt.Sprintf("invalid status %q", status),
			Fields:  map[string]string{"status": "must be one of pending, accepted, rejected, cancelled"},
		}
	}
	res, err := s.Reservations.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
	}
	if res == nil {
		return nil, &NotFoundError{Resource: "reservation", ID: id}
	}
	return res, nil
}

func (s *DefaultReservationService) ListByClient(ctx context.Context, clientID string) ([]models.Reservation, error) {
	return s.Reservations.ListByClient(ctx, clientID)
}

func (s *DefaultReservationService) ListByPro(ctx context.Context, proID string) ([]models.Reservation, error) {
	return s.Reservations.ListByPro(ctx, proID)
}

// resolveService loads the pro's details record and resolves the service on
// its catalog.
func (s *DefaultReservationService) resolveService(ctx context.Context, proID, serviceID string) (*models.ProDetails, *models.Service, error) {
	details, err := s.Pros.GetByProID(ctx, proID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load pro details: %w", err)
	}
	if details == nil {
		return nil, nil, &NotFoundError{Resource: "pro", ID: proID}
	}
	svc := details.FindService(serviceID)
	if svc == nil {
		return nil, nil, &NotFoundError{Resource: "service", ID: serviceID}
	}
	return details, svc, nil
}
