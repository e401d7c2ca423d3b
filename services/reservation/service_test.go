package reservation

import (
	"context"
	"errors"
	"reflect"
	"testing"

	proRepo "beautyconnect/database/repository/pro"
	reservationRepo "beautyconnect/database/repository/reservation"
	"beautyconnect/models"
)

var (
	_ proRepo.ProDetailsRepository          = (*fakeProRepo)(nil)
	_ reservationRepo.ReservationRepository = (*fakeReservationRepo)(nil)
)

type fakeProRepo struct {
	getFn func(ctx context.Context, proID string) (*models.ProDetails, error)
}

func (f *fakeProRepo) GetByProID(ctx context.Context, proID string) (*models.ProDetails, error) {
	if f.getFn == nil {
		panic("GetByProID not configured")
	}
	return f.getFn(ctx, proID)
}

func (f *fakeProRepo) AddService(ctx context.Context, proID string, svc models.Service) error {
	panic("AddService not configured")
}

func (f *fakeProRepo) UpdateService(ctx context.Context, proID string, svc models.Service) error {
	panic("UpdateService not configured")
}

func (f *fakeProRepo) DeleteService(ctx context.Context, proID, serviceID string) error {
	panic("DeleteService not configured")
}

func (f *fakeProRepo) SetAvailability(ctx context.Context, proID string, availability []models.AvailabilityWindow) error {
	panic("SetAvailability not configured")
}

type fakeReservationRepo struct {
	createFn    func(ctx context.Context, res *models.Reservation) error
	updateFn    func(ctx context.Context, id, status string) (*models.Reservation, error)
	timesFn     func(ctx context.Context, proID, date string) ([]string, error)
	existsFn    func(ctx context.Context, proID, date, timeStr string) (bool, error)
	listClient  func(ctx context.Context, clientID string) ([]models.Reservation, error)
	listPro     func(ctx context.Context, proID string) ([]models.Reservation, error)
	getByIDFn   func(ctx context.Context, id string) (*models.Reservation, error)
	storeTouchN int
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	f.storeTouchN++
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, res)
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	f.storeTouchN++
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Reservation, error) {
	f.storeTouchN++
	if f.updateFn == nil {
		panic("UpdateStatus not configured")
	}
	return f.updateFn(ctx, id, status)
}

func (f *fakeReservationRepo) ListByClient(ctx context.Context, clientID string) ([]models.Reservation, error) {
	if f.listClient == nil {
		panic("ListByClient not configured")
	}
	return f.listClient(ctx, clientID)
}

func (f *fakeReservationRepo) ListByPro(ctx context.Context, proID string) ([]models.Reservation, error) {
	if f.listPro == nil {
		panic("ListByPro not configured")
	}
	return f.listPro(ctx, proID)
}

func (f *fakeReservationRepo) ListTimesForProDate(ctx context.Context, proID, date string) ([]string, error) {
	if f.timesFn == nil {
		panic("ListTimesForProDate not configured")
	}
	return f.timesFn(ctx, proID, date)
}

func (f *fakeReservationRepo) ExistsForSlot(ctx context.Context, proID, date, timeStr string) (bool, error) {
	f.storeTouchN++
	if f.existsFn == nil {
		panic("ExistsForSlot not configured")
	}
	return f.existsFn(ctx, proID, date, timeStr)
}

// thursdayPro has availability 10:00-12:00 on Thursdays and a 30-minute service.
func thursdayPro() *models.ProDetails {
	return &models.ProDetails{
		ProID: "p1",
		Services: []models.Service{
			{ID: "s1", Name: "Haircut", Price: 25, Duration: 30},
		},
		Availability: []models.AvailabilityWindow{
			{Day: "thursday", Enabled: true, Slots: []models.TimeRange{{Start: "10:00", End: "12:00"}}},
		},
	}
}

func proRepoReturning(details *models.ProDetails) *fakeProRepo {
	return &fakeProRepo{
		getFn: func(ctx context.Context, proID string) (*models.ProDetails, error) {
			if details != nil && proID == details.ProID {
				return details, nil
			}
			return nil, nil
		},
	}
}

func TestGetAvailableSlots_ThursdayScenario(t *testing.T) {
	// 2025-05-15 is a Thursday.
	resRepo := &fakeReservationRepo{
		timesFn: func(ctx context.Context, proID, date string) ([]string, error) {
			return nil, nil
		},
	}
	svc := &DefaultReservationService{Pros: proRepoReturning(thursdayPro()), Reservations: resRepo}

	got, err := svc.GetAvailableSlots(context.Background(), "p1", "2025-05-15", "s1")
	if err != nil {
		t.Fatalf("GetAvailableSlots error: %v", err)
	}
	want := []string{"10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got.AvailableSlots, want) {
		t.Fatalf("slots = %v, want %v", got.AvailableSlots, want)
	}
	if got.ProID != "p1" || got.Date != "2025-05-15" {
		t.Fatalf("unexpected response envelope: %+v", got)
	}
}

func TestGetAvailableSlots_ExcludesReservedTimes(t *testing.T) {
	resRepo := &fakeReservationRepo{
		timesFn: func(ctx context.Context, proID, date string) ([]string, error) {
			return []string{"10:30"}, nil
		},
	}
	svc := &DefaultReservationService{Pros: proRepoReturning(thursdayPro()), Reservations: resRepo}

	got, err := svc.GetAvailableSlots(context.Background(), "p1", "2025-05-15", "s1")
	if err != nil {
		t.Fatalf("GetAvailableSlots error: %v", err)
	}
	want := []string{"10:00", "11:00", "11:30"}
	if !reflect.DeepEqual(got.AvailableSlots, want) {
		t.Fatalf("slots = %v, want %v", got.AvailableSlots, want)
	}
}

func TestGetAvailableSlots_NoAvailabilityForWeekday(t *testing.T) {
	// 2025-05-10 is a Saturday; the pro only works Thursdays.
	resRepo := &fakeReservationRepo{
		timesFn: func(ctx context.Context, proID, date string) ([]string, error) {
			return nil, nil
		},
	}
	svc := &DefaultReservationService{Pros: proRepoReturning(thursdayPro()), Reservations: resRepo}

	got, err := svc.GetAvailableSlots(context.Background(), "p1", "2025-05-10", "s1")
	if err != nil {
		t.Fatalf("GetAvailableSlots error: %v", err)
	}
	if len(got.AvailableSlots) != 0 {
		t.Fatalf("expected no slots, got %v", got.AvailableSlots)
	}
}

func TestGetAvailableSlots_InvalidDate(t *testing.T) {
	svc := &DefaultReservationService{Pros: proRepoReturning(thursdayPro()), Reservations: &fakeReservationRepo{}}

	_, err := svc.GetAvailableSlots(context.Background(), "p1", "15-05-2025", "s1")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestGetAvailableSlots_UnknownPro(t *testing.T) {
	svc := &DefaultReservationService{Pros: proRepoReturning(nil), Reservations: &fakeReservationRepo{}}

	_, err := svc.GetAvailableSlots(context.Background(), "ghost", "2025-05-15", "s1")
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("error type = %T, want *NotFoundError", err)
	}
	if nfErr.Resource != "pro" {
		t.Fatalf("resource = %q, want pro", nfErr.Resource)
	}
}

func TestGetAvailableSlots_InvalidServiceDuration(t *testing.T) {
	details := thursdayPro()
	details.Services[0].Duration = 0
	svc := &DefaultReservationService{Pros: proRepoReturning(details), Reservations: &fakeReservationRepo{}}

	_, err := svc.GetAvailableSlots(context.Background(), "p1", "2025-05-15", "s1")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestCreate_UnknownServiceFailsBeforeConflictChecks(t *testing.T) {
	// The fake reservation repo panics on any touch; a NotFound on the
	// service must short-circuit before availability or conflict checks.
	svc := &DefaultReservationService{Pros: proRepoReturning(thursdayPro()), Reservations: &fakeReservationRepo{}}

	_, err := svc.Create(context.Background(), models.CreateReservationRequest{
		ClientID: "c1", ProID: "p1", ServiceID: "nope", Date: "2025-05-15", Time: "10:30",
	})
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("error type = %T, want *NotFoundError", err)
	}
	if nfErr.Resource != "service" {
		t.Fatalf("resource = %q, want service", nfErr.Resource)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	svc := &DefaultReservationService{Pros: &fakeProRepo{}, Reservations: &fakeReservationRepo{}}

	_, err := svc.Create(context.Background(), models.CreateReservationRequest{ClientID: "c1"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	for _, f := range []string{"proId", "serviceId", "date", "time"} {
		if _, ok := vErr.Fields[f]; !ok {
			t.Fatalf("expected field error for %q, got %v", f, vErr.Fields)
		}
	}
}

func TestCreate_OutsideAvailability(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	svc := &DefaultReservationService{Pros: proRepoReturning(thursdayPro()), Reservations: resRepo}

	// 12:00 is the exclusive end of the window.
	_, err := svc.Create(context.Background(), models.CreateReservationRequest{
		ClientID: "c1", ProID: "p1", ServiceID: "s1", Date: "2025-05-15", Time: "12:00",
	})
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("error type = %T, want *ConflictError", err)
	}
	if resRepo.storeTouchN != 0 {
		t.Fatalf("reservation store touched %d times before availability failure", resRepo.storeTouchN)
	}
}

func TestCreate_OffGridTimeInsideWindowIsAccepted(t *testing.T) {
	// Booking validation is a boundary check, not slot generation: 10:45 is
	// not on the 30-minute grid but lies within [10:00, 12:00).
	var created *models.Reservation
	resRepo := &fakeReservationRepo{
		existsFn: func(ctx context.Context, proID, date, timeStr string) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, res *models.Reservation) error {
			created = res
			return nil
		},
	}
	svc := &DefaultReservationService{Pros: proRepoReturning(thursdayPro()), Reservations: resRepo}

	got, err := svc.Create(context.Background(), models.CreateReservationRequest{
		ClientID: "c1", ProID: "p1", ServiceID: "s1", Date: "2025-05-15", Time: "10:45",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created == nil || got.Time != "10:45" {
		t.Fatalf("unexpected reservation: %+v", got)
	}
}

func TestCreate_SlotAlreadyBooked(t *testing.T) {
	resRepo := &fakeReservationRepo{
		existsFn: func(ctx context.Context, proID, date, timeStr string) (bool, error) {
			return proID == "p1" && date == "2025-05-15" && timeStr == "10:00", nil
		},
	}
	svc := &DefaultReservationService{Pros: proRepoReturning(thursdayPro()), Reservations: resRepo}

	// Conflict is keyed on (pro, date, time) alone; the client does not matter.
	for _, client := range []string{"c1", "someone-else"} {
		_, err := svc.Create(context.Background(), models.CreateReservationRequest{
			ClientID: client, ProID: "p1", ServiceID: "s1", Date: "2025-05-15", Time: "10:00",
		})
		var cErr *ConflictError
		if !errors.As(err, &cErr) {
			t.Fatalf("client %s: error type = %T, want *ConflictError", client, err)
		}
	}
}

func TestCreate_DuplicateKeyOnInsertMapsToConflict(t *testing.T) {
	// Two requests race past the pre-check; the unique index rejects the
	// second insert and the caller still sees a conflict.
	resRepo := &fakeReservationRepo{
		existsFn: func(ctx context.Context, proID, date, timeStr string) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, res *models.Reservation) error {
			return reservationRepo.ErrDuplicateSlot
		},
	}
	svc := &DefaultReservationService{Pros: proRepoReturning(thursdayPro()), Reservations: resRepo}

	_, err := svc.Create(context.Background(), models.CreateReservationRequest{
		ClientID: "c1", ProID: "p1", ServiceID: "s1", Date: "2025-05-15", Time: "10:00",
	})
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("error type = %T, want *ConflictError", err)
	}
}

func TestCreate_SnapshotsServiceAndStartsPending(t *testing.T) {
	var created *models.Reservation
	resRepo := &fakeReservationRepo{
		existsFn: func(ctx context.Context, proID, date, timeStr string) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, res *models.Reservation) error {
			created = res
			return nil
		},
	}
	svc := &DefaultReservationService{Pros: proRepoReturning(thursdayPro()), Reservations: resRepo}

	got, err := svc.Create(context.Background(), models.CreateReservationRequest{
		ClientID: "c1", ProID: "p1", ServiceID: "s1", Date: "2025-05-15", Time: "10:30", Location: "studio",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created != got {
		t.Fatalf("returned reservation differs from persisted one")
	}
	if got.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if got.Status != models.StatusPending {
		t.Fatalf("status = %q, want pending", got.Status)
	}
	if got.ServiceName != "Haircut" || got.Price != 25 || got.Duration != 30 {
		t.Fatalf("service snapshot not copied: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestUpdateStatus_RejectsBogusStatusWithoutTouchingStorage(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	svc := &DefaultReservationService{Pros: &fakeProRepo{}, Reservations: resRepo}

	_, err := svc.UpdateStatus(context.Background(), "r1", "bogus")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if resRepo.storeTouchN != 0 {
		t.Fatalf("storage touched %d times for an invalid status", resRepo.storeTouchN)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	resRepo := &fakeReservationRepo{
		updateFn: func(ctx context.Context, id, status string) (*models.Reservation, error) {
			return nil, nil
		},
	}
	svc := &DefaultReservationService{Pros: &fakeProRepo{}, Reservations: resRepo}

	_, err := svc.UpdateStatus(context.Background(), "ghost", models.StatusAccepted)
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("error type = %T, want *NotFoundError", err)
	}
}

func TestUpdateStatus_AllowsEveryEnumValue(t *testing.T) {
	resRepo := &fakeReservationRepo{
		updateFn: func(ctx context.Context, id, status string) (*models.Reservation, error) {
			return &models.Reservation{ID: id, Status: status}, nil
		},
	}
	svc := &DefaultReservationService{Pros: &fakeProRepo{}, Reservations: resRepo}

	for _, status := range models.ReservationStatuses {
		got, err := svc.UpdateStatus(context.Background(), "r1", status)
		if err != nil {
			t.Fatalf("UpdateStatus(%q) error: %v", status, err)
		}
		if got.Status != status {
			t.Fatalf("status = %q, want %q", got.Status, status)
		}
	}
}

func TestEndToEnd_BookThenSlotListingExcludesTime(t *testing.T) {
	// A crude in-memory store standing in for the reservation collection.
	var stored []models.Reservation
	resRepo := &fakeReservationRepo{
		timesFn: func(ctx context.Context, proID, date string) ([]string, error) {
			var times []string
			for _, r := range stored {
				if r.ProID == proID && r.Date == date {
					times = append(times, r.Time)
				}
			}
			return times, nil
		},
		existsFn: func(ctx context.Context, proID, date, timeStr string) (bool, error) {
			for _, r := range stored {
				if r.ProID == proID && r.Date == date && r.Time == timeStr {
					return true, nil
				}
			}
			return false, nil
		},
		createFn: func(ctx context.Context, res *models.Reservation) error {
			stored = append(stored, *res)
			return nil
		},
	}
	svc := &DefaultReservationService{Pros: proRepoReturning(thursdayPro()), Reservations: resRepo}
	ctx := context.Background()

	before, err := svc.GetAvailableSlots(ctx, "p1", "2025-05-15", "s1")
	if err != nil {
		t.Fatalf("GetAvailableSlots error: %v", err)
	}
	want := []string{"10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(before.AvailableSlots, want) {
		t.Fatalf("slots = %v, want %v", before.AvailableSlots, want)
	}

	if _, err := svc.Create(ctx, models.CreateReservationRequest{
		ClientID: "c1", ProID: "p1", ServiceID: "s1", Date: "2025-05-15", Time: "10:30",
	}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	after, err := svc.GetAvailableSlots(ctx, "p1", "2025-05-15", "s1")
	if err != nil {
		t.Fatalf("GetAvailableSlots error: %v", err)
	}
	want = []string{"10:00", "11:00", "11:30"}
	if !reflect.DeepEqual(after.AvailableSlots, want) {
		t.Fatalf("slots after booking = %v, want %v", after.AvailableSlots, want)
	}
}
