package pro

import (
	"context"
	"errors"
	"testing"

	proRepo "beautyconnect/database/repository/pro"
	"beautyconnect/models"
)

type fakeRepo struct {
	added        []models.Service
	availability []models.AvailabilityWindow
	setCalled    bool
}

func (f *fakeRepo) GetByProID(ctx context.Context, proID string) (*models.ProDetails, error) {
	return &models.ProDetails{ProID: proID, Availability: f.availability}, nil
}

func (f *fakeRepo) AddService(ctx context.Context, proID string, svc models.Service) error {
	f.added = append(f.added, svc)
	return nil
}

func (f *fakeRepo) UpdateService(ctx context.Context, proID string, svc models.Service) error {
	return proRepo.ErrServiceNotFound
}

func (f *fakeRepo) DeleteService(ctx context.Context, proID, serviceID string) error {
	return proRepo.ErrServiceNotFound
}

func (f *fakeRepo) SetAvailability(ctx context.Context, proID string, availability []models.AvailabilityWindow) error {
	f.setCalled = true
	f.availability = availability
	return nil
}

func TestCreateService_FieldValidation(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultProService{Repo: repo}

	_, err := svc.CreateService(context.Background(), "p1", models.UpsertServiceRequest{
		Name: "  ", Price: -5, Duration: 0,
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	for _, f := range []string{"name", "price", "duration"} {
		if _, ok := vErr.Fields[f]; !ok {
			t.Fatalf("expected field error for %q, got %v", f, vErr.Fields)
		}
	}
	if len(repo.added) != 0 {
		t.Fatalf("invalid service reached the repository")
	}
}

func TestCreateService_AssignsIDAndTrimsName(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultProService{Repo: repo}

	created, err := svc.CreateService(context.Background(), "p1", models.UpsertServiceRequest{
		Name: "  Manicure ", Price: 30, Duration: 45,
	})
	if err != nil {
		t.Fatalf("CreateService error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if created.Name != "Manicure" {
		t.Fatalf("name = %q, want Manicure", created.Name)
	}
	if len(repo.added) != 1 || repo.added[0].ID != created.ID {
		t.Fatalf("service not persisted: %+v", repo.added)
	}
}

func TestUpdateService_NotFound(t *testing.T) {
	svc := &DefaultProService{Repo: &fakeRepo{}}

	_, err := svc.UpdateService(context.Background(), "p1", "ghost", models.UpsertServiceRequest{
		Name: "Pedicure", Price: 40, Duration: 60,
	})
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("error type = %T, want *NotFoundError", err)
	}
}

func TestSetAvailability_RejectsBadTemplate(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultProService{Repo: repo}

	err := svc.SetAvailability(context.Background(), "p1", []models.AvailabilityWindow{
		{Day: "funday", Enabled: true, Slots: []models.TimeRange{{Start: "9:00", End: "17:00"}}},
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if repo.setCalled {
		t.Fatalf("invalid template reached the repository")
	}
}

func TestSetAvailability_AcceptsMixedCaseDays(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultProService{Repo: repo}

	err := svc.SetAvailability(context.Background(), "p1", []models.AvailabilityWindow{
		{Day: "Thursday", Enabled: true, Slots: []models.TimeRange{{Start: "10:00", End: "12:00"}}},
		{Day: "friday", Enabled: false, Slots: nil},
	})
	if err != nil {
		t.Fatalf("SetAvailability error: %v", err)
	}
	if !repo.setCalled {
		t.Fatalf("template never reached the repository")
	}
}
