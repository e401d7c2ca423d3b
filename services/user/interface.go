package user

import (
	"context"

	"beautyconnect/models"
)

// Service manages accounts and the login flow the scheduling surfaces trust
// for caller identity.
type Service interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	SwitchRole(ctx context.Context, id, role string) (*models.User, error)
	Revoke(ctx context.Context, id string) error
	SetProfileImage(ctx context.Context, id, imageURL string) error
}
