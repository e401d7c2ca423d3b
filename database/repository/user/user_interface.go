package userRepo

import (
	"context"

	"beautyconnect/models"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// Create inserts a new user record. Returns ErrEmailTaken when the unique
	// email index rejects the write.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by id. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateRole sets the user's active role. Returns ErrUserNotFound when no
	// record matches.
	UpdateRole(ctx context.Context, id, role string) error
	// UpdateProfileImage sets the user's profile image URL.
	UpdateProfileImage(ctx context.Context, id, imageURL string) error
}
