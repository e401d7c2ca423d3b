package models

import "time"

// Roles a user account can act under. A pro is still a user; the active role
// decides which surfaces they may call.
const (
	RoleClient = "client"
	RolePro    = "pro"
)

// User represents an account on the platform (client or pro).
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// IsValidRole reports whether the given role is one of the allowed values.
func IsValidRole(role string) bool {
	return role == RoleClient || role == RolePro
}

// RegisterUserRequest is the payload for account creation.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
	Location string `json:"location"`
}

// AuthRequest is the payload for login.
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token alongside the public user record.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
