package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "beautyconnect/database/repository/user"
	"beautyconnect/models"
	"beautyconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Issued tokens stay valid for a week; logging in again rotates the stored
// hash and invalidates older tokens.
const tokenTTL = 7 * 24 * time.Hour

// DefaultUserService implements Service on top of the user repository and the
// Redis auth cache.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = models.RoleClient
	}
	if !models.IsValidRole(role) {
		return nil, fmt.Errorf("invalid role %q: expected %q or %q", role, models.RoleClient, models.RolePro)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
		Location:     req.Location,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return nil, fmt.Errorf("email already registered")
		}
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, usr)
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(ctx, usr)
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return usr, nil
}

func (s *DefaultUserService) SwitchRole(ctx context.Context, id, role string) (*models.User, error) {
	if !models.IsValidRole(role) {
		return nil, fmt.Errorf("invalid role %q: expected %q or %q", role, models.RoleClient, models.RolePro)
	}
	if err := s.Repo.UpdateRole(ctx, id, role); err != nil {
		return nil, fmt.Errorf("failed to switch role: %w", err)
	}
	// Tokens embed the active role, so a switch forces a fresh login.
	if err := utils.RevokeAuthToken(ctx, id); err != nil {
		utils.GetLogger().Warn("SwitchRole: failed to revoke token", zap.String("id", id), zap.Error(err))
	}
	return s.GetByID(ctx, id)
}

func (s *DefaultUserService) Revoke(ctx context.Context, id string) error {
	return utils.RevokeAuthToken(ctx, id)
}

func (s *DefaultUserService) SetProfileImage(ctx context.Context, id, imageURL string) error {
	return s.Repo.UpdateProfileImage(ctx, id, imageURL)
}

func (s *DefaultUserService) issueToken(ctx context.Context, usr *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if err := utils.StoreAuthToken(ctx, usr.ID, utils.HashToken(token), tokenTTL); err != nil {
		return nil, fmt.Errorf("failed to store auth token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: usr}, nil
}
