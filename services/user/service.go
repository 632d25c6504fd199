package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	photographerRepo "lenslink/database/repository/photographer"
	userRepo "lenslink/database/repository/user"
	"lenslink/models"
	"lenslink/services/notification"
	"lenslink/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService defines account and authentication operations.
type UserService interface {
	Register(ctx context.Context, input models.UserRegistration) (*models.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(id, name, phone string) (*models.User, error)
	UpdatePassword(id, currentPassword, newPassword string) error
	Deactivate(id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo             userRepo.UserRepository
	PhotographerRepo photographerRepo.PhotographerRepository
	Notifier         notification.Service
}

// Register creates an account. Photographer registrations also get an empty
// profile so they can fill it in afterwards.
func (s *DefaultUserService) Register(ctx context.Context, input models.UserRegistration) (*models.User, string, error) {
	logger := utils.GetLogger()

	email := strings.ToLower(strings.TrimSpace(input.Email))
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, "", err
	}

	if u.Role == models.RolePhotographer {
		profile := &models.Photographer{
			ID:       uuid.New().String(),
			UserID:   u.ID,
			IsActive: true,
		}
		profile.RecalculateRating()
		if err := s.PhotographerRepo.Create(profile); err != nil {
			logger.Error("failed to create photographer profile",
				zap.String("userID", u.ID), zap.Error(err))
			return nil, "", err
		}
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, utils.AuthTokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	s.cacheToken(ctx, u.ID, token)

	if s.Notifier != nil {
		go func() {
			payload := models.MailPayload{Recipient: u.Email, Kind: models.MailWelcome}
			if err := s.Notifier.Enqueue(context.Background(), payload); err != nil {
				logger.Warn("failed to enqueue welcome mail", zap.Error(err))
			}
		}()
	}

	logger.Info("user registered", zap.String("userID", u.ID), zap.String("role", u.Role))
	return u, token, nil
}

// Authenticate verifies credentials and issues a fresh JWT.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", err
	}
	if u == nil || !u.IsActive {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, utils.AuthTokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	s.cacheToken(ctx, u.ID, token)

	if err := s.Repo.UpdateWithDocument(u.ID, bson.M{"lastLoginAt": time.Now()}); err != nil {
		utils.GetLogger().Warn("failed to stamp last login", zap.String("userID", u.ID), zap.Error(err))
	}

	return u, token, nil
}

// cacheToken stores the token hash in Redis so middleware can validate
// without a database round trip, and mirrors it on the user record for the
// cache-miss fallback path.
func (s *DefaultUserService) cacheToken(ctx context.Context, userID, token string) {
	hash := utils.HashToken(token)

	if err := s.Repo.UpdateWithDocument(userID, bson.M{"tokenHash": hash}); err != nil {
		utils.GetLogger().Warn("failed to persist token hash", zap.String("userID", userID), zap.Error(err))
	}

	cache := utils.GetAuthCacheClient()
	if cache == nil {
		return
	}
	key := utils.AuthCachePrefix + userID
	if err := cache.Set(ctx, key, hash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth token", zap.String("userID", userID), zap.Error(err))
	}
}

// GetUserByID fetches a user record.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

// UpdateProfile updates the mutable identity fields.
func (s *DefaultUserService) UpdateProfile(id, name, phone string) (*models.User, error) {
	fields := bson.M{}
	if name != "" {
		fields["name"] = name
	}
	if phone != "" {
		fields["phone"] = phone
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	if err := s.Repo.UpdateWithDocument(id, fields); err != nil {
		return nil, err
	}
	return s.GetUserByID(id)
}

// UpdatePassword verifies the current password before replacing it.
func (s *DefaultUserService) UpdatePassword(id, currentPassword, newPassword string) error {
	u, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	return s.Repo.UpdateWithDocument(id, bson.M{"passwordHash": string(hash)})
}

// Deactivate soft-disables an account; records are never physically removed.
func (s *DefaultUserService) Deactivate(id string) error {
	return s.Repo.UpdateWithDocument(id, bson.M{"isActive": false})
}
