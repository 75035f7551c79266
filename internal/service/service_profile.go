package service

import (
	"context"
	"fmt"

	"github.com/checkdaily/checkdaily/internal/auth"
	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/internal/store"
	"github.com/checkdaily/checkdaily/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	userRepository store.UserRepository
	hasher         *auth.Hasher
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService backed by the given user
// repository and password hasher.
func NewProfileService(userRepository store.UserRepository, hasher *auth.Hasher, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Profile returns the user's full profile record.
func (p *profileService) Profile(ctx context.Context, userID int64) (models.User, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies a partial profile update. Changing username or
// email to a value held by another account surfaces as
// store.ErrUserAlreadyExists; the response stays generic about which field
// conflicted.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username != nil && *req.Username == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if req.Email != nil && *req.Email == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	updated, err := p.userRepository.UpdateUser(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

// DeleteAccount permanently removes the user and, through cascade, every
// check and day status they own. The password must be re-confirmed first;
// a mismatch surfaces as ErrInvalidCredentials without touching the data.
func (p *profileService) DeleteAccount(ctx context.Context, userID int64, password string) error {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("profile lookup failed: %w", err)
	}

	if !p.hasher.VerifyPassword(password, user.PasswordHash) {
		log.Warn().Int64("id", userID).Msg("account deletion rejected: wrong password")
		return ErrInvalidCredentials
	}

	if err := p.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	log.Info().Int64("id", userID).Msg("account deleted")
	return nil
}
