package provider

import (
	"errors"
	"fmt"
	"strings"

	providerRepo "localserve/database/repository/provider"
	"localserve/models"
	"localserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetProfile returns the caller's profile. The no-rows outcome maps to
// (nil, nil): the caller renders first-run setup. Any other failure is a
// real error.
func (s *DefaultProviderService) GetProfile(userID string) (*models.ProviderProfile, error) {
	profile, err := s.Repo.GetByUserID(userID)
	if errors.Is(err, providerRepo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateProfile inserts a new profile with availability defaulted on. The
// rate/bio form checks live at the handler boundary; this just writes.
func (s *DefaultProviderService) CreateProfile(userID string, hourlyRate float64, bio string) (*models.ProviderProfile, error) {
	profile := &models.ProviderProfile{
		ID:         uuid.New().String(),
		UserID:     userID,
		HourlyRate: hourlyRate,
		Bio:        strings.TrimSpace(bio),
		Available:  true,
	}
	if err := s.Repo.Create(profile); err != nil {
		utils.GetLogger().Error("CreateProfile: insert failed",
			zap.String("userId", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to create provider profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile applies the settings form's partial write against the
// caller's existing profile and returns the row as stored.
func (s *DefaultProviderService) UpdateProfile(userID string, upd models.ProviderProfileUpdate) (*models.ProviderProfile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoProfile
	}

	if upd.Bio != nil {
		trimmed := strings.TrimSpace(*upd.Bio)
		upd.Bio = &trimmed
	}

	updated, err := s.Repo.UpdateFields(profile.ID, upd)
	if err != nil {
		utils.GetLogger().Error("UpdateProfile: update failed",
			zap.String("providerId", profile.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update provider profile: %w", err)
	}
	return updated, nil
}
