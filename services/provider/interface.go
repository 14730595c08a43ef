package provider

import (
	"errors"

	assignmentRepo "localserve/database/repository/assignment"
	providerRepo "localserve/database/repository/provider"
	requestRepo "localserve/database/repository/request"
	"localserve/models"
)

// ErrNoProfile signals that a provider action requiring a profile was
// attempted before first-run setup. No writes happen when it is returned.
var ErrNoProfile = errors.New("provider profile required")

// Dashboard is the provider workflow's loaded state: the profile (nil while
// first-run setup is still needed), the open request feed, and the
// provider's own assignments.
type Dashboard struct {
	Profile           *models.ProviderProfile `json:"profile"`
	NeedsSetup        bool                    `json:"needsSetup"`
	AvailableRequests []models.RequestView    `json:"availableRequests"`
	Assignments       []models.AssignmentView `json:"assignments"`
}

// ProviderService defines the provider workflow.
type ProviderService interface {
	// GetProfile returns the caller's profile, or (nil, nil) when none
	// exists yet: that outcome is the first-run setup signal, not an error.
	GetProfile(userID string) (*models.ProviderProfile, error)
	// CreateProfile inserts a new profile with availability on.
	CreateProfile(userID string, hourlyRate float64, bio string) (*models.ProviderProfile, error)
	// UpdateProfile applies the settings form's partial write and returns
	// the stored row.
	UpdateProfile(userID string, upd models.ProviderProfileUpdate) (*models.ProviderProfile, error)
	// AcceptRequest claims a pending request for the caller's profile.
	AcceptRequest(userID, requestID string) error
	// LoadDashboard resolves the profile, the open request feed, and (when a
	// profile exists) the provider's assignments.
	LoadDashboard(userID string) (*Dashboard, error)
}

// DefaultProviderService is the production implementation of ProviderService.
type DefaultProviderService struct {
	Repo        providerRepo.ProviderRepository
	Requests    requestRepo.RequestRepository
	Assignments assignmentRepo.AssignmentRepository
}
