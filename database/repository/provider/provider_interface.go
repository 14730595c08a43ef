package providerRepo

import (
	"errors"

	"localserve/models"
)

// ErrNotFound signals that no provider profile exists for the queried key.
// Callers treat it as control flow (the first-run setup signal), never as a
// degraded read.
var ErrNotFound = errors.New("provider profile not found")

// ProviderRepository defines data access for provider profiles.
type ProviderRepository interface {
	// GetByID retrieves a profile by its unique ID.
	GetByID(id string) (*models.ProviderProfile, error)
	// GetByUserID retrieves the profile owned by the given user. Returns
	// ErrNotFound when the user has no profile yet.
	GetByUserID(userID string) (*models.ProviderProfile, error)
	// Create inserts a new provider profile record.
	Create(profile *models.ProviderProfile) error
	// UpdateFields applies a partial update to the profile and returns the
	// row as stored after the write.
	UpdateFields(id string, upd models.ProviderProfileUpdate) (*models.ProviderProfile, error)
	// ListAvailable retrieves all available profiles joined with the owning
	// account for display names.
	ListAvailable() ([]models.JoinedProvider, error)
}
