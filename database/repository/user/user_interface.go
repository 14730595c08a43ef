package userRepo

import (
	"localserve/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user profile data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.UserProfile, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil)
	// when no account exists for the address.
	GetByEmail(email string) (*models.UserProfile, error)
	// Create inserts a new user record.
	Create(user *models.UserProfile) error
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.UserProfile, error)
	// SetTokenHash stores (or clears, with an empty string) the hash of the
	// user's current auth token.
	SetTokenHash(id string, tokenHash string) error
}
