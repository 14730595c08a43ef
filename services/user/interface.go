package user

import (
	userRepo "localserve/database/repository/user"
	"localserve/models"
)

// UserService defines account operations: registration, sign-in, sign-out,
// and profile reads for the authenticated header/router surface.
type UserService interface {
	Register(req RegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.UserProfile, error)
	SignOut(userID string) error
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
