package user

import "localserve/models"

// RegistrationRequest carries the registration form fields.
type RegistrationRequest struct {
	FullName string
	Email    string
	Password string
	Role     models.Role
}

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	Token string             `json:"token"`
	User  models.UserProfile `json:"user"`
}
