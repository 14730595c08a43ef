package models

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles. Dashboard routing and route
// gating dispatch on this type, never on raw strings.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

// ParseRole converts a wire string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleProvider:
		return RoleProvider, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider:
		return true
	}
	return false
}

// UserProfile is a marketplace account. Created at registration and read by
// the auth middleware and the joined reads; nothing in this service mutates
// it after creation.
type UserProfile struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"full_name" json:"fullName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
