package models

import "time"

// ProviderProfile is a provider's rate/bio/availability record. One per user
// with the provider role; its absence is what sends a provider through
// first-run setup.
type ProviderProfile struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"userId"`
	HourlyRate float64   `bson:"hourly_rate" json:"hourlyRate"`
	Bio        string    `bson:"bio" json:"bio"`
	Available  bool      `bson:"is_available" json:"isAvailable"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProviderProfileUpdate carries the settings form's partial write. Nil fields
// are left untouched.
type ProviderProfileUpdate struct {
	HourlyRate *float64 `json:"hourlyRate,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
	Available  *bool    `json:"isAvailable,omitempty"`
}

// JoinedProvider is the directory read shape: the profile plus the owning
// account, looked up for the display name.
type JoinedProvider struct {
	ProviderProfile `bson:",inline"`
	Owner           *UserProfile `bson:"owner,omitempty"`
}
