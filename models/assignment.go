package models

import "time"

// AssignmentStatus is the closed set of assignment states.
type AssignmentStatus string

const (
	AssignmentAssigned  AssignmentStatus = "assigned"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentCancelled AssignmentStatus = "cancelled"
)

// Assignment links a ServiceRequest to the ProviderProfile that accepted it.
type Assignment struct {
	ID         string           `bson:"id" json:"id"`
	RequestID  string           `bson:"request_id" json:"requestId"`
	ProviderID string           `bson:"provider_id" json:"providerId"`
	AssignedAt time.Time        `bson:"assigned_at" json:"assignedAt"`
	Status     AssignmentStatus `bson:"status" json:"status"`
}

// JoinedAssignment is the provider's assignment list read shape: the
// assignment joined transitively to its request, which in turn carries the
// service and requester lookups.
type JoinedAssignment struct {
	Assignment `bson:",inline"`
	Request    *JoinedRequest `bson:"request,omitempty"`
}
