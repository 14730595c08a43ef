package models

import "time"

// RequestStatus is the closed set of service request lifecycle states.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusAssigned   RequestStatus = "assigned"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCancelled  RequestStatus = "cancelled"
)

// requestTransitions is the full lifecycle transition table. Only
// pending -> assigned is driven by this service (the accept action); the
// rest happen through channels outside it but are still validated when a
// status write comes through.
var requestTransitions = map[RequestStatus][]RequestStatus{
	StatusPending:    {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// Valid reports whether the status is a member of the closed set.
func (s RequestStatus) Valid() bool {
	_, ok := requestTransitions[s]
	return ok
}

// CanTransition reports whether the lifecycle permits moving from s to next.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ServiceRequest is a customer's posted need for a service.
type ServiceRequest struct {
	ID         string        `bson:"id" json:"id"`
	CustomerID string        `bson:"customer_id" json:"customerId"`
	ServiceID  string        `bson:"service_id" json:"serviceId"`
	Details    string        `bson:"details" json:"details"`
	Address    string        `bson:"address" json:"address"`
	Status     RequestStatus `bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
}

// JoinedRequest is the read shape for request listings: the request plus its
// optional looked-up relations. A nil relation means the join resolved to
// nothing and the view mapping substitutes the fallback label.
type JoinedRequest struct {
	ServiceRequest `bson:",inline"`
	Service        *ServiceType `bson:"service,omitempty"`
	Customer       *UserProfile `bson:"customer,omitempty"`
}
