package models

import "time"

// Fallback labels substituted when a joined relation resolves to nothing.
// Views never carry an empty name because of a missing join.
const (
	UnknownService  = "Unknown Service"
	UnknownCustomer = "Unknown Customer"
	UnknownProvider = "Unknown Provider"
)

// RequestView is the request card shown in listings. CustomerName is only
// populated for provider-facing reads.
type RequestView struct {
	RequestID    string        `json:"requestId"`
	ServiceName  string        `json:"serviceName"`
	Details      string        `json:"details"`
	Address      string        `json:"address"`
	Status       RequestStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	CustomerName string        `json:"customerName,omitempty"`
}

// AssignmentView is an accepted request as seen from the provider dashboard.
type AssignmentView struct {
	AssignmentID string           `json:"assignmentId"`
	AssignedAt   time.Time        `json:"assignedAt"`
	Status       AssignmentStatus `json:"status"`
	Request      RequestView      `json:"request"`
}

// ProviderView is a directory entry in the provider search listing.
type ProviderView struct {
	ProviderID   string   `json:"providerId"`
	FullName     string   `json:"fullName"`
	HourlyRate   float64  `json:"hourlyRate"`
	Bio          string   `json:"bio"`
	Available    bool     `json:"isAvailable"`
	ServiceNames []string `json:"serviceNames"`
}

// NewRequestView maps a joined request into its view, resolving fallback
// labels here so nothing downstream ever sees a nil relation.
func NewRequestView(jr JoinedRequest, withCustomer bool) RequestView {
	v := RequestView{
		RequestID:   jr.ID,
		ServiceName: UnknownService,
		Details:     jr.Details,
		Address:     jr.Address,
		Status:      jr.Status,
		CreatedAt:   jr.CreatedAt,
	}
	if jr.Service != nil {
		v.ServiceName = jr.Service.Name
	}
	if withCustomer {
		v.CustomerName = UnknownCustomer
		if jr.Customer != nil {
			v.CustomerName = jr.Customer.FullName
		}
	}
	return v
}

// NewAssignmentView maps a joined assignment into its view. An assignment
// whose request join came back empty still renders, with fallback labels
// throughout.
func NewAssignmentView(ja JoinedAssignment) AssignmentView {
	v := AssignmentView{
		AssignmentID: ja.ID,
		AssignedAt:   ja.AssignedAt,
		Status:       ja.Status,
	}
	if ja.Request != nil {
		v.Request = NewRequestView(*ja.Request, true)
	} else {
		v.Request = RequestView{
			RequestID:    ja.RequestID,
			ServiceName:  UnknownService,
			CustomerName: UnknownCustomer,
		}
	}
	return v
}

// NewProviderView maps a joined provider into a directory entry. The
// service association is not modeled on profiles, so every entry carries the
// same placeholder category.
func NewProviderView(jp JoinedProvider) ProviderView {
	v := ProviderView{
		ProviderID:   jp.ID,
		FullName:     UnknownProvider,
		HourlyRate:   jp.HourlyRate,
		Bio:          jp.Bio,
		Available:    jp.Available,
		ServiceNames: []string{"General Services"},
	}
	if jp.Owner != nil {
		v.FullName = jp.Owner.FullName
	}
	return v
}
