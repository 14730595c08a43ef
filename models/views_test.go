package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestView_FallbackLabels(t *testing.T) {
	jr := JoinedRequest{
		ServiceRequest: ServiceRequest{
			ID:        "r1",
			Details:   "leaking tap",
			Address:   "12 Elm St",
			Status:    StatusPending,
			CreatedAt: time.Now(),
		},
	}

	v := NewRequestView(jr, false)
	assert.Equal(t, UnknownService, v.ServiceName)
	assert.Empty(t, v.CustomerName)

	v = NewRequestView(jr, true)
	assert.Equal(t, UnknownService, v.ServiceName)
	assert.Equal(t, UnknownCustomer, v.CustomerName)
}

func TestNewRequestView_ResolvedJoins(t *testing.T) {
	jr := JoinedRequest{
		ServiceRequest: ServiceRequest{ID: "r1", Status: StatusPending},
		Service:        &ServiceType{ID: "s1", Name: "Plumbing"},
		Customer:       &UserProfile{ID: "u1", FullName: "Ada Jones"},
	}

	v := NewRequestView(jr, true)
	assert.Equal(t, "Plumbing", v.ServiceName)
	assert.Equal(t, "Ada Jones", v.CustomerName)
}

func TestNewAssignmentView_MissingRequestJoin(t *testing.T) {
	ja := JoinedAssignment{
		Assignment: Assignment{ID: "a1", RequestID: "r1", Status: AssignmentAssigned},
	}

	v := NewAssignmentView(ja)
	assert.Equal(t, "a1", v.AssignmentID)
	assert.Equal(t, "r1", v.Request.RequestID)
	assert.Equal(t, UnknownService, v.Request.ServiceName)
	assert.Equal(t, UnknownCustomer, v.Request.CustomerName)
}

func TestNewAssignmentView_TransitiveJoins(t *testing.T) {
	ja := JoinedAssignment{
		Assignment: Assignment{ID: "a1", RequestID: "r1", Status: AssignmentAssigned},
		Request: &JoinedRequest{
			ServiceRequest: ServiceRequest{ID: "r1", Status: StatusAssigned},
			Service:        &ServiceType{Name: "Gardening"},
			Customer:       &UserProfile{FullName: "Bo Chen"},
		},
	}

	v := NewAssignmentView(ja)
	assert.Equal(t, "Gardening", v.Request.ServiceName)
	assert.Equal(t, "Bo Chen", v.Request.CustomerName)
	assert.Equal(t, StatusAssigned, v.Request.Status)
}

func TestNewProviderView_FallbackLabel(t *testing.T) {
	v := NewProviderView(JoinedProvider{
		ProviderProfile: ProviderProfile{ID: "p1", HourlyRate: 45, Bio: "reliable", Available: true},
	})
	assert.Equal(t, UnknownProvider, v.FullName)
	assert.Equal(t, []string{"General Services"}, v.ServiceNames)

	v = NewProviderView(JoinedProvider{
		ProviderProfile: ProviderProfile{ID: "p1"},
		Owner:           &UserProfile{FullName: "Cam Diaz"},
	})
	assert.Equal(t, "Cam Diaz", v.FullName)
}
