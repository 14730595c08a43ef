package request

import (
	"fmt"
	"strings"

	"localserve/models"
	"localserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListOwnRequests returns the customer's requests joined with service names,
// newest first. Missing catalog joins degrade to the fallback label in the
// view mapping.
func (s *DefaultRequestService) ListOwnRequests(customerID string) ([]models.RequestView, error) {
	joined, err := s.Repo.ListByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requests: %w", err)
	}

	views := make([]models.RequestView, 0, len(joined))
	for _, jr := range joined {
		views = append(views, models.NewRequestView(jr, false))
	}
	return views, nil
}

// CreateRequest enforces the submission preconditions, then inserts a new
// request with status pending. A validation failure performs no write.
func (s *DefaultRequestService) CreateRequest(customerID, serviceID, details, address string) (*models.ServiceRequest, error) {
	details = strings.TrimSpace(details)
	address = strings.TrimSpace(address)

	if serviceID == "" {
		return nil, ValidationError{Reason: "a service must be selected"}
	}
	if details == "" || address == "" {
		return nil, ValidationError{Reason: "please fill in all required fields"}
	}

	req := &models.ServiceRequest{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ServiceID:  serviceID,
		Details:    details,
		Address:    address,
		Status:     models.StatusPending,
	}
	if err := s.Repo.Create(req); err != nil {
		utils.GetLogger().Error("CreateRequest: insert failed",
			zap.String("customerId", customerID), zap.Error(err))
		return nil, fmt.Errorf("failed to submit service request: %w", err)
	}
	return req, nil
}
