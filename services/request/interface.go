package request

import (
	requestRepo "localserve/database/repository/request"
	"localserve/models"
)

// RequestService defines the customer-facing request workflow.
type RequestService interface {
	// ListOwnRequests returns the customer's requests, newest first.
	ListOwnRequests(customerID string) ([]models.RequestView, error)
	// CreateRequest validates the submission and inserts a pending request.
	CreateRequest(customerID, serviceID, details, address string) (*models.ServiceRequest, error)
}

// DefaultRequestService is the production implementation of RequestService.
type DefaultRequestService struct {
	Repo requestRepo.RequestRepository
}
