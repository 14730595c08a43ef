package requestRepo

import "localserve/models"

// RequestRepository defines data access for service requests.
type RequestRepository interface {
	// Create inserts a new service request record.
	Create(req *models.ServiceRequest) error
	// GetByID retrieves a request by its unique ID.
	GetByID(id string) (*models.ServiceRequest, error)
	// ListByCustomer retrieves a customer's requests joined with the service
	// catalog, newest first.
	ListByCustomer(customerID string) ([]models.JoinedRequest, error)
	// ListPending retrieves all pending requests joined with the service
	// catalog and the requesting customer, newest first.
	ListPending() ([]models.JoinedRequest, error)
	// UpdateStatus moves a request from one status to another. The filter
	// includes the expected current status, so a request that already moved
	// on is not matched.
	UpdateStatus(id string, from, to models.RequestStatus) error
}
