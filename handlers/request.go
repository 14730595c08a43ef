package handlers

import (
	"net/http"

	"localserve/services/request"
	"localserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestHandler serves the customer request workflow.
type RequestHandler struct {
	RequestService request.RequestService
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc request.RequestService) *RequestHandler {
	return &RequestHandler{RequestService: svc}
}

// ListMyRequestsHandler handles GET /api/requests.
func (h *RequestHandler) ListMyRequestsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	views, err := h.RequestService.ListOwnRequests(userID)
	if err != nil {
		logger.Error("Failed to list requests", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": views})
}

// CreateRequestHandler handles POST /api/requests. Validation failures come
// back as 400 with the form message; write failures as 500 with the backend
// message, leaving the client free to retry.
func (h *RequestHandler) CreateRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		ServiceID string `json:"serviceId"`
		Details   string `json:"details"`
		Address   string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.RequestService.CreateRequest(userID, req.ServiceID, req.Details, req.Address)
	if err != nil {
		if request.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create request", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Your service request has been submitted successfully.", "request": created})
}
