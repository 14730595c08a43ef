package handlers

import (
	"errors"
	"net/http"
	"strings"

	"localserve/models"
	"localserve/services/provider"
	"localserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves the provider workflow: dashboard load, first-run
// profile setup, settings, and the accept action.
type ProviderHandler struct {
	ProviderService provider.ProviderService
}

// NewProviderHandler creates a ProviderHandler.
func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{ProviderService: svc}
}

// GetDashboardHandler handles GET /api/provider/dashboard. A dashboard with
// needsSetup=true and no profile means the client should show first-run
// setup.
func (h *ProviderHandler) GetDashboardHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dash, err := h.ProviderService.LoadDashboard(userID)
	if err != nil {
		logger.Error("Failed to load provider dashboard", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dash)
}

// CreateProfileHandler handles POST /api/provider/profile. The binding
// enforces the first-run form's checks: rate must be positive and the bio
// non-empty after trimming.
func (h *ProviderHandler) CreateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		HourlyRate float64 `json:"hourlyRate" binding:"required,gt=0"`
		Bio        string  `json:"bio" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Bio) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bio must not be empty"})
		return
	}

	profile, err := h.ProviderService.CreateProfile(userID, req.HourlyRate, req.Bio)
	if err != nil {
		logger.Error("Failed to create provider profile", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Provider profile created successfully.", "profile": profile})
}

// UpdateProfileHandler handles PATCH /api/provider/profile. The settings
// form sends all three fields, but partial writes are accepted.
func (h *ProviderHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var upd models.ProviderProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if upd.HourlyRate != nil && *upd.HourlyRate <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hourly rate must be greater than zero"})
		return
	}

	profile, err := h.ProviderService.UpdateProfile(userID, upd)
	if err != nil {
		if errors.Is(err, provider.ErrNoProfile) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update provider profile", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully.", "profile": profile})
}

// AcceptRequestHandler handles POST /api/provider/requests/:id/accept.
func (h *ProviderHandler) AcceptRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	requestID := c.Param("id")

	if err := h.ProviderService.AcceptRequest(userID, requestID); err != nil {
		if errors.Is(err, provider.ErrNoProfile) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to accept request",
			zap.String("userId", userID), zap.String("requestId", requestID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request accepted successfully."})
}
