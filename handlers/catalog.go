package handlers

import (
	"net/http"

	"localserve/services/catalog"
	"localserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the service catalog for the request creation form.
type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{CatalogService: svc}
}

// ListServicesHandler handles GET /api/catalog/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.CatalogService.ListServices()
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
