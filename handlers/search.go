package handlers

import (
	"net/http"

	"localserve/services/search"
	"localserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves the provider directory behind the "Find Providers"
// tab.
type SearchHandler struct {
	SearchService search.SearchService
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc search.SearchService) *SearchHandler {
	return &SearchHandler{SearchService: svc}
}

// SearchProvidersHandler handles GET /api/search/providers?q=term.
func (h *SearchHandler) SearchProvidersHandler(c *gin.Context) {
	term := c.Query("q")
	providers, err := h.SearchService.ListProviders(term)
	if err != nil {
		utils.GetLogger().Error("Failed to search providers", zap.String("term", term), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}
