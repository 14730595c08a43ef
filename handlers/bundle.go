package handlers

import (
	"net/http"

	userRepo "localserve/database/repository/user"
	"localserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerBundle aggregates the handlers and the repository the auth
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Request  *RequestHandler
	Provider *ProviderHandler
	Search   *SearchHandler
}

// currentUserID reads the user ID set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		utils.GetLogger().Error("Invalid user ID type in context", zap.Any("userID", val))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID type"})
		return "", false
	}
	return id, true
}
