package routes

import (
	"net/http"
	"time"

	"localserve/handlers"
	"localserve/middleware"
	"localserve/models"
	"localserve/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.MeHandler)
		api.POST("/signout", hb.Auth.SignOutHandler)
	}
}

// RegisterCatalogRoutes registers the service catalog endpoint.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/services", hb.Catalog.ListServicesHandler)
	}
}

// RegisterRequestRoutes registers the customer request workflow.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/requests")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleCustomer))
		api.GET("", hb.Request.ListMyRequestsHandler)
		api.POST("", hb.Request.CreateRequestHandler)
	}
}

// RegisterProviderRoutes registers the provider workflow.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/provider")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleProvider))
		api.GET("/dashboard", hb.Provider.GetDashboardHandler)
		api.POST("/profile", hb.Provider.CreateProfileHandler)
		api.PATCH("/profile", hb.Provider.UpdateProfileHandler)
		api.POST("/requests/:id/accept", hb.Provider.AcceptRequestHandler)
	}
}

// RegisterSearchRoutes registers the provider directory endpoint.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/providers", hb.Search.SearchProvidersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterHealthRoute(r)
}
