package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localserve/config"
	"localserve/database"
	assignmentRepo "localserve/database/repository/assignment"
	catalogRepo "localserve/database/repository/catalog"
	providerRepo "localserve/database/repository/provider"
	requestRepo "localserve/database/repository/request"
	userRepoPkg "localserve/database/repository/user"
	"localserve/handlers"
	"localserve/middleware"
	"localserve/routes"
	"localserve/services/catalog"
	"localserve/services/provider"
	"localserve/services/request"
	"localserve/services/search"
	"localserve/services/user"
	"localserve/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	svcRepo := catalogRepo.NewMongoCatalogRepo()
	reqRepo := requestRepo.NewMongoRequestRepo()
	provRepo := providerRepo.NewMongoProviderRepo()
	asgRepo := assignmentRepo.NewMongoAssignmentRepo()

	if err := svcRepo.Seed(catalog.DefaultEntries()); err != nil {
		logger.Sugar().Warnf("main: failed to seed service catalog: %v", err)
	}

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	catalogService := &catalog.DefaultCatalogService{
		Repo:  svcRepo,
		Cache: utils.GetCacheClient(),
	}
	requestService := &request.DefaultRequestService{Repo: reqRepo}
	providerService := &provider.DefaultProviderService{
		Repo:        provRepo,
		Requests:    reqRepo,
		Assignments: asgRepo,
	}
	searchService := &search.DefaultSearchService{Repo: provRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Auth:     handlers.NewAuthHandler(userService),
		Catalog:  handlers.NewCatalogHandler(catalogService),
		Request:  handlers.NewRequestHandler(requestService),
		Provider: handlers.NewProviderHandler(providerService),
		Search:   handlers.NewSearchHandler(searchService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
