package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"psrcustoms/config"
	"psrcustoms/database"
	adminRepoPkg "psrcustoms/database/repository/admin"
	bookingRepoPkg "psrcustoms/database/repository/booking"
	messageRepoPkg "psrcustoms/database/repository/message"
	serviceRepoPkg "psrcustoms/database/repository/service"
	"psrcustoms/handlers"
	"psrcustoms/middleware"
	"psrcustoms/routes"
	"psrcustoms/services/auth"
	"psrcustoms/services/booking"
	"psrcustoms/services/catalog"
	"psrcustoms/services/contact"
	"psrcustoms/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()

	// services.
	authService := &auth.DefaultAuthService{Repo: adminRepo}
	catalogService := &catalog.DefaultCatalogService{
		Repo:  serviceRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Services: serviceRepo,
	}
	contactService := &contact.DefaultContactService{Repo: messageRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminRepo: adminRepo,
		Auth:      handlers.NewAuthHandler(authService),
		Services:  handlers.NewServiceHandler(catalogService),
		Bookings:  handlers.NewBookingHandler(bookingService),
		Contact:   handlers.NewContactHandler(contactService),
		Admin:     handlers.NewAdminHandler(contactService, catalogService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic Mongo/Redis health checks surfaced on /api/health.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5005"
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
