// File: beautyconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beautyconnect/config"
	"beautyconnect/database"
	proRepoPkg "beautyconnect/database/repository/pro"
	reservationRepoPkg "beautyconnect/database/repository/reservation"
	userRepoPkg "beautyconnect/database/repository/user"
	"beautyconnect/handlers"
	"beautyconnect/middleware"
	"beautyconnect/routes"
	"beautyconnect/services/pro"
	"beautyconnect/services/reservation"
	"beautyconnect/services/storage"
	"beautyconnect/services/user"
	"beautyconnect/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}
	storageService := storage.NewStorageService(cld)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	proRepo := proRepoPkg.NewMongoProDetailsRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	proService := &pro.DefaultProService{
		Repo: proRepo,
	}
	reservationService := &reservation.DefaultReservationService{
		Pros:         proRepo,
		Reservations: reservationRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		User:        handlers.NewUserHandler(userService),
		Pro:         handlers.NewProHandler(proService),
		Reservation: handlers.NewReservationHandler(reservationService),
		Storage:     handlers.NewStorageHandler(storageService, userService),
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
