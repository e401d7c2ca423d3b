package routes

import (
	"net/http"
	"time"

	"beautyconnect/handlers"
	"beautyconnect/middleware"
	"beautyconnect/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers wired in main.
type HandlerBundle struct {
	User        *handlers.UserHandler
	Pro         *handlers.ProHandler
	Reservation *handlers.ReservationHandler
	Storage     *handlers.StorageHandler
}

// RegisterUserRoutes registers account and authentication endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.User.GetMeHandler)
		api.PATCH("/role", hb.User.SwitchRoleHandler)
		api.DELETE("/revoke", hb.User.RevokeUserAuthTokenHandler)
	}
}

// RegisterProRoutes registers catalog, availability and slot endpoints.
func RegisterProRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/pros")
	{
		// Public read endpoints: anyone can browse a pro's catalog,
		// availability template, and open slots.
		api.GET("/:proId/services", hb.Pro.GetServicesHandler)
		api.GET("/:proId/availability", hb.Pro.GetAvailabilityHandler)
		api.GET("/:proId/slots", hb.Reservation.GetAvailableSlotsHandler)

		// Endpoints that modify pro data require the pro role.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RolePro))
		protected.PUT("/services", hb.Pro.CreateServiceHandler)
		protected.PATCH("/services/:serviceId", hb.Pro.UpdateServiceHandler)
		protected.DELETE("/services/:serviceId", hb.Pro.DeleteServiceHandler)
		protected.PUT("/availability", hb.Pro.SetAvailabilityHandler)
	}
}

// RegisterReservationRoutes sets up the endpoints for the booking lifecycle.
func RegisterReservationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", middleware.RequireRole(models.RoleClient), hb.Reservation.CreateReservationHandler)
		api.GET("/client/:clientId", hb.Reservation.ListClientReservationsHandler)
		api.GET("/pro/:proId", hb.Reservation.ListProReservationsHandler)
		api.PATCH("/:id/status", hb.Reservation.UpdateReservationStatusHandler)
	}
}

// RegisterStorageRoutes sets up the profile image upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/profile-image", hb.Storage.UploadProfileImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BeautyConnect"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterProRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
