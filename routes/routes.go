package routes

import (
	"net/http"
	"time"

	"psrcustoms/handlers"
	"psrcustoms/middleware"
	"psrcustoms/models"
	"psrcustoms/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers admin authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.GET("/me", middleware.AdminAuthMiddleware(hb.AdminRepo), hb.Auth.MeHandler)
	}
}

// RegisterServiceRoutes registers catalog endpoints. Reads are public;
// writes require admin auth.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Services.ListServicesHandler)
		api.GET("/:id", hb.Services.GetServiceHandler)

		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware(hb.AdminRepo))
		protected.POST("", hb.Services.CreateServiceHandler)
		protected.PUT("/:id", hb.Services.UpdateServiceHandler)
		protected.DELETE("/:id", hb.Services.DeleteServiceHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints. Creation is public so
// customers can book; everything else is admin-only.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Bookings.CreateBookingHandler)

		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware(hb.AdminRepo))
		protected.GET("", hb.Bookings.ListBookingsHandler)
		protected.GET("/:id", hb.Bookings.GetBookingHandler)
		protected.PUT("/:id", hb.Bookings.UpdateBookingHandler)
		protected.DELETE("/:id", hb.Bookings.DeleteBookingHandler)
	}
}

// RegisterContactRoutes registers the public contact-form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.Contact.SubmitContactHandler)
}

// RegisterAdminRoutes sets up endpoints for the admin dashboard.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin/dashboard")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware(hb.AdminRepo))
		adminGroup.Use(middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/messages", hb.Admin.ListMessagesHandler)
		adminGroup.GET("/services", hb.Admin.ListAllServicesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "PSR Customs API is running",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
