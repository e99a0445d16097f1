package routes

import (
	"net/http"
	"time"

	"fobworks/handlers"
	"fobworks/middleware"
	"fobworks/services/token"
	"fobworks/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the public booking-form endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/availability", hb.Booking.AvailabilityHandler)
		api.POST("", hb.Booking.CreateBookingHandler)

		// Self-service, authenticated by order number + emailed code.
		api.GET("/manage", hb.Manage.GetBookingHandler)
		api.POST("/manage/cancel", hb.Manage.CancelBookingHandler)
		api.POST("/manage/reschedule", hb.Manage.RescheduleBookingHandler)
	}
}

// RegisterCatalogRoutes registers the public service catalog listing.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/services", hb.Catalog.ListServicesHandler)
}

// RegisterUploadRoutes registers the photo upload proxy.
func RegisterUploadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/uploads/photo", hb.Storage.UploadPhotoHandler)
}

// RegisterActionRoute registers the emailed action-link endpoint. It sits
// under /admin but authenticates with its own signed token, so the session
// gate lets it through.
func RegisterActionRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/admin/action", hb.Action.ActionLinkHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *token.SessionSigner) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Auth.LoginHandler)
		adminGroup.POST("/logout", hb.Auth.LogoutHandler)

		protected := adminGroup.Group("")
		protected.Use(middleware.AdminSessionAuth(sessions))
		protected.GET("/bookings", hb.Admin.ListBookingsHandler)
		protected.GET("/bookings/:order", hb.Admin.GetBookingHandler)
		protected.POST("/bookings/:order/confirm", hb.Admin.ConfirmBookingHandler)
		protected.POST("/bookings/:order/cancel", hb.Admin.CancelBookingHandler)
		protected.POST("/bookings/:order/resend", hb.Admin.ResendActionLinksHandler)

		protected.GET("/services", hb.Catalog.AdminListServicesHandler)
		protected.POST("/services", hb.Catalog.CreateServiceHandler)
		protected.PUT("/services/:id", hb.Catalog.UpdateServiceHandler)
		protected.DELETE("/services/:id", hb.Catalog.DeleteServiceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions *token.SessionSigner) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
	RegisterActionRoute(r, hb)
	RegisterAdminRoutes(r, hb, sessions)
	RegisterHealthRoute(r)
}
