package routes

import (
	"net/http"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "doctors portal server is running"})
	})
}

// RegisterAppointmentRoutes registers the availability and catalog endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/appointments/options", hb.GetAvailability)
		api.GET("/treatments/names", hb.ListTreatmentNames)
	}
}

// RegisterBookingRoutes registers the booking ledger endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBooking)
		api.GET("/:id", hb.GetBookingByID)

		// Listing a patient's bookings requires the token identity to match.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("", hb.ListBookings)
	}
}

// RegisterPaymentRoutes registers the payment gateway endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/intent", hb.CreatePaymentIntent)
		api.POST("", hb.RecordPayment)
	}
}

// RegisterUserRoutes registers account and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUser)
		api.POST("/login", hb.IssueToken)
		api.GET("/admin/:email", hb.IsAdmin)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.UserRepo))
		admin.GET("", hb.ListUsers)
		admin.PUT("/admin/:id", hb.PromoteToAdmin)
	}
}

// RegisterDoctorRoutes registers the admin-gated doctor roster endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	api.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.UserRepo))
	{
		api.GET("", hb.ListDoctors)
		api.POST("", hb.AddDoctor)
		api.DELETE("/:id", hb.RemoveDoctor)
	}
}

// RegisterRoutes wires every route group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
