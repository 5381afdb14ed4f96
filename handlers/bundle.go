package handlers

import (
	userRepo "doctorsportal/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the route handlers and the repositories the route
// middleware needs, so route registration takes one argument.
type HandlerBundle struct {
	// UserRepo backs the admin-gating middleware.
	UserRepo userRepo.UserRepository

	// Availability and booking endpoints.
	GetAvailability    gin.HandlerFunc
	ListTreatmentNames gin.HandlerFunc
	CreateBooking      gin.HandlerFunc
	GetBookingByID     gin.HandlerFunc
	ListBookings       gin.HandlerFunc

	// Payment endpoints.
	CreatePaymentIntent gin.HandlerFunc
	RecordPayment       gin.HandlerFunc

	// User endpoints.
	RegisterUser   gin.HandlerFunc
	IssueToken     gin.HandlerFunc
	ListUsers      gin.HandlerFunc
	IsAdmin        gin.HandlerFunc
	PromoteToAdmin gin.HandlerFunc

	// Doctor roster endpoints.
	ListDoctors  gin.HandlerFunc
	AddDoctor    gin.HandlerFunc
	RemoveDoctor gin.HandlerFunc
}
