package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	treatmentRepoPkg "doctorsportal/database/repository/treatment"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	treatmentRepo := treatmentRepoPkg.NewMongoTreatmentRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()

	// The unique indexes carry the ledger invariants; refuse to serve
	// without them.
	for name, ensure := range map[string]func() error{
		"treatments": treatmentRepo.EnsureIndexes,
		"bookings":   bookingRepo.EnsureIndexes,
		"users":      userRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// background reminder queue + worker.
	reminderQueue := cron.NewReminderQueue()
	defer reminderQueue.Close()
	cron.InitReminderWorker(bookingRepo)

	// services.
	bookingService := &booking.DefaultBookingService{
		TreatmentRepo: treatmentRepo,
		Repo:          bookingRepo,
		Cache:         utils.GetCacheClient(),
		Reminders:     reminderQueue,
	}
	userService := &user.DefaultUserService{Repo: userRepo}
	doctorService := &doctor.DefaultDoctorService{Repo: doctorRepo}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	doctorHandler := handlers.NewDoctorHandler(doctorService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		GetAvailability:    bookingHandler.GetAvailability,
		ListTreatmentNames: bookingHandler.ListTreatmentNames,
		CreateBooking:      bookingHandler.CreateBooking,
		GetBookingByID:     bookingHandler.GetBookingByID,
		ListBookings:       bookingHandler.ListBookings,

		CreatePaymentIntent: bookingHandler.CreatePaymentIntent,
		RecordPayment:       bookingHandler.RecordPayment,

		RegisterUser:   userHandler.RegisterUser,
		IssueToken:     userHandler.IssueToken,
		ListUsers:      userHandler.ListUsers,
		IsAdmin:        userHandler.IsAdmin,
		PromoteToAdmin: userHandler.PromoteToAdmin,

		ListDoctors:  doctorHandler.ListDoctors,
		AddDoctor:    doctorHandler.AddDoctor,
		RemoveDoctor: doctorHandler.RemoveDoctor,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr))
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
