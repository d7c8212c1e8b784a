package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"conferencehub/config"
	_ "conferencehub/docs"
	authadapter "conferencehub/internal/adapters/auth"
	"conferencehub/internal/adapters/cache"
	emailadapter "conferencehub/internal/adapters/email"
	httpdelivery "conferencehub/internal/delivery/http"
	"conferencehub/internal/delivery/http/controllers"
	"conferencehub/internal/repository/postgres"
	"conferencehub/internal/services"

	"golang.org/x/crypto/bcrypt"
)

// @title ConferenceHub API
// @version 1.0
// @description Event management backend: enrollments, tickets, payments, hotel bookings, and activity registration.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	enrollmentRepo := postgres.NewEnrollmentRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	hotelRepo := postgres.NewHotelRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(bcrypt.DefaultCost)
	issuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	verifier := authadapter.NewJWTVerifier(cfg.JWTSecret)
	memCache := cache.NewMemory()
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "error", err)
		os.Exit(1)
	}
	renderer := emailadapter.NewTemplateRenderer()

	// Services
	authService := services.NewAuthService(userRepo, sessionRepo, hasher, issuer, verifier, cfg.TokenExpiry)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo)
	ticketService := services.NewTicketService(ticketRepo, enrollmentRepo)
	emailService := services.NewEmailService(mailer, renderer)
	paymentService := services.NewPaymentService(paymentRepo, ticketRepo, enrollmentRepo, userRepo, emailService, logger)
	hotelService := services.NewHotelService(enrollmentRepo, ticketRepo, bookingRepo, hotelRepo, memCache, cfg.CacheTTL)
	bookingService := services.NewBookingService(enrollmentRepo, ticketRepo, hotelRepo, bookingRepo)
	eventService := services.NewEventService(eventRepo, memCache, cfg.CacheTTL)
	activityService := services.NewActivityService(enrollmentRepo, ticketRepo, bookingRepo, activityRepo)
	registrationService := services.NewRegistrationService(enrollmentRepo, ticketRepo, bookingRepo, activityRepo, registrationRepo)

	// HTTP
	handler := httpdelivery.NewRouter(logger, authService, httpdelivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		Event:        controllers.NewEventController(logger, eventService),
		Enrollment:   controllers.NewEnrollmentController(logger, enrollmentService),
		Ticket:       controllers.NewTicketController(logger, ticketService),
		Payment:      controllers.NewPaymentController(logger, paymentService),
		Hotel:        controllers.NewHotelController(logger, hotelService),
		Booking:      controllers.NewBookingController(logger, bookingService),
		Activity:     controllers.NewActivityController(logger, activityService),
		Registration: controllers.NewRegistrationController(logger, registrationService),
	}, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
