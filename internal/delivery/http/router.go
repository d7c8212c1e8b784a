package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferencehub/internal/delivery/http/controllers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
)

// Controllers bundles every HTTP controller the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Event        *controllers.EventController
	Enrollment   *controllers.EnrollmentController
	Ticket       *controllers.TicketController
	Payment      *controllers.PaymentController
	Hotel        *controllers.HotelController
	Booking      *controllers.BookingController
	Activity     *controllers.ActivityController
	Registration *controllers.RegistrationController
}

// NewRouter initializes the HTTP router with all application routes and
// wraps it with the request ID, CORS, and logging middleware.
func NewRouter(logger *slog.Logger, auth domain.AuthService, c Controllers, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	protected := middleware.RequireAuth(auth)

	// Auth
	mux.HandleFunc("POST /auth/sign-up", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/sign-in", c.Auth.SignIn)

	// Event (public)
	mux.HandleFunc("GET /event", c.Event.Get)

	// Enrollment
	mux.HandleFunc("GET /enrollments", protected(c.Enrollment.Get))
	mux.HandleFunc("POST /enrollments", protected(c.Enrollment.Upsert))

	// Tickets
	mux.HandleFunc("GET /tickets/types", protected(c.Ticket.ListTypes))
	mux.HandleFunc("GET /tickets", protected(c.Ticket.Get))
	mux.HandleFunc("POST /tickets", protected(c.Ticket.Create))

	// Payments
	mux.HandleFunc("GET /payments", protected(c.Payment.Get))
	mux.HandleFunc("POST /payments/process", protected(c.Payment.Process))

	// Hotels
	mux.HandleFunc("GET /hotels", protected(c.Hotel.List))
	mux.HandleFunc("GET /hotels/{hotelID}", protected(c.Hotel.Get))

	// Booking
	mux.HandleFunc("GET /booking", protected(c.Booking.Get))
	mux.HandleFunc("POST /booking", protected(c.Booking.Create))
	mux.HandleFunc("PUT /booking/{bookingID}", protected(c.Booking.ChangeRoom))

	// Activities
	mux.HandleFunc("GET /activity", protected(c.Activity.List))
	mux.HandleFunc("POST /registration", protected(c.Registration.Create))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(allowedOrigins, handler)
	handler = middleware.RequestID(handler)
	return handler
}
