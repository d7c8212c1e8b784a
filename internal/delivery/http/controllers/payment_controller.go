package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
)

type PaymentController struct {
	Logger  *slog.Logger
	Service domain.PaymentService
}

func NewPaymentController(logger *slog.Logger, svc domain.PaymentService) *PaymentController {
	return &PaymentController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Get the payment for a ticket
// @Tags payment
// @Produce json
// @Security BearerAuth
// @Param ticketId query int true "Ticket ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Payment}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (not the ticket owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /payments [get]
func (c *PaymentController) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	ticketID, err := strconv.ParseInt(r.URL.Query().Get("ticketId"), 10, 64)
	if err != nil || ticketID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "ticketId query param is required")
		return
	}

	payment, err := c.Service.GetByTicket(r.Context(), userID, ticketID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, payment)
}

// ProcessPaymentRequest is the request body for POST /payments/process.
type ProcessPaymentRequest struct {
	TicketID int64                    `json:"ticketId"`
	Card     domain.CardPaymentParams `json:"card"`
}

// Validate implements helpers.Validator.
func (r *ProcessPaymentRequest) Validate() []string {
	var errs []string
	if r.TicketID <= 0 {
		errs = append(errs, "ticketId is required")
	}
	if strings.TrimSpace(r.Card.Issuer) == "" {
		errs = append(errs, "card.issuer is required")
	}
	if strings.TrimSpace(r.Card.Number) == "" {
		errs = append(errs, "card.number is required")
	}
	return errs
}

// Process godoc
// @Summary Capture payment for a ticket
// @Description Records the card payment, marks the ticket PAID, and emails a confirmation to the attendee.
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body controllers.ProcessPaymentRequest true "Ticket and card data"
// @Success 201 {object} helpers.APIResponse{data=domain.Payment}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (not the ticket owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /payments/process [post]
func (c *PaymentController) Process(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req ProcessPaymentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	payment, err := c.Service.Process(r.Context(), userID, req.TicketID, req.Card)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, payment)
}
