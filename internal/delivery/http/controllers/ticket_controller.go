package controllers

import (
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
)

type TicketController struct {
	Logger  *slog.Logger
	Service domain.TicketService
}

func NewTicketController(logger *slog.Logger, svc domain.TicketService) *TicketController {
	return &TicketController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTypes godoc
// @Summary List available ticket types
// @Tags ticket
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=[]domain.TicketType}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tickets/types [get]
func (c *TicketController) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := c.Service.ListTypes(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, types)
}

// Get godoc
// @Summary Get the current user's ticket
// @Tags ticket
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.Ticket}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tickets [get]
func (c *TicketController) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	ticket, err := c.Service.GetByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ticket)
}

// CreateTicketRequest is the request body for POST /tickets.
type CreateTicketRequest struct {
	TicketTypeID int64 `json:"ticketTypeId"`
}

// Validate implements helpers.Validator.
func (r *CreateTicketRequest) Validate() []string {
	if r.TicketTypeID <= 0 {
		return []string{"ticketTypeId is required"}
	}
	return nil
}

// Create godoc
// @Summary Reserve a ticket of the given type for the current user
// @Tags ticket
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body controllers.CreateTicketRequest true "Ticket type"
// @Success 201 {object} helpers.APIResponse{data=domain.Ticket}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no enrollment or unknown type)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tickets [post]
func (c *TicketController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req CreateTicketRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	ticket, err := c.Service.Create(r.Context(), userID, req.TicketTypeID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, ticket)
}
