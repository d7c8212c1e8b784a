package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
)

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Get the current user's room booking
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.Booking}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /booking [get]
func (c *BookingController) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	booking, err := c.Service.GetByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// BookingRequest is the request body for POST /booking and PUT /booking/{bookingID}.
type BookingRequest struct {
	RoomID int64 `json:"roomId"`
}

// Validate implements helpers.Validator.
func (r *BookingRequest) Validate() []string {
	if r.RoomID <= 0 {
		return []string{"roomId is required"}
	}
	return nil
}

// Create godoc
// @Summary Book a room for the current user
// @Description Requires a paid in-person ticket that includes hotel accommodation, and a room with free beds.
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body controllers.BookingRequest true "Room to book"
// @Success 201 {object} helpers.APIResponse{data=domain.Booking}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 402 {object} helpers.APIResponse "error.code: payment_required"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (room full)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /booking [post]
func (c *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req BookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	booking, err := c.Service.Create(r.Context(), userID, req.RoomID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

// ChangeRoom godoc
// @Summary Move an existing booking to another room
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingID path int true "Booking ID"
// @Param request body controllers.BookingRequest true "New room"
// @Success 200 {object} helpers.APIResponse{data=domain.Booking}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not the booking owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (room full)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /booking/{bookingID} [put]
func (c *BookingController) ChangeRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	bookingID, err := strconv.ParseInt(r.PathValue("bookingID"), 10, 64)
	if err != nil || bookingID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid booking id")
		return
	}

	var req BookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	booking, err := c.Service.ChangeRoom(r.Context(), userID, bookingID, req.RoomID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}
