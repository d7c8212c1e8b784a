package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
)

type HotelController struct {
	Logger  *slog.Logger
	Service domain.HotelService
}

func NewHotelController(logger *slog.Logger, svc domain.HotelService) *HotelController {
	return &HotelController{
		Logger:  logger,
		Service: svc,
	}
}

// HotelListResponse is the paginated payload for GET /hotels.
// swagger:model HotelListResponse
type HotelListResponse struct {
	Hotels []*domain.Hotel        `json:"hotels"`
	Meta   helpers.PaginationMeta `json:"meta"`
}

// List godoc
// @Summary List partner hotels
// @Description Requires a paid in-person ticket that includes hotel accommodation.
// @Tags hotel
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} helpers.APIResponse{data=controllers.HotelListResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 402 {object} helpers.APIResponse "error.code: payment_required"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /hotels [get]
func (c *HotelController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	params := helpers.ParsePagination(r)
	hotels, total, err := c.Service.List(r.Context(), userID, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HotelListResponse{
		Hotels: hotels,
		Meta:   helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// Get godoc
// @Summary Get a hotel with its rooms
// @Tags hotel
// @Produce json
// @Security BearerAuth
// @Param hotelID path int true "Hotel ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Hotel}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 402 {object} helpers.APIResponse "error.code: payment_required"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /hotels/{hotelID} [get]
func (c *HotelController) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	hotelID, err := strconv.ParseInt(r.PathValue("hotelID"), 10, 64)
	if err != nil || hotelID <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid hotel id")
		return
	}

	hotel, err := c.Service.GetWithRooms(r.Context(), userID, hotelID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, hotel)
}
