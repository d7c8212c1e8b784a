package controllers

import (
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List the activity schedule
// @Description Returns every event day with its activities grouped by venue, including per-activity registration counts and whether the current user is registered. Same eligibility rules as registration.
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=[]domain.DaySchedule}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 402 {object} helpers.APIResponse "error.code: payment_required"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 412 {object} helpers.APIResponse "error.code: precondition_failed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activity [get]
func (c *ActivityController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	schedule, err := c.Service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schedule)
}
