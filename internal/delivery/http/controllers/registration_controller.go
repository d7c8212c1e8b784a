package controllers

import (
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateRegistrationRequest is the request body for POST /registration.
type CreateRegistrationRequest struct {
	ActivityID int64 `json:"activityId"`
}

// Validate implements helpers.Validator.
func (r *CreateRegistrationRequest) Validate() []string {
	if r.ActivityID <= 0 {
		return []string{"activityId is required"}
	}
	return nil
}

// Create godoc
// @Summary Register the current user for an activity
// @Description Registers the authenticated user for a timed activity. Requires a paid hotel-inclusive ticket and an existing room booking. Fails when the activity is full or its window overlaps another registration.
// @Tags registration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body controllers.CreateRegistrationRequest true "Activity to register for"
// @Success 201 {object} helpers.APIResponse{data=domain.Registration}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 402 {object} helpers.APIResponse "error.code: payment_required"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (full or time overlap)"
// @Failure 412 {object} helpers.APIResponse "error.code: precondition_failed (no hotel booking)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registration [post]
func (c *RegistrationController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req CreateRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg, err := c.Service.Create(r.Context(), userID, req.ActivityID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}
