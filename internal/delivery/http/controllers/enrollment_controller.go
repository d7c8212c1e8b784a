package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/domain"
)

type EnrollmentController struct {
	Logger  *slog.Logger
	Service domain.EnrollmentService
}

func NewEnrollmentController(logger *slog.Logger, svc domain.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Get the current user's enrollment with address
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.Enrollment}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /enrollments [get]
func (c *EnrollmentController) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	enrollment, err := c.Service.GetByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, enrollment)
}

// UpsertEnrollmentRequest is the request body for POST /enrollments.
type UpsertEnrollmentRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Birthday string `json:"birthday"`
	Phone    string `json:"phone"`
	Address  struct {
		PostalCode   string `json:"postal_code"`
		Street       string `json:"street"`
		Number       string `json:"number"`
		Neighborhood string `json:"neighborhood"`
		City         string `json:"city"`
		State        string `json:"state"`
		Detail       string `json:"detail"`
	} `json:"address"`
}

// Validate implements helpers.Validator.
func (r *UpsertEnrollmentRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Document) == "" {
		errs = append(errs, "document is required")
	}
	if _, err := time.Parse("2006-01-02", r.Birthday); err != nil {
		errs = append(errs, "birthday must be YYYY-MM-DD")
	}
	if strings.TrimSpace(r.Address.PostalCode) == "" {
		errs = append(errs, "address.postal_code is required")
	}
	if strings.TrimSpace(r.Address.City) == "" {
		errs = append(errs, "address.city is required")
	}
	return errs
}

// Upsert godoc
// @Summary Create or update the current user's enrollment and address
// @Tags enrollment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body controllers.UpsertEnrollmentRequest true "Enrollment data"
// @Success 200 {object} helpers.APIResponse{data=domain.Enrollment}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /enrollments [post]
func (c *EnrollmentController) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req UpsertEnrollmentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	birthday, _ := time.Parse("2006-01-02", req.Birthday)

	enrollment := &domain.Enrollment{
		UserID:   userID,
		Name:     req.Name,
		Document: req.Document,
		Birthday: birthday,
		Phone:    req.Phone,
		Address: &domain.Address{
			PostalCode:   req.Address.PostalCode,
			Street:       req.Address.Street,
			Number:       req.Address.Number,
			Neighborhood: req.Address.Neighborhood,
			City:         req.Address.City,
			State:        req.Address.State,
			Detail:       req.Address.Detail,
		},
	}

	saved, err := c.Service.Upsert(r.Context(), enrollment)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, saved)
}
