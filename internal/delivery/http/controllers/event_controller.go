package controllers

import (
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Get the event
// @Description Public endpoint. Returns the conference metadata used to render the landing page.
// @Tags event
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=domain.Event}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /event [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetFirst(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
