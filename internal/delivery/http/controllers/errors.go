package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"conferencehub/internal/delivery/http/helpers"
	"conferencehub/internal/domain"
)

// writeServiceError maps domain sentinel errors to HTTP statuses and writes
// the JSON error envelope. Anything unmapped is logged and reported as 500.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrPaymentRequired):
		helpers.WriteJSONError(w, http.StatusPaymentRequired, helpers.ErrCodePaymentRequired, err.Error())
	case errors.Is(err, domain.ErrBookingRequired):
		helpers.WriteJSONError(w, http.StatusPreconditionFailed, helpers.ErrCodePreconditionFailed, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, err.Error())
	case errors.Is(err, domain.ErrActivityFull),
		errors.Is(err, domain.ErrTimeConflict),
		errors.Is(err, domain.ErrRoomFull),
		errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidCredentials):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
