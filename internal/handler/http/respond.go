package http

import (
	"errors"
	"net/http"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/internal/utils"
	"github.com/octareno/contacts-api/internal/validators"
	"github.com/octareno/contacts-api/models"
)

// writeData writes the {"data": ...} success envelope.
func writeData(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, models.DataResponse{Data: data}, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response body")
	}
}

// writeError maps err to an HTTP status and writes the {"errors": ...}
// envelope. A validation failure carries the full violation list; every
// other mapped error carries its message. Unmapped errors stay opaque to
// the client and go out as a plain 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	var payload any
	var validationErr *validators.ValidationError
	switch {
	case errors.As(err, &validationErr):
		payload = validationErr.Violations
	case status == http.StatusInternalServerError:
		payload = http.StatusText(http.StatusInternalServerError)
	default:
		payload = err.Error()
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Errors: payload}, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("failed to write error body")
	}
}
