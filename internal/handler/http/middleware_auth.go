package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/internal/utils"
	"github.com/octareno/contacts-api/models"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// It reads the incoming "Authorization" header, which carries the opaque
// token value directly (no scheme prefix), resolves it to a user via
// [service.UserService.Authenticate], and — on success — stores the
// authenticated user in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized and the {"errors": ...}
// envelope when the header is absent, blank, or does not match any stored
// token. A cleared token (logout) fails this lookup immediately.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := strings.TrimSpace(r.Header.Get("Authorization"))
		if token == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthorized(w, r)
			return
		}

		ctx := r.Context()
		user, err := h.services.UserService.Authenticate(ctx, token)
		if err != nil {
			log.Err(err).Msg("session token did not resolve to a user")
			writeUnauthorized(w, r)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without a second lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Errors: "Unauthorized"}, http.StatusUnauthorized); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write error body")
	}
}
