package http

import (
	"encoding/json"
	"net/http"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/internal/utils"
	"github.com/octareno/contacts-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.UserResponse{
		Username: registeredUser.Username,
		Name:     registeredUser.Name,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	token, err := h.services.UserService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("login failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", req.Username).Msg("user successfully logged in")

	writeData(w, r, models.TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeUnauthorized(w, r)
		return
	}

	writeData(w, r, models.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}, http.StatusOK)
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeUnauthorized(w, r)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updatedUser, err := h.services.UserService.Update(ctx, user, req)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("user update failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.UserResponse{
		Username: updatedUser.Username,
		Name:     updatedUser.Name,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeUnauthorized(w, r)
		return
	}

	if err := h.services.UserService.Logout(ctx, user); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("logout failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, "OK", http.StatusOK)
}
