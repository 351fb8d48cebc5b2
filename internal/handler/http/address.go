package http

import (
	"encoding/json"
	"net/http"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/internal/utils"
	"github.com/octareno/contacts-api/models"
)

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeUnauthorized(w, r)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	created, err := h.services.AddressService.Create(ctx, user.UserID, contactID, req)
	if err != nil {
		log.Err(err).Int64("contact_id", contactID).Msg("address creation failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, created, http.StatusOK)
}

func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeUnauthorized(w, r)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	addressID, err := pathID(r, "addressID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	found, err := h.services.AddressService.Get(ctx, user.UserID, contactID, addressID)
	if err != nil {
		log.Err(err).Int64("address_id", addressID).Msg("address lookup failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, found, http.StatusOK)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeUnauthorized(w, r)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	addressID, err := pathID(r, "addressID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updated, err := h.services.AddressService.Update(ctx, user.UserID, contactID, addressID, req)
	if err != nil {
		log.Err(err).Int64("address_id", addressID).Msg("address update failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeUnauthorized(w, r)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	addressID, err := pathID(r, "addressID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AddressService.Delete(ctx, user.UserID, contactID, addressID); err != nil {
		log.Err(err).Int64("address_id", addressID).Msg("address deletion failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, "OK", http.StatusOK)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeUnauthorized(w, r)
		return
	}

	contactID, err := pathID(r, "contactID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	addresses, err := h.services.AddressService.List(ctx, user.UserID, contactID)
	if err != nil {
		log.Err(err).Int64("contact_id", contactID).Msg("address listing failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, addresses, http.StatusOK)
}
