package http

import (
	"encoding/json"
	"net/http"

	"github.com/octareno/contacts-api/internal/logger"
	"github.com/octareno/contacts-api/internal/utils"
	"github.com/octareno/contacts-api/models"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeUnauthorized(w, r)
		return
	}

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	created, err := h.services.ContactService.Create(ctx, user.UserID, req)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("contact creation failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, created, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
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

	found, err := h.services.ContactService.Get(ctx, user.UserID, contactID)
	if err != nil {
		log.Err(err).Int64("contact_id", contactID).Msg("contact lookup failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, found, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
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

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updated, err := h.services.ContactService.Update(ctx, user.UserID, contactID, req)
	if err != nil {
		log.Err(err).Int64("contact_id", contactID).Msg("contact update failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.ContactService.Delete(ctx, user.UserID, contactID); err != nil {
		log.Err(err).Int64("contact_id", contactID).Msg("contact deletion failed")
		writeError(w, r, err)
		return
	}

	writeData(w, r, "OK", http.StatusOK)
}

// searchContacts handles GET /api/contacts. Filters come from the query
// string; page defaults to 1 and size to 10 when omitted.
func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeUnauthorized(w, r)
		return
	}

	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		writeError(w, r, err)
		return
	}

	size, err := queryInt(r, "size", defaultSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	req := models.SearchContactsRequest{
		UserID: user.UserID,
		Name:   query.Get("name"),
		Email:  query.Get("email"),
		Phone:  query.Get("phone"),
		Page:   page,
		Size:   size,
	}

	contacts, paging, err := h.services.ContactService.Search(ctx, req)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("contact search failed")
		writeError(w, r, err)
		return
	}

	response := models.SearchResponse{
		Data:   contacts,
		Paging: paging,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write response body")
	}
}
