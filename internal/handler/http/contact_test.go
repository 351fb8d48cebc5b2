package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octareno/contacts-api/internal/store"
	"github.com/octareno/contacts-api/models"
)

func TestCreateContact_Success(t *testing.T) {
	contacts := &stubContactService{
		createFn: func(_ context.Context, userID int64, req models.ContactRequest) (models.Contact, error) {
			assert.Equal(t, int64(7), userID)
			return models.Contact{ContactID: 10, UserID: userID, FirstName: req.FirstName}, nil
		},
	}

	h := newTestHandler(nil, contacts, nil)

	rec := doRequest(h, http.MethodPost, "/api/contacts", "good-token", `{"first_name":"Eko"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.Contact `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.Data.ContactID)
	assert.Equal(t, "Eko", resp.Data.FirstName)
}

func TestCreateContact_RequiresAuth(t *testing.T) {
	h := newTestHandler(nil, &stubContactService{}, nil)

	rec := doRequest(h, http.MethodPost, "/api/contacts", "", `{"first_name":"Eko"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetContact_NotFound(t *testing.T) {
	contacts := &stubContactService{
		getFn: func(_ context.Context, _, _ int64) (models.Contact, error) {
			return models.Contact{}, store.ErrContactNotFound
		},
	}

	h := newTestHandler(nil, contacts, nil)

	rec := doRequest(h, http.MethodGet, "/api/contacts/99", "good-token", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"errors"`)
}

func TestGetContact_InvalidID(t *testing.T) {
	h := newTestHandler(nil, &stubContactService{}, nil)

	rec := doRequest(h, http.MethodGet, "/api/contacts/abc", "good-token", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateContact_Success(t *testing.T) {
	contacts := &stubContactService{
		updateFn: func(_ context.Context, userID, contactID int64, req models.ContactRequest) (models.Contact, error) {
			assert.Equal(t, int64(10), contactID)
			return models.Contact{ContactID: contactID, UserID: userID, FirstName: req.FirstName}, nil
		},
	}

	h := newTestHandler(nil, contacts, nil)

	rec := doRequest(h, http.MethodPut, "/api/contacts/10", "good-token", `{"first_name":"Budi"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Budi")
}

func TestDeleteContact_Success(t *testing.T) {
	contacts := &stubContactService{
		deleteFn: func(_ context.Context, userID, contactID int64) error {
			assert.Equal(t, int64(10), contactID)
			return nil
		},
	}

	h := newTestHandler(nil, contacts, nil)

	rec := doRequest(h, http.MethodDelete, "/api/contacts/10", "good-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"OK"}`, rec.Body.String())
}

func TestDeleteContact_SecondDeleteFails(t *testing.T) {
	contacts := &stubContactService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrContactNotFound
		},
	}

	h := newTestHandler(nil, contacts, nil)

	rec := doRequest(h, http.MethodDelete, "/api/contacts/10", "good-token", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchContacts_EnvelopeAndPaging(t *testing.T) {
	contacts := &stubContactService{
		searchFn: func(_ context.Context, req models.SearchContactsRequest) ([]models.Contact, models.Paging, error) {
			assert.Equal(t, int64(7), req.UserID)

			page := make([]models.Contact, 0, req.Size)
			for i := 1; i <= req.Size; i++ {
				page = append(page, models.Contact{ContactID: int64(i), UserID: 7, FirstName: fmt.Sprintf("Contact %d", i)})
			}
			return page, models.Paging{Page: req.Page, TotalPage: 2, TotalItem: 15}, nil
		},
	}

	h := newTestHandler(nil, contacts, nil)

	rec := doRequest(h, http.MethodGet, "/api/contacts?page=1&size=10", "good-token", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 10)
	assert.Equal(t, 1, resp.Paging.Page)
	assert.Equal(t, 2, resp.Paging.TotalPage)
	assert.Equal(t, 15, resp.Paging.TotalItem)
}

func TestSearchContacts_DefaultsAndFilters(t *testing.T) {
	contacts := &stubContactService{
		searchFn: func(_ context.Context, req models.SearchContactsRequest) ([]models.Contact, models.Paging, error) {
			assert.Equal(t, 1, req.Page)
			assert.Equal(t, 10, req.Size)
			assert.Equal(t, "eko", req.Name)
			assert.Equal(t, "example.com", req.Email)
			assert.Equal(t, "0812", req.Phone)
			return []models.Contact{}, models.Paging{Page: 1}, nil
		},
	}

	h := newTestHandler(nil, contacts, nil)

	rec := doRequest(h, http.MethodGet, "/api/contacts?name=eko&email=example.com&phone=0812", "good-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchContacts_NonNumericPage(t *testing.T) {
	h := newTestHandler(nil, &stubContactService{}, nil)

	rec := doRequest(h, http.MethodGet, "/api/contacts?page=abc", "good-token", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid query parameter")
}
