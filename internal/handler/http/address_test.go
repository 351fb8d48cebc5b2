package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octareno/contacts-api/internal/store"
	"github.com/octareno/contacts-api/models"
)

func TestCreateAddress_Success(t *testing.T) {
	addresses := &stubAddressService{
		createFn: func(_ context.Context, userID, contactID int64, req models.AddressRequest) (models.Address, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(10), contactID)
			return models.Address{AddressID: 100, ContactID: contactID, Country: req.Country, PostalCode: req.PostalCode}, nil
		},
	}

	h := newTestHandler(nil, nil, addresses)

	rec := doRequest(h, http.MethodPost, "/api/contacts/10/addresses", "good-token", `{"country":"Indonesia","postal_code":"12345"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.Address `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.Data.AddressID)
	assert.Equal(t, "Indonesia", resp.Data.Country)
}

func TestCreateAddress_MissingContact(t *testing.T) {
	addresses := &stubAddressService{
		createFn: func(_ context.Context, _, _ int64, _ models.AddressRequest) (models.Address, error) {
			return models.Address{}, store.ErrContactNotFound
		},
	}

	h := newTestHandler(nil, nil, addresses)

	rec := doRequest(h, http.MethodPost, "/api/contacts/55/addresses", "good-token", `{"country":"Indonesia","postal_code":"12345"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAddress_NotFound(t *testing.T) {
	addresses := &stubAddressService{
		getFn: func(_ context.Context, _, _, _ int64) (models.Address, error) {
			return models.Address{}, store.ErrAddressNotFound
		},
	}

	h := newTestHandler(nil, nil, addresses)

	rec := doRequest(h, http.MethodGet, "/api/contacts/10/addresses/999", "good-token", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAddress_InvalidAddressID(t *testing.T) {
	h := newTestHandler(nil, nil, &stubAddressService{})

	rec := doRequest(h, http.MethodGet, "/api/contacts/10/addresses/xyz", "good-token", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAddress_Success(t *testing.T) {
	addresses := &stubAddressService{
		updateFn: func(_ context.Context, userID, contactID, addressID int64, req models.AddressRequest) (models.Address, error) {
			assert.Equal(t, int64(100), addressID)
			return models.Address{AddressID: addressID, ContactID: contactID, Street: req.Street, Country: req.Country, PostalCode: req.PostalCode}, nil
		},
	}

	h := newTestHandler(nil, nil, addresses)

	rec := doRequest(h, http.MethodPut, "/api/contacts/10/addresses/100", "good-token", `{"street":"Jalan Thamrin","country":"Indonesia","postal_code":"54321"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jalan Thamrin")
}

func TestDeleteAddress_Success(t *testing.T) {
	addresses := &stubAddressService{
		deleteFn: func(_ context.Context, _, contactID, addressID int64) error {
			assert.Equal(t, int64(10), contactID)
			assert.Equal(t, int64(100), addressID)
			return nil
		},
	}

	h := newTestHandler(nil, nil, addresses)

	rec := doRequest(h, http.MethodDelete, "/api/contacts/10/addresses/100", "good-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"OK"}`, rec.Body.String())
}

func TestListAddresses_Success(t *testing.T) {
	addresses := &stubAddressService{
		listFn: func(_ context.Context, _, contactID int64) ([]models.Address, error) {
			return []models.Address{
				{AddressID: 100, ContactID: contactID, Country: "Indonesia", PostalCode: "11111"},
				{AddressID: 101, ContactID: contactID, Country: "Indonesia", PostalCode: "22222"},
			}, nil
		},
	}

	h := newTestHandler(nil, nil, addresses)

	rec := doRequest(h, http.MethodGet, "/api/contacts/10/addresses", "good-token", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Address `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, int64(101), resp.Data[1].AddressID)
}

func TestListAddresses_Empty(t *testing.T) {
	addresses := &stubAddressService{
		listFn: func(_ context.Context, _, _ int64) ([]models.Address, error) {
			return []models.Address{}, nil
		},
	}

	h := newTestHandler(nil, nil, addresses)

	rec := doRequest(h, http.MethodGet, "/api/contacts/10/addresses", "good-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}
