package http

import (
	"errors"
	"net/http"

	"github.com/octareno/contacts-api/internal/service"
	"github.com/octareno/contacts-api/internal/store"
	"github.com/octareno/contacts-api/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:    http.StatusBadRequest,
	ErrInvalidJSON:              http.StatusBadRequest,
	ErrInvalidPathParameter:     http.StatusBadRequest,
	ErrInvalidQueryParameter:    http.StatusBadRequest,
	service.ErrWrongCredentials: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader: http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusUnauthorized,
	store.ErrContactNotFound:       http.StatusNotFound,
	store.ErrAddressNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
