package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// pathID parses the named chi URL parameter as a positive int64. A missing,
// non-numeric, or non-positive value reports [ErrInvalidPathParameter].
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParameter, name, raw)
	}

	return id, nil
}

// queryInt parses an optional integer query parameter, returning fallback
// when the parameter is absent or blank.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParameter, name, raw)
	}

	return value, nil
}
