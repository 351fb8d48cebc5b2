package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/octareno/contacts-api/models"
)

// mapHTTPError converts a non-2xx response into a sentinel error carrying the
// server's {"errors": ...} payload as text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorsFromBody(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorsFromBody extracts the "errors" field of the failure envelope. The
// field holds either a single message or a list of validation violations;
// both collapse to one line. A body that is not the envelope is returned
// verbatim.
func errorsFromBody(body []byte) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Errors == nil {
		return strings.TrimSpace(string(body))
	}

	switch errs := envelope.Errors.(type) {
	case string:
		return errs
	case []any:
		parts := make([]string, 0, len(errs))
		for _, e := range errs {
			parts = append(parts, fmt.Sprint(e))
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(errs)
	}
}
