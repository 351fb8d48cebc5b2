package validators

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/octareno/contacts-api/models"
)

// Field length bounds. These mirror the column sizes in the migrations so a
// request that passes validation can never fail a column constraint. The
// password bound is tighter than its column: bcrypt refuses inputs longer
// than 72 bytes, so anything above that must be rejected here rather than
// surface as a hashing failure.
const (
	maxUsernameLength   = 100
	maxPasswordLength   = 72
	maxNameLength       = 100
	maxFirstNameLength  = 100
	maxLastNameLength   = 100
	maxEmailLength      = 200
	maxPhoneLength      = 20
	maxStreetLength     = 255
	maxCityLength       = 100
	maxProvinceLength   = 100
	maxCountryLength    = 100
	maxPostalCodeLength = 10

	// MaxPageSize caps the search window; larger requests are rejected
	// rather than clamped.
	MaxPageSize = 100
)

// RequestValidator validates every inbound request shape eagerly, before any
// repository call is made.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value)
	case *models.RegisterRequest:
		return v.validateRegister(*value)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.UpdateUserRequest:
		return v.validateUpdateUser(value)
	case *models.UpdateUserRequest:
		return v.validateUpdateUser(*value)

	case models.ContactRequest:
		return v.validateContact(value)
	case *models.ContactRequest:
		return v.validateContact(*value)

	case models.AddressRequest:
		return v.validateAddress(value)
	case *models.AddressRequest:
		return v.validateAddress(*value)

	case models.SearchContactsRequest:
		return v.validateSearchContacts(value)
	case *models.SearchContactsRequest:
		return v.validateSearchContacts(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest) error {
	var violations []string

	violations = appendRequired(violations, "username", req.Username)
	violations = appendMaxLength(violations, "username", req.Username, maxUsernameLength)
	violations = appendRequired(violations, "password", req.Password)
	violations = appendMaxLength(violations, "password", req.Password, maxPasswordLength)
	violations = appendRequired(violations, "name", req.Name)
	violations = appendMaxLength(violations, "name", req.Name, maxNameLength)

	return newValidationError(violations)
}

func (v *RequestValidator) validateLogin(req models.LoginRequest) error {
	var violations []string

	violations = appendRequired(violations, "username", req.Username)
	violations = appendMaxLength(violations, "username", req.Username, maxUsernameLength)
	violations = appendRequired(violations, "password", req.Password)
	violations = appendMaxLength(violations, "password", req.Password, maxPasswordLength)

	return newValidationError(violations)
}

// validateUpdateUser allows both fields to be absent: PATCH with an empty
// body is a valid no-op.
func (v *RequestValidator) validateUpdateUser(req models.UpdateUserRequest) error {
	var violations []string

	violations = appendMaxLength(violations, "name", req.Name, maxNameLength)
	violations = appendMaxLength(violations, "password", req.Password, maxPasswordLength)

	return newValidationError(violations)
}

func (v *RequestValidator) validateContact(req models.ContactRequest) error {
	var violations []string

	violations = appendRequired(violations, "first_name", req.FirstName)
	violations = appendMaxLength(violations, "first_name", req.FirstName, maxFirstNameLength)
	violations = appendMaxLength(violations, "last_name", req.LastName, maxLastNameLength)
	violations = appendMaxLength(violations, "email", req.Email, maxEmailLength)
	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			violations = append(violations, "email must be a valid email address")
		}
	}
	violations = appendMaxLength(violations, "phone", req.Phone, maxPhoneLength)

	return newValidationError(violations)
}

func (v *RequestValidator) validateAddress(req models.AddressRequest) error {
	var violations []string

	violations = appendMaxLength(violations, "street", req.Street, maxStreetLength)
	violations = appendMaxLength(violations, "city", req.City, maxCityLength)
	violations = appendMaxLength(violations, "province", req.Province, maxProvinceLength)
	violations = appendRequired(violations, "country", req.Country)
	violations = appendMaxLength(violations, "country", req.Country, maxCountryLength)
	violations = appendRequired(violations, "postal_code", req.PostalCode)
	violations = appendMaxLength(violations, "postal_code", req.PostalCode, maxPostalCodeLength)

	return newValidationError(violations)
}

func (v *RequestValidator) validateSearchContacts(req models.SearchContactsRequest) error {
	var violations []string

	if req.Page < 1 {
		violations = append(violations, "page must be a positive integer")
	}
	if req.Size < 1 {
		violations = append(violations, "size must be a positive integer")
	}
	if req.Size > MaxPageSize {
		violations = append(violations, fmt.Sprintf("size must not be greater than %d", MaxPageSize))
	}
	violations = appendMaxLength(violations, "name", req.Name, maxNameLength)
	violations = appendMaxLength(violations, "email", req.Email, maxEmailLength)
	violations = appendMaxLength(violations, "phone", req.Phone, maxPhoneLength)

	return newValidationError(violations)
}

func appendRequired(violations []string, field, value string) []string {
	if value == "" {
		return append(violations, field+" is required")
	}
	return violations
}

func appendMaxLength(violations []string, field, value string, max int) []string {
	if len(value) > max {
		return append(violations, fmt.Sprintf("%s must not be longer than %d characters", field, max))
	}
	return violations
}
