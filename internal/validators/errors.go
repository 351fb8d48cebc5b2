// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Octareno

package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is the sentinel all validation failures unwrap to.
	// Callers match it with [errors.Is] and recover the individual
	// violations with [errors.As] on [*ValidationError].
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedType is returned when [RequestValidator.Validate] is
	// given a request shape it has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError aggregates every rule violation found in a single request
// shape. The whole shape is checked before returning so the client receives
// the complete list at once.
type ValidationError struct {
	// Violations holds one human-readable message per broken rule.
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// Unwrap makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// newValidationError returns nil when no violations were collected.
func newValidationError(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
