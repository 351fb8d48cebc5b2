// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Octareno

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already registered")

	// ErrNoUserWasFound is returned when a lookup by username or by session
	// token produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrContactNotFound is returned when a query or mutation targets a
	// contact (identified by contact_id and user_id) that does not exist.
	// Ownership misses surface as this same error so that the existence of
	// another user's contact is never revealed.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrAddressNotFound is returned when a query or mutation targets an
	// address (identified by address_id and contact_id) that does not exist.
	ErrAddressNotFound = errors.New("address was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
