// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Octareno

package http

import "errors"

// Sentinel errors used by the transport layer. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathParameter is reported when a numeric path segment such as
	// the contact or address id fails to parse.
	ErrInvalidPathParameter = errors.New("invalid path parameter")

	// ErrInvalidQueryParameter is reported when a numeric query parameter
	// such as the search page or size fails to parse.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
)
