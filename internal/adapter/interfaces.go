// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Octareno

// Package adapter provides a typed HTTP client for the contacts API.
//
// The primary abstraction is [APIClient], which decouples callers (CLI
// tooling, integration tests, sibling services) from the REST surface. The
// shipped implementation ([NewHTTPAPIClient]) is built on resty and manages
// the session token transparently: Login stores it, Logout clears it, and
// every authenticated call attaches it as the raw "Authorization" header
// value.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/octareno/contacts-api/models"
)

// APIClient defines typed access to the contacts API. Implementations are
// responsible for serialisation, session-token management, and mapping
// transport-level errors to the sentinel values defined in this package.
type APIClient interface {
	// SetToken stores the session token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the session token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. It does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error)

	// Login exchanges credentials for a session token and stores it via
	// SetToken for all subsequent calls.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// CurrentUser returns the profile of the authenticated user.
	CurrentUser(ctx context.Context) (models.UserResponse, error)

	// UpdateCurrentUser patches the authenticated user's name and/or password.
	UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error)

	// Logout invalidates the stored session token on the server and clears
	// it from the client.
	Logout(ctx context.Context) error

	CreateContact(ctx context.Context, req models.ContactRequest) (models.Contact, error)
	GetContact(ctx context.Context, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contactID int64, req models.ContactRequest) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) error

	// SearchContacts runs the filtered, paginated listing. Zero Page and Size
	// fall back to the server defaults.
	SearchContacts(ctx context.Context, req models.SearchContactsRequest) (models.SearchResponse, error)

	CreateAddress(ctx context.Context, contactID int64, req models.AddressRequest) (models.Address, error)
	GetAddress(ctx context.Context, contactID, addressID int64) (models.Address, error)
	UpdateAddress(ctx context.Context, contactID, addressID int64, req models.AddressRequest) (models.Address, error)
	DeleteAddress(ctx context.Context, contactID, addressID int64) error
	ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error)
}
