package service

import (
	"context"

	"github.com/octareno/contacts-api/models"
)

// UserService covers registration, the session-token lifecycle, and profile
// updates for the authenticated user.
type UserService interface {
	// Register validates the payload, hashes the password, and creates the
	// account. A duplicate username surfaces as
	// [store.ErrUsernameAlreadyExists].
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and issues a fresh opaque token,
	// unconditionally overwriting any previously stored one (single active
	// session per user). Unknown username and wrong password both return
	// [ErrWrongCredentials].
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// Authenticate resolves a bearer credential to the owning user, or
	// [store.ErrNoUserWasFound]. Read-only; the token is not renewed.
	Authenticate(ctx context.Context, token string) (models.User, error)

	// Update applies the non-empty fields of req to the given user and
	// returns the stored result.
	Update(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error)

	// Logout clears the user's session token, invalidating it for all
	// future requests immediately.
	Logout(ctx context.Context, user models.User) error
}

// ContactService orchestrates contact CRUD and search for an owning user.
type ContactService interface {
	Create(ctx context.Context, userID int64, req models.ContactRequest) (models.Contact, error)
	Get(ctx context.Context, userID, contactID int64) (models.Contact, error)
	Update(ctx context.Context, userID, contactID int64, req models.ContactRequest) (models.Contact, error)
	Delete(ctx context.Context, userID, contactID int64) error

	// Search returns the page-window slice and the paging summary
	// (total_page = ceil(total_item/size), 0 when nothing matched).
	Search(ctx context.Context, req models.SearchContactsRequest) ([]models.Contact, models.Paging, error)
}

// AddressService orchestrates address CRUD beneath a contact. Every
// operation first resolves the contact under the authenticated user and
// reports [store.ErrContactNotFound] when that resolution fails, so a
// foreign contact id behaves exactly like a missing one.
type AddressService interface {
	Create(ctx context.Context, userID, contactID int64, req models.AddressRequest) (models.Address, error)
	Get(ctx context.Context, userID, contactID, addressID int64) (models.Address, error)
	Update(ctx context.Context, userID, contactID, addressID int64, req models.AddressRequest) (models.Address, error)
	Delete(ctx context.Context, userID, contactID, addressID int64) error
	List(ctx context.Context, userID, contactID int64) ([]models.Address, error)
}
