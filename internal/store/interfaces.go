package store

import (
	"context"

	"github.com/octareno/contacts-api/models"
)

// UserRepository persists user accounts and their session tokens.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with the server-assigned
	// UserID. Returns [ErrUsernameAlreadyExists] on a duplicate username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user whose username matches exactly,
	// or [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByToken returns the user whose session token matches exactly,
	// or [ErrNoUserWasFound]. A cleared (NULL) token never matches.
	FindUserByToken(ctx context.Context, token string) (models.User, error)

	// UpdateUser persists the user's mutable profile fields (name, password
	// hash) and returns the stored row.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateToken sets or clears (nil) the user's session token. The write
	// is a single-row UPDATE; concurrent logins race last-writer-wins.
	UpdateToken(ctx context.Context, userID int64, token *string) error
}

// ContactRepository persists contacts scoped by their owning user. Every
// method that addresses an existing contact takes the owner's userID and
// reports [ErrContactNotFound] for both unknown and foreign contacts.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	FindContactByID(ctx context.Context, userID, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID int64) error

	// SearchContacts returns the page-window slice matching the filter and
	// the total number of matches ignoring the paging window.
	SearchContacts(ctx context.Context, req models.SearchContactsRequest) ([]models.Contact, int, error)
}

// AddressRepository persists addresses scoped by their owning contact.
// Callers must resolve the contact under the authenticated user before
// invoking any of these methods.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address models.Address) (models.Address, error)
	FindAddressByID(ctx context.Context, contactID, addressID int64) (models.Address, error)
	UpdateAddress(ctx context.Context, address models.Address) (models.Address, error)
	DeleteAddress(ctx context.Context, contactID, addressID int64) error
	ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error)
}
