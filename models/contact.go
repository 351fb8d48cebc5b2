package models

// Contact is an address-book entry owned by exactly one user. It is only
// visible and mutable through requests authenticated as that owner.
type Contact struct {
	// ContactID is the server-assigned identifier of the contact.
	ContactID int64 `json:"id"`

	// UserID identifies the owning user. Internal; ownership is enforced at
	// the persistence layer by scoping every query with this value.
	UserID int64 `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}
