package models

// Address is a postal address owned by exactly one contact and, transitively,
// by that contact's owning user.
type Address struct {
	// AddressID is the server-assigned identifier of the address.
	AddressID int64 `json:"id"`

	// ContactID identifies the owning contact. Internal; every query is
	// scoped with this value after the contact itself has been resolved
	// under the authenticated user.
	ContactID int64 `json:"-"`

	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}
