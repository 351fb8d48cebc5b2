package models

// Request shapes decoded from HTTP bodies and query strings. Validation
// rules for each shape live in the validators package.

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PATCH /api/users/current.
// Both fields are optional; an empty value means "leave unchanged".
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ContactRequest is the body of POST /api/contacts and PUT /api/contacts/{id}.
type ContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// AddressRequest is the body of address create and update calls.
type AddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// SearchContactsRequest carries the owner scope, the optional filters, and
// the paging window of GET /api/contacts. All filters are AND-combined;
// Name matches first_name OR last_name.
type SearchContactsRequest struct {
	UserID int64
	Name   string
	Email  string
	Phone  string
	Page   int
	Size   int
}

// UserResponse is the public projection of a user. The password hash and the
// session token never leave the server.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse is the success body of POST /api/users/login.
type TokenResponse struct {
	Token string `json:"token"`
}

// Paging describes the window of a search result set.
// TotalPage is ceil(TotalItem/size); 0 when nothing matched.
type Paging struct {
	Page      int `json:"page"`
	TotalPage int `json:"total_page"`
	TotalItem int `json:"total_item"`
}

// DataResponse is the success envelope: {"data": ...}.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the failure envelope: {"errors": ...}. Errors holds either
// a single message string or a list of validation violations.
type ErrorResponse struct {
	Errors any `json:"errors"`
}

// SearchResponse is the success body of GET /api/contacts.
type SearchResponse struct {
	Data   []Contact `json:"data"`
	Paging Paging    `json:"paging"`
}
