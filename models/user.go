package models

// User represents an account entity used for authentication and as the
// ownership anchor for contacts. Sensitive fields must never be exposed
// outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier of the user.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// Never serialized; plaintext passwords exist only inside the request body.
	Password string `json:"-"`

	// Name is the display name of the user. Non-sensitive, may be shown in UI.
	Name string `json:"name"`

	// Token is the opaque session credential issued at login.
	// nil means the user has no active session. At most one active token
	// per user: a new login overwrites the previous value.
	Token *string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
