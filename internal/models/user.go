package models

// User represents a registered user account.
//
// Users are created on registration and immutable afterwards. The email is
// stored trimmed and lowercased so lookups are case-insensitive.
type User struct {
	// ID is the store-assigned identifier for the user.
	ID int64 `json:"id"`

	// Email is the user's unique, normalized email address.
	Email string `json:"email"`

	// FullName is the optional display name supplied at registration.
	FullName string `json:"full_name,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized to clients.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"-"`
}
