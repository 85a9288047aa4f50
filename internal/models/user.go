package models

// User represents a registered account on the server side.
//
// The client never holds a User: after login it only keeps an Identity,
// and the credential token lives in the session's token store.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's address (unique). Used for login.
	Email string

	// PasswordHash is the bcrypt hash of the password. Never serialized
	// into any API response.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser builds a User ready for persistence. ID and CreatedAt are
// assigned by the store.
func NewUser(email, passwordHash string) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
	}
}
