package models

import "time"

// User is the account row stored in the "users" table.
// PasswordDigest is a bcrypt digest and is never serialized.
type User struct {
	// UserID is the surrogate primary key assigned by the database.
	UserID int64 `json:"-"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordDigest is the opaque hashed credential. It must never hold
	// plaintext and is never compared as plaintext.
	PasswordDigest string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity returns the resolved identity view of the user.
func (u User) Identity() Identity {
	return Identity{UserID: u.UserID, Email: u.Email}
}
