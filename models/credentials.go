package models

// Credentials is the email and plaintext password supplied when creating a
// user or requesting a session token. It is never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}
