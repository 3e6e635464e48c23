// Package validators checks user input before it reaches the users table.
//
// The only input the module accepts from outside is a pair of credentials
// (email and password) given to userctl create. [CredentialsValidator]
// enforces the rules on it; the service layer holds it as a [Validator] so
// tests can swap it out.
package validators

import "context"

// Validator checks obj and returns a field-specific sentinel on the first
// violation. With fields, only the named fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
