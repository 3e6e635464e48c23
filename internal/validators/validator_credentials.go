package validators

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-auth-gate/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	maxEmailLength = 254

	// bcrypt only looks at the first 72 bytes of a password.
	maxPasswordBytes = 72
)

type CredentialsValidator struct {
	validate *validator.Validate
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks models.Credentials. Without fields, every field is checked.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := v.validate.Var(credentials.Email, fmt.Sprintf("required,email,max=%d", maxEmailLength)); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
			if len(credentials.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
