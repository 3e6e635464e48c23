package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
)

type userService struct {
	userRepository store.UserRepository
	passwordCost   int
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		passwordCost:   cfg.PasswordCost,
		validator:      validators.NewCredentialsValidator(),
		logger:         logger,
	}
}

// RegisterUser creates a user row. The password is stored only as a bcrypt
// digest.
//
// Returns:
//   - ErrInvalidDataProvided if the email is not an address or the
//     password is empty or longer than bcrypt accepts.
//   - a wrapped store.ErrEmailAlreadyExists for a taken email.
func (s *userService) RegisterUser(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials := models.Credentials{Email: normalizeEmail(email), Password: password}
	if err := s.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	digest, err := utils.HashPassword(credentials.Password, s.passwordCost)
	if err != nil {
		return models.User{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{Email: credentials.Email, PasswordDigest: digest})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.UserID).Str("email", created.Email).Msg("user created")

	return created, nil
}
