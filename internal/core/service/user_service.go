package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/harvestly/farmbook-api/internal/core/domain"
	"github.com/harvestly/farmbook-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create registers a new user. The password is stored exactly as supplied;
// there is no credential verification anywhere in the API. Duplicate emails
// surface as domain.ErrEmailTaken from the repository's unique index.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	user := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user created")
	return created, nil
}
