package ports

import (
	"context"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

// CreateUserInput carries the fields for user registration. All three are
// required; presence is checked at the transport layer.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserService defines use-case operations for users.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
}
