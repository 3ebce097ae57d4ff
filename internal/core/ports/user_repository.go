package ports

import (
	"context"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a user and returns it with the generated id.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs resolves a set of user ids in one query. Ids that do not
	// resolve are simply absent from the result map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
}
