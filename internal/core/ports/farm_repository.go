package ports

import (
	"context"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

// FarmRepository defines persistence operations for farms.
type FarmRepository interface {
	Create(ctx context.Context, f *domain.Farm) (*domain.Farm, error)
	FindByID(ctx context.Context, id string) (*domain.Farm, error)
	// ListByName returns all farms ordered by name ascending.
	ListByName(ctx context.Context) ([]*domain.Farm, error)
	// FindByIDs resolves a set of farm ids in one query. Ids that do not
	// resolve are simply absent from the result map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Farm, error)
}
