package ports

import (
	"context"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

// CreateFarmInput carries the fields for a new farm listing.
type CreateFarmInput struct {
	Name        string
	Description string
	Location    string
	Products    []string
	// Owner is an optional, unverified User reference.
	Owner string
}

// FarmService defines use-case operations for farms.
type FarmService interface {
	Create(ctx context.Context, input CreateFarmInput) (*domain.Farm, error)
	// List returns all farms ordered by name ascending.
	List(ctx context.Context) ([]*domain.Farm, error)
	Get(ctx context.Context, id string) (*domain.Farm, error)
}

// FarmCache is a read-through cache for farm queries. Implementations must
// degrade to misses when the cache backend is unavailable; a cache failure
// never fails a query.
type FarmCache interface {
	GetList(ctx context.Context) ([]*domain.Farm, bool)
	SetList(ctx context.Context, farms []*domain.Farm)
	GetFarm(ctx context.Context, id string) (*domain.Farm, bool)
	SetFarm(ctx context.Context, farm *domain.Farm)
	// Invalidate drops the cached list after a farm is created.
	Invalidate(ctx context.Context)
}
