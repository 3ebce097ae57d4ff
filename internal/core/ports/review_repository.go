package ports

import (
	"context"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	// List returns reviews ordered by date descending. When farmID is
	// non-empty only reviews for that farm are returned.
	List(ctx context.Context, farmID string) ([]*domain.Review, error)
}
