package ports

import (
	"context"
	"time"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

// CreateReviewInput carries the fields for a new review. Rating is stored
// as given; the 1 to 5 range is not enforced.
type CreateReviewInput struct {
	FarmID  string
	UserID  string
	Rating  float64
	Comment string
}

// UserRef is the slice of a user joined into a review at query time.
type UserRef struct {
	ID   string
	Name string
}

// ReviewView is a review with its user reference resolved. User is nil when
// the referenced user no longer exists.
type ReviewView struct {
	ID      string
	FarmID  string
	User    *UserRef
	Rating  float64
	Comment string
	Date    time.Time
}

// ReviewService defines use-case operations for reviews.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	// List returns reviews date descending, filtered to one farm when
	// farmID is non-empty, each with the author's name joined in.
	List(ctx context.Context, farmID string) ([]ReviewView, error)
}
