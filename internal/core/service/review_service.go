package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/harvestly/farmbook-api/internal/core/domain"
	"github.com/harvestly/farmbook-api/internal/core/ports"
)

type ReviewService struct {
	repo   ports.ReviewRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, users ports.UserRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, users: users, logger: logger}
}

// Create stores a new review dated now. Rating is persisted exactly as
// submitted, out-of-range values included.
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		FarmID:  input.FarmID,
		UserID:  input.UserID,
		Rating:  input.Rating,
		Comment: input.Comment,
		Date:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, review)
	if err != nil {
		s.logger.Error().Err(err).Str("farm_id", input.FarmID).Msg("failed to create review")
		return nil, err
	}

	s.logger.Info().Str("review_id", created.ID).Str("farm_id", created.FarmID).Msg("review created")
	return created, nil
}

// List returns reviews ordered by date descending, filtered to one farm when
// farmID is non-empty, each carrying the author's name. A review whose user
// no longer resolves keeps a nil User instead of failing the whole query.
func (s *ReviewService) List(ctx context.Context, farmID string) ([]ports.ReviewView, error) {
	reviews, err := s.repo.List(ctx, farmID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(reviews))
	seen := make(map[string]struct{}, len(reviews))
	for _, r := range reviews {
		if r.UserID == "" {
			continue
		}
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}

	users := map[string]*domain.User{}
	if len(ids) > 0 {
		users, err = s.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	views := make([]ports.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		view := ports.ReviewView{
			ID:      r.ID,
			FarmID:  r.FarmID,
			Rating:  r.Rating,
			Comment: r.Comment,
			Date:    r.Date,
		}
		if u, ok := users[r.UserID]; ok {
			view.User = &ports.UserRef{ID: u.ID, Name: u.Name}
		}
		views = append(views, view)
	}
	return views, nil
}
