package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/harvestly/farmbook-api/internal/core/domain"
	"github.com/harvestly/farmbook-api/internal/core/ports"
)

type FarmService struct {
	repo   ports.FarmRepository
	cache  ports.FarmCache
	logger zerolog.Logger
}

func NewFarmService(repo ports.FarmRepository, cache ports.FarmCache, logger zerolog.Logger) *FarmService {
	return &FarmService{repo: repo, cache: cache, logger: logger}
}

// Create stores a new farm listing and drops the cached farm list so the
// next List reflects it.
func (s *FarmService) Create(ctx context.Context, input ports.CreateFarmInput) (*domain.Farm, error) {
	farm := &domain.Farm{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		Products:    input.Products,
		Owner:       input.Owner,
	}

	created, err := s.repo.Create(ctx, farm)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create farm")
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.logger.Info().Str("farm_id", created.ID).Str("name", created.Name).Msg("farm created")
	return created, nil
}

// List returns all farms ordered by name ascending, serving from the cache
// when it holds a fresh copy.
func (s *FarmService) List(ctx context.Context) ([]*domain.Farm, error) {
	if farms, ok := s.cache.GetList(ctx); ok {
		return farms, nil
	}

	farms, err := s.repo.ListByName(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetList(ctx, farms)
	return farms, nil
}

// Get returns a single farm or domain.ErrFarmNotFound.
func (s *FarmService) Get(ctx context.Context, id string) (*domain.Farm, error) {
	if farm, ok := s.cache.GetFarm(ctx, id); ok {
		return farm, nil
	}

	farm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetFarm(ctx, farm)
	return farm, nil
}
