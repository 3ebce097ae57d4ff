package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/harvestly/farmbook-api/internal/core/domain"
	"github.com/harvestly/farmbook-api/internal/core/ports"
)

type BookingService struct {
	repo   ports.BookingRepository
	farms  ports.FarmRepository
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, farms ports.FarmRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, farms: farms, logger: logger}
}

// Create stores a new booking. Status is always initialized to pending;
// whatever the caller sent is discarded. The farm and user references are
// accepted as-is, not verified against the store.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	booking := &domain.Booking{
		FarmID: input.FarmID,
		UserID: input.UserID,
		Date:   input.Date,
		Time:   input.Time,
		Status: domain.BookingPending,
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("farm_id", input.FarmID).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", created.ID).
		Str("farm_id", created.FarmID).
		Str("user_id", created.UserID).
		Msg("booking created")
	return created, nil
}

// ListForUser returns the user's bookings ordered by date descending, each
// carrying the referenced farm's name and location. A booking whose farm no
// longer resolves keeps a nil Farm instead of failing the whole query.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]ports.BookingView, error) {
	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(bookings))
	seen := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.FarmID == "" {
			continue
		}
		if _, ok := seen[b.FarmID]; ok {
			continue
		}
		seen[b.FarmID] = struct{}{}
		ids = append(ids, b.FarmID)
	}

	farms := map[string]*domain.Farm{}
	if len(ids) > 0 {
		farms, err = s.farms.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	views := make([]ports.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := ports.BookingView{
			ID:     b.ID,
			UserID: b.UserID,
			Date:   b.Date,
			Time:   b.Time,
			Status: b.Status,
		}
		if farm, ok := farms[b.FarmID]; ok {
			view.Farm = &ports.FarmRef{ID: farm.ID, Name: farm.Name, Location: farm.Location}
		}
		views = append(views, view)
	}
	return views, nil
}
