package ports

import (
	"context"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	// ListByUser returns the bookings whose user field equals userID,
	// ordered by date descending.
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
