package ports

import (
	"context"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

// CreateBookingInput carries the fields for a new booking. Any status the
// caller supplies is discarded; bookings always start pending.
type CreateBookingInput struct {
	FarmID string
	UserID string
	Date   string
	Time   string
}

// FarmRef is the slice of a farm joined into a booking at query time.
type FarmRef struct {
	ID       string
	Name     string
	Location string
}

// BookingView is a booking with its farm reference resolved. Farm is nil
// when the referenced farm no longer exists.
type BookingView struct {
	ID     string
	Farm   *FarmRef
	UserID string
	Date   string
	Time   string
	Status domain.BookingStatus
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	// ListForUser returns the user's bookings, date descending, each with
	// the referenced farm's name and location joined in.
	ListForUser(ctx context.Context, userID string) ([]BookingView, error)
}
