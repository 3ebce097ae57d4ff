package domain

// BookingStatus is the lifecycle state of a booking. Bookings are created
// pending and are immutable afterwards; no transition endpoint exists.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a visit request against a farm. FarmID and UserID are weak
// references: resolved on read, tolerated when stale.
type Booking struct {
	ID     string        `json:"id"`
	FarmID string        `json:"farm,omitempty"`
	UserID string        `json:"user,omitempty"`
	Date   string        `json:"date"`
	Time   string        `json:"time"`
	Status BookingStatus `json:"status"`
}
