package handler

type createBookingRequest struct {
	Farm string `json:"farm"`
	User string `json:"user"`
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
	// Status is accepted but ignored: bookings always start pending.
	Status string `json:"status"`
}

// createdBookingResponse echoes the stored booking with its raw references.
type createdBookingResponse struct {
	ID     string `json:"id"`
	Farm   string `json:"farm,omitempty"`
	User   string `json:"user,omitempty"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
}

// bookingFarmResponse is the farm slice joined into a booking list item.
type bookingFarmResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// bookingResponse is a list item with the farm reference resolved. Farm is
// omitted entirely when the referenced farm no longer exists.
type bookingResponse struct {
	ID     string               `json:"id"`
	Farm   *bookingFarmResponse `json:"farm,omitempty"`
	User   string               `json:"user,omitempty"`
	Date   string               `json:"date"`
	Time   string               `json:"time"`
	Status string               `json:"status"`
}
