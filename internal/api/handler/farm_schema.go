package handler

// errorResponse documents the standard error envelope on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createFarmRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location"    validate:"required"`
	Products    []string `json:"products"`
	// Owner is an optional User reference; it is stored as supplied, never
	// verified.
	Owner string `json:"owner"`
}

// farmResponse is the transport view of a farm, used for single objects and
// list items alike.
type farmResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Products    []string `json:"products"`
	Owner       string   `json:"owner,omitempty"`
}
