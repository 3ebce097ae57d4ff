package domain

// Farm is a harvest-experience listing.
type Farm struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Products    []string `json:"products"`
	// Owner optionally references the User that listed the farm.
	Owner string `json:"owner,omitempty"`
}
