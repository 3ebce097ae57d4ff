package handler

import "time"

type createReviewRequest struct {
	Farm string `json:"farm" validate:"required"`
	User string `json:"user" validate:"required"`
	// Rating is a pointer so an explicit 0 is distinguishable from an
	// absent field. The 1 to 5 range is deliberately not enforced.
	Rating  *float64 `json:"rating" validate:"required"`
	Comment string   `json:"comment"`
}

// createdReviewResponse echoes the stored review with its raw references.
type createdReviewResponse struct {
	ID      string    `json:"id"`
	Farm    string    `json:"farm,omitempty"`
	User    string    `json:"user,omitempty"`
	Rating  float64   `json:"rating"`
	Comment string    `json:"comment,omitempty"`
	Date    time.Time `json:"date"`
}

// reviewUserResponse is the user slice joined into a review list item.
type reviewUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// reviewResponse is a list item with the author resolved. User is omitted
// entirely when the referenced user no longer exists.
type reviewResponse struct {
	ID      string              `json:"id"`
	Farm    string              `json:"farm,omitempty"`
	User    *reviewUserResponse `json:"user,omitempty"`
	Rating  float64             `json:"rating"`
	Comment string              `json:"comment,omitempty"`
	Date    time.Time           `json:"date"`
}
