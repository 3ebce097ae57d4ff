package domain

import "time"

// Review is a visitor rating of a farm. Rating is stored exactly as
// submitted; the expected 1 to 5 range is not enforced.
type Review struct {
	ID      string    `json:"id"`
	FarmID  string    `json:"farm,omitempty"`
	UserID  string    `json:"user,omitempty"`
	Rating  float64   `json:"rating"`
	Comment string    `json:"comment,omitempty"`
	Date    time.Time `json:"date"`
}
