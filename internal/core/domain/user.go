package domain

import "time"

// User is a visitor identity. The user/owner fields on other entities point
// at a User by id; the reference is client-supplied and never verified.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
