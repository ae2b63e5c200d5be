package entity

import (
	"time"
)

// User is the identity record returned by account creation.
// Password holds the bcrypt hash on the reference API side and is never
// serialized.
type User struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Type      string    `json:"type,omitempty"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
