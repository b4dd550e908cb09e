package models

import (
	"time"

	"github.com/google/uuid"
)

// Movie represents one entry in a user's movie list. Optional attributes are
// pointers so an unset field stays NULL in the database and is omitted from
// JSON. OwnerID never leaves the API.
type Movie struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Director  *string   `json:"director,omitempty" db:"director"`
	Genre     *string   `json:"genre,omitempty" db:"genre"`
	Year      *int      `json:"year,omitempty" db:"year"`
	Rating    *float64  `json:"rating,omitempty" db:"rating"`
	Watched   bool      `json:"watched" db:"watched"`
	OwnerID   uuid.UUID `json:"-" db:"owner_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
