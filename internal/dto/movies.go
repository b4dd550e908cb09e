package dto

import (
	"time"

	"MOVIELIST_BACK-END/internal/models"
)

// MovieInput is the payload for creating or updating a movie.
// All fields are pointers so an update only touches what the client sent;
// create applies defaults for anything left nil.
type MovieInput struct {
	Title    *string  `json:"title"`
	Director *string  `json:"director"`
	Genre    *string  `json:"genre"`
	Year     *int     `json:"year"`
	Rating   *float64 `json:"rating"`
	Watched  *bool    `json:"watched"`
}

// MovieFilters carries the raw list query parameters. Empty string means the
// filter was not supplied.
type MovieFilters struct {
	Genre   string
	Watched string
	Rating  string
}

// MovieResponse represents a movie in API responses. The owner id is
// deliberately absent.
type MovieResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Director  *string  `json:"director,omitempty"`
	Genre     *string  `json:"genre,omitempty"`
	Year      *int     `json:"year,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	Watched   bool     `json:"watched"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// NewMovieResponse converts a stored movie into its API representation
func NewMovieResponse(m *models.Movie) MovieResponse {
	return MovieResponse{
		ID:        m.ID.String(),
		Title:     m.Title,
		Director:  m.Director,
		Genre:     m.Genre,
		Year:      m.Year,
		Rating:    m.Rating,
		Watched:   m.Watched,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}
