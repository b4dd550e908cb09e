package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"MOVIELIST_BACK-END/internal/models"
)

const movieColumns = `id, title, director, genre, year, rating, watched, owner_id, created_at, updated_at`

// MovieFilters narrows a list query. Zero values mean "not filtered".
type MovieFilters struct {
	Genre     string   // case-insensitive substring match
	Watched   *bool    // exact match
	MinRating *float64 // rating >= value; rows with NULL rating never match
}

// MoviePatch describes a merge-patch update. Only non-nil fields are written.
type MoviePatch struct {
	Title    *string
	Director *string
	Genre    *string
	Year     *int
	Rating   *float64
	Watched  *bool
}

// MovieStore persists movies. Every read and mutation is scoped by
// (id, owner_id) jointly so one user's movies are invisible to another.
type MovieStore struct {
	db DB
}

// NewMovieStore creates a new MovieStore
func NewMovieStore(db DB) *MovieStore {
	return &MovieStore{db: db}
}

// Insert persists a new movie
func (s *MovieStore) Insert(ctx context.Context, m *models.Movie) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO movies (id, title, director, genre, year, rating, watched, owner_id, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.Title, m.Director, m.Genre, m.Year, m.Rating, m.Watched, m.OwnerID, m.CreatedAt, m.UpdatedAt,
	)
	return err
}

// FindMany returns the owner's movies matching the filters. Filters are
// AND-combined on top of the owner scope. No explicit ordering.
func (s *MovieStore) FindMany(ctx context.Context, ownerID uuid.UUID, f MovieFilters) ([]models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE owner_id = $1`
	args := []any{ownerID}

	if f.Genre != "" {
		args = append(args, "%"+f.Genre+"%")
		query += fmt.Sprintf(" AND genre ILIKE $%d", len(args))
	}
	if f.Watched != nil {
		args = append(args, *f.Watched)
		query += fmt.Sprintf(" AND watched = $%d", len(args))
	}
	if f.MinRating != nil {
		args = append(args, *f.MinRating)
		query += fmt.Sprintf(" AND rating >= $%d", len(args))
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		var m models.Movie
		if err := scanMovie(rows, &m); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// FindOne returns the movie with the given id if it belongs to ownerID.
// A movie owned by someone else is reported as ErrNotFound.
func (s *MovieStore) FindOne(ctx context.Context, id, ownerID uuid.UUID) (*models.Movie, error) {
	var m models.Movie
	row := s.db.QueryRow(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err := scanMovie(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// UpdateOne applies the patch to the owner's movie as a single atomic UPDATE
// and returns the updated row. The ownership check is part of the statement's
// WHERE clause, not a separate read.
func (s *MovieStore) UpdateOne(ctx context.Context, id, ownerID uuid.UUID, patch MoviePatch) (*models.Movie, error) {
	set := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Director != nil {
		add("director", *patch.Director)
	}
	if patch.Genre != nil {
		add("genre", *patch.Genre)
	}
	if patch.Year != nil {
		add("year", *patch.Year)
	}
	if patch.Rating != nil {
		add("rating", *patch.Rating)
	}
	if patch.Watched != nil {
		add("watched", *patch.Watched)
	}

	// An empty patch changes nothing; return the current row.
	if len(set) == 0 {
		return s.FindOne(ctx, id, ownerID)
	}

	add("updated_at", time.Now())
	args = append(args, id, ownerID)
	query := fmt.Sprintf(
		`UPDATE movies SET %s WHERE id = $%d AND owner_id = $%d RETURNING `+movieColumns,
		strings.Join(set, ", "), len(args)-1, len(args),
	)

	var m models.Movie
	if err := scanMovie(s.db.QueryRow(ctx, query, args...), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// DeleteOne removes the owner's movie in a single atomic DELETE and reports
// whether a row was actually removed.
func (s *MovieStore) DeleteOne(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM movies WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanMovie(row pgx.Row, m *models.Movie) error {
	return row.Scan(&m.ID, &m.Title, &m.Director, &m.Genre, &m.Year,
		&m.Rating, &m.Watched, &m.OwnerID, &m.CreatedAt, &m.UpdatedAt)
}
