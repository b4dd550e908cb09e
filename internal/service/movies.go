package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"MOVIELIST_BACK-END/internal/dto"
	"MOVIELIST_BACK-END/internal/models"
	"MOVIELIST_BACK-END/internal/store"
)

// MovieStore is the persistence surface MovieService needs
type MovieStore interface {
	Insert(ctx context.Context, m *models.Movie) error
	FindMany(ctx context.Context, ownerID uuid.UUID, f store.MovieFilters) ([]models.Movie, error)
	FindOne(ctx context.Context, id, ownerID uuid.UUID) (*models.Movie, error)
	UpdateOne(ctx context.Context, id, ownerID uuid.UUID, patch store.MoviePatch) (*models.Movie, error)
	DeleteOne(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

// MovieService owns the movie CRUD operations. Every operation takes the
// authenticated owner's id and passes it into the store filter, so ownership
// is part of the query itself rather than a post-hoc check.
type MovieService struct {
	movies MovieStore
}

// NewMovieService creates a new MovieService
func NewMovieService(movies MovieStore) *MovieService {
	return &MovieService{movies: movies}
}

// Create persists a new movie for ownerID. The owner always comes from the
// authenticated identity; nothing in the input can set it.
func (s *MovieService) Create(ctx context.Context, in dto.MovieInput, ownerID uuid.UUID) (*models.Movie, error) {
	if err := validateMovieInput(in, true); err != nil {
		return nil, err
	}

	now := time.Now()
	movie := &models.Movie{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(*in.Title),
		Director:  in.Director,
		Genre:     in.Genre,
		Year:      in.Year,
		Rating:    in.Rating,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Watched != nil {
		movie.Watched = *in.Watched
	}

	if err := s.movies.Insert(ctx, movie); err != nil {
		return nil, err
	}

	log.Printf("Movie created: %s (%s) by user %s", movie.Title, movie.ID, ownerID)
	return movie, nil
}

// List returns the owner's movies matching the raw query filters. Malformed
// filter values are ignored rather than rejected: a non-numeric rating drops
// that filter, and any watched value other than "true" means false.
func (s *MovieService) List(ctx context.Context, ownerID uuid.UUID, f dto.MovieFilters) ([]models.Movie, error) {
	filters := store.MovieFilters{Genre: f.Genre}
	if f.Watched != "" {
		watched := f.Watched == "true"
		filters.Watched = &watched
	}
	if f.Rating != "" {
		if min, err := strconv.ParseFloat(f.Rating, 64); err == nil {
			filters.MinRating = &min
		}
	}
	return s.movies.FindMany(ctx, ownerID, filters)
}

// GetByID fetches one movie scoped by (id, owner). A movie owned by another
// user yields the same ErrNotFound as a missing one.
func (s *MovieService) GetByID(ctx context.Context, movieID string, ownerID uuid.UUID) (*models.Movie, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		return nil, err
	}
	movie, err := s.movies.FindOne(ctx, id, ownerID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return movie, nil
}

// Update merge-patches the owner's movie: only fields present in the input
// change. Used for both PUT and PATCH.
func (s *MovieService) Update(ctx context.Context, movieID string, in dto.MovieInput, ownerID uuid.UUID) (*models.Movie, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		return nil, err
	}
	if err := validateMovieInput(in, false); err != nil {
		return nil, err
	}

	patch := store.MoviePatch{
		Title:    in.Title,
		Director: in.Director,
		Genre:    in.Genre,
		Year:     in.Year,
		Rating:   in.Rating,
		Watched:  in.Watched,
	}
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}

	movie, err := s.movies.UpdateOne(ctx, id, ownerID, patch)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	log.Printf("Movie updated: %s by user %s", movie.ID, ownerID)
	return movie, nil
}

// Delete removes the owner's movie. Deleting a missing movie, or another
// user's, reports ErrNotFound.
func (s *MovieService) Delete(ctx context.Context, movieID string, ownerID uuid.UUID) error {
	id, err := parseMovieID(movieID)
	if err != nil {
		return err
	}
	deleted, err := s.movies.DeleteOne(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	log.Printf("Movie deleted: %s by user %s", id, ownerID)
	return nil
}

func parseMovieID(movieID string) (uuid.UUID, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
