package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"MOVIELIST_BACK-END/internal/config"
	"MOVIELIST_BACK-END/internal/models"
	"MOVIELIST_BACK-END/internal/store"
)

// In-memory stores mirroring the scoping behavior of the real ones, so the
// handlers can be exercised end to end without a database.

type fakeUserStore struct {
	byEmail map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*models.User{}}
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return store.ErrDuplicate
	}
	saved := *u
	f.byEmail[u.Email] = &saved
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	found := *u
	return &found, nil
}

type fakeMovieStore struct {
	byID map[uuid.UUID]*models.Movie
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{byID: map[uuid.UUID]*models.Movie{}}
}

func (f *fakeMovieStore) Insert(_ context.Context, m *models.Movie) error {
	saved := *m
	f.byID[m.ID] = &saved
	return nil
}

func (f *fakeMovieStore) FindMany(_ context.Context, ownerID uuid.UUID, filters store.MovieFilters) ([]models.Movie, error) {
	movies := []models.Movie{}
	for _, m := range f.byID {
		if m.OwnerID != ownerID {
			continue
		}
		if filters.Genre != "" && (m.Genre == nil || !containsFold(*m.Genre, filters.Genre)) {
			continue
		}
		if filters.Watched != nil && m.Watched != *filters.Watched {
			continue
		}
		if filters.MinRating != nil && (m.Rating == nil || *m.Rating < *filters.MinRating) {
			continue
		}
		movies = append(movies, *m)
	}
	return movies, nil
}

func (f *fakeMovieStore) FindOne(_ context.Context, id, ownerID uuid.UUID) (*models.Movie, error) {
	m, ok := f.byID[id]
	if !ok || m.OwnerID != ownerID {
		return nil, store.ErrNotFound
	}
	found := *m
	return &found, nil
}

func (f *fakeMovieStore) UpdateOne(_ context.Context, id, ownerID uuid.UUID, patch store.MoviePatch) (*models.Movie, error) {
	m, ok := f.byID[id]
	if !ok || m.OwnerID != ownerID {
		return nil, store.ErrNotFound
	}
	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Director != nil {
		m.Director = patch.Director
	}
	if patch.Genre != nil {
		m.Genre = patch.Genre
	}
	if patch.Year != nil {
		m.Year = patch.Year
	}
	if patch.Rating != nil {
		m.Rating = patch.Rating
	}
	if patch.Watched != nil {
		m.Watched = *patch.Watched
	}
	m.UpdatedAt = time.Now()
	updated := *m
	return &updated, nil
}

func (f *fakeMovieStore) DeleteOne(_ context.Context, id, ownerID uuid.UUID) (bool, error) {
	m, ok := f.byID[id]
	if !ok || m.OwnerID != ownerID {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}
}
