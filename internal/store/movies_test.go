package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MOVIELIST_BACK-END/internal/models"
)

var movieCols = []string{"id", "title", "director", "genre", "year", "rating", "watched", "owner_id", "created_at", "updated_at"}

func movieRow(id, ownerID uuid.UUID, title string, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(movieCols).
		AddRow(id, title, nil, nil, nil, nil, false, ownerID, now, now)
}

func ptr[T any](v T) *T { return &v }

func TestMovieStore_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	m := &models.Movie{
		ID:        uuid.New(),
		Title:     "Dune",
		Genre:     ptr("sci-fi"),
		Rating:    ptr(8.5),
		OwnerID:   uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO movies`).
		WithArgs(m.ID, m.Title, m.Director, m.Genre, m.Year, m.Rating, m.Watched, m.OwnerID, m.CreatedAt, m.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewMovieStore(mock).Insert(context.Background(), m))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieStore_FindMany(t *testing.T) {
	ownerID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		filters   MovieFilters
		setupMock func(mock pgxmock.PgxPoolIface)
		wantLen   int
	}{
		{
			name:    "owner scope only",
			filters: MovieFilters{},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM movies WHERE owner_id = \$1$`).
					WithArgs(ownerID).
					WillReturnRows(movieRow(uuid.New(), ownerID, "Dune", now))
			},
			wantLen: 1,
		},
		{
			name:    "genre filter uses case-insensitive substring match",
			filters: MovieFilters{Genre: "sci"},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM movies WHERE owner_id = \$1 AND genre ILIKE \$2`).
					WithArgs(ownerID, "%sci%").
					WillReturnRows(pgxmock.NewRows(movieCols))
			},
			wantLen: 0,
		},
		{
			name:    "all filters combined with AND",
			filters: MovieFilters{Genre: "sci", Watched: ptr(true), MinRating: ptr(8.0)},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM movies WHERE owner_id = \$1 AND genre ILIKE \$2 AND watched = \$3 AND rating >= \$4`).
					WithArgs(ownerID, "%sci%", true, 8.0).
					WillReturnRows(movieRow(uuid.New(), ownerID, "Dune", now))
			},
			wantLen: 1,
		},
		{
			name:    "rating threshold without other filters",
			filters: MovieFilters{MinRating: ptr(8.0)},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM movies WHERE owner_id = \$1 AND rating >= \$2`).
					WithArgs(ownerID, 8.0).
					WillReturnRows(movieRow(uuid.New(), ownerID, "Dune", now))
			},
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			got, err := NewMovieStore(mock).FindMany(context.Background(), ownerID, tt.filters)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			assert.NotNil(t, got, "empty result must be an empty slice, not nil")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMovieStore_FindOne(t *testing.T) {
	movieID := uuid.New()
	ownerID := uuid.New()

	t.Run("scoped lookup", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`FROM movies WHERE id = \$1 AND owner_id = \$2`).
			WithArgs(movieID, ownerID).
			WillReturnRows(movieRow(movieID, ownerID, "Dune", time.Now()))

		got, err := NewMovieStore(mock).FindOne(context.Background(), movieID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, movieID, got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match maps to ErrNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`FROM movies WHERE id = \$1 AND owner_id = \$2`).
			WithArgs(movieID, ownerID).
			WillReturnError(pgx.ErrNoRows)

		_, err = NewMovieStore(mock).FindOne(context.Background(), movieID, ownerID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMovieStore_UpdateOne(t *testing.T) {
	movieID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	t.Run("single-field patch writes only that column", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(movieCols).
			AddRow(movieID, "Dune", nil, nil, nil, nil, true, ownerID, now, now)
		mock.ExpectQuery(`UPDATE movies SET watched = \$1, updated_at = \$2 WHERE id = \$3 AND owner_id = \$4 RETURNING`).
			WithArgs(true, pgxmock.AnyArg(), movieID, ownerID).
			WillReturnRows(rows)

		got, err := NewMovieStore(mock).UpdateOne(context.Background(), movieID, ownerID, MoviePatch{Watched: ptr(true)})
		require.NoError(t, err)
		assert.True(t, got.Watched)
		assert.Equal(t, "Dune", got.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ownership is part of the update statement", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`UPDATE movies SET title = \$1, updated_at = \$2 WHERE id = \$3 AND owner_id = \$4 RETURNING`).
			WithArgs("Arrival", pgxmock.AnyArg(), movieID, ownerID).
			WillReturnError(pgx.ErrNoRows)

		_, err = NewMovieStore(mock).UpdateOne(context.Background(), movieID, ownerID, MoviePatch{Title: ptr("Arrival")})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty patch falls back to a scoped read", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`FROM movies WHERE id = \$1 AND owner_id = \$2`).
			WithArgs(movieID, ownerID).
			WillReturnRows(movieRow(movieID, ownerID, "Dune", now))

		got, err := NewMovieStore(mock).UpdateOne(context.Background(), movieID, ownerID, MoviePatch{})
		require.NoError(t, err)
		assert.Equal(t, "Dune", got.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMovieStore_DeleteOne(t *testing.T) {
	movieID := uuid.New()
	ownerID := uuid.New()

	tests := []struct {
		name    string
		rows    int64
		deleted bool
	}{
		{name: "row removed", rows: 1, deleted: true},
		{name: "no matching row", rows: 0, deleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectExec(`DELETE FROM movies WHERE id = \$1 AND owner_id = \$2`).
				WithArgs(movieID, ownerID).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.rows))

			deleted, err := NewMovieStore(mock).DeleteOne(context.Background(), movieID, ownerID)
			require.NoError(t, err)
			assert.Equal(t, tt.deleted, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
