package handlers

import (
	"net/http"
	"strings"

	"MOVIELIST_BACK-END/internal/dto"
	"MOVIELIST_BACK-END/internal/middleware"
	"MOVIELIST_BACK-END/internal/service"
	"MOVIELIST_BACK-END/internal/utils"
)

// MoviesHandler manages movie-related endpoints
type MoviesHandler struct {
	movies *service.MovieService
}

// NewMoviesHandler creates a new MoviesHandler
func NewMoviesHandler(movies *service.MovieService) *MoviesHandler {
	return &MoviesHandler{movies: movies}
}

// Movies dispatches by HTTP method for /api/movies
func (h *MoviesHandler) Movies(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateMovie(w, r)
	case http.MethodGet:
		h.ListMovies(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// MovieByID dispatches by HTTP method for /api/movies/{id}
func (h *MoviesHandler) MovieByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetMovie(w, r)
	case http.MethodPut, http.MethodPatch:
		h.UpdateMovie(w, r)
	case http.MethodDelete:
		h.DeleteMovie(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CreateMovie handles POST /api/movies
// @Summary Add a movie to the authenticated user's list
// @Tags movies
// @Accept json
// @Produce json
// @Param payload body dto.MovieInput true "Movie payload"
// @Success 201 {object} dto.MovieResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/movies [post]
func (h *MoviesHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var input dto.MovieInput
	if err := utils.DecodeJSONRequest(w, r, &input); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	movie, err := h.movies.Create(r.Context(), input, user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.NewMovieResponse(movie))
}

// ListMovies handles GET /api/movies
// @Summary List the authenticated user's movies
// @Description Returns the user's movies, optionally filtered by genre (case-insensitive substring), watched flag, and minimum rating
// @Tags movies
// @Produce json
// @Param genre query string false "Filter by genre"
// @Param watched query boolean false "Filter by watched flag"
// @Param rating query number false "Minimum rating (inclusive)"
// @Success 200 {array} dto.MovieResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/movies [get]
func (h *MoviesHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	query := r.URL.Query()
	filters := dto.MovieFilters{
		Genre:   query.Get("genre"),
		Watched: query.Get("watched"),
		Rating:  query.Get("rating"),
	}

	movies, err := h.movies.List(r.Context(), user.ID, filters)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := make([]dto.MovieResponse, 0, len(movies))
	for i := range movies {
		response = append(response, dto.NewMovieResponse(&movies[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// GetMovie handles GET /api/movies/{id}
// @Summary Get one movie
// @Description Fetches a movie by id. A movie belonging to another user is reported as not found.
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} dto.MovieResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/movies/{id} [get]
func (h *MoviesHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	movieID := movieIDFromPath(r)
	movie, err := h.movies.GetByID(r.Context(), movieID, user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewMovieResponse(movie))
}

// UpdateMovie handles PUT and PATCH /api/movies/{id}
// @Summary Update a movie
// @Description Merge-patch update: only the fields present in the payload change. PUT and PATCH behave identically.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param payload body dto.MovieInput true "Fields to update"
// @Success 200 {object} dto.MovieResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/movies/{id} [patch]
func (h *MoviesHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var input dto.MovieInput
	if err := utils.DecodeJSONRequest(w, r, &input); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	movieID := movieIDFromPath(r)
	movie, err := h.movies.Update(r.Context(), movieID, input, user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewMovieResponse(movie))
}

// DeleteMovie handles DELETE /api/movies/{id}
// @Summary Remove a movie
// @Tags movies
// @Param id path string true "Movie ID"
// @Success 204 "Movie deleted"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/movies/{id} [delete]
func (h *MoviesHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	movieID := movieIDFromPath(r)
	if err := h.movies.Delete(r.Context(), movieID, user.ID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func movieIDFromPath(r *http.Request) string {
	return strings.TrimPrefix(r.URL.Path, "/api/movies/")
}
