package handlers

import (
	"errors"
	"log"
	"net/http"

	"MOVIELIST_BACK-END/internal/service"
	"MOVIELIST_BACK-END/internal/utils"
)

// writeServiceError maps every service error kind to exactly one HTTP status.
// Anything unrecognized is an internal error and is logged, not leaked.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
	case errors.Is(err, service.ErrInvalidID):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid movie id", "Movie id must be a UUID")
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
	case errors.Is(err, service.ErrConflict):
		utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", "Email is already registered")
	case errors.Is(err, service.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Movie not found")
	default:
		log.Printf("Internal error: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
	}
}
