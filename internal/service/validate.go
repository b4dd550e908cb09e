package service

import (
	"fmt"
	"regexp"
	"strings"

	"MOVIELIST_BACK-END/internal/dto"
)

// Field rules live here, not in the persistence layer, so they are checked
// before every write and testable without a database. The database schema
// carries matching constraints as a backstop.

var emailPattern = regexp.MustCompile(`^.+@.+\..+$`)

const (
	minRating = 0
	maxRating = 10
)

func validateRegistration(name, email, password string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: email is not a valid address", ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	return nil
}

// validateMovieInput checks whatever fields the input carries. requireTitle
// distinguishes create (title mandatory) from merge-patch updates (title only
// validated when supplied).
func validateMovieInput(in dto.MovieInput, requireTitle bool) error {
	if requireTitle && (in.Title == nil || strings.TrimSpace(*in.Title) == "") {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if in.Rating != nil && (*in.Rating < minRating || *in.Rating > maxRating) {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrValidation, minRating, maxRating)
	}
	return nil
}
