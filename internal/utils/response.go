package utils

import (
	"encoding/json"
	"net/http"

	"MOVIELIST_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a JSON error response
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// DecodeJSONRequest decodes the request body into v. On malformed JSON it
// writes a 400 response and returns the error, so callers just return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "Request body must be valid JSON")
		return err
	}
	return nil
}
