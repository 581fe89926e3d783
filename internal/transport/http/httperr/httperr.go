package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hotelops/settlement/internal/service/models/apperr"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSON serializes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}

// WriteError translates a service error into its HTTP shape.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidationFailed):
		writeError(w, http.StatusBadRequest, "validation_failed", err)
	case errors.Is(err, apperr.ErrReferenceNotFound):
		writeError(w, http.StatusNotFound, "reference_not_found", err)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// WriteValidationError reports a malformed request without consulting the
// error taxonomy.
func WriteValidationError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, "validation_failed", err)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	_ = WriteJSON(w, status, ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}
