package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"recipe-vault/backend/app/dto"
	"recipe-vault/backend/app/models"
	"recipe-vault/backend/app/services"
	"recipe-vault/backend/global"
)

const maxBodyBytes = 1 << 20

var errTrailingData = errors.New("trailing data after JSON body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

func writeErrors(w http.ResponseWriter, status int, msgs []string) {
	writeJSON(w, status, dto.ErrorsResponse{Errors: msgs})
}

// decode reads a single JSON value into v. Trailing data after it is rejected.
// On failure it has already written the response.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(v)
	if err == nil {
		if extra := dec.Decode(&json.RawMessage{}); !errors.Is(extra, io.EOF) {
			err = errTrailingData
		}
	}
	if err != nil {
		writeErrors(w, http.StatusBadRequest, []string{"Request body must be valid JSON."})
		return false
	}
	return true
}

// fail maps a service error onto the HTTP error taxonomy.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeErrors(w, http.StatusUnprocessableEntity, verr.Messages)
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		global.Logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
