package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"recipe-vault/backend/app/dto"
	"recipe-vault/backend/app/session"
	"recipe-vault/backend/global"
)

type Auth struct{ Sessions *session.Manager }

// RequireSession rejects requests without a live session with 401.
func (a *Auth) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid, uid, err := a.Sessions.Resolve(r)
		switch {
		case errors.Is(err, session.ErrNoSession), errors.Is(err, session.ErrNotFound):
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		case err != nil:
			global.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("resolve session")
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sid, uid)))
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: msg})
}
