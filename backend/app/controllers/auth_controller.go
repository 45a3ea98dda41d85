package controllers

import (
	"net/http"

	"recipe-vault/backend/app/dto"
	"recipe-vault/backend/app/metrics"
	"recipe-vault/backend/app/middleware"
	"recipe-vault/backend/app/services"
	"recipe-vault/backend/app/session"
)

type AuthController struct {
	Users    *services.UserService
	Sessions *session.Manager
}

func NewAuthController(users *services.UserService, sessions *session.Manager) *AuthController {
	return &AuthController{Users: users, Sessions: sessions}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if !decode(w, r, &req) {
		return
	}
	u, err := c.Users.Register(r.Context(), services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		ImageURL: req.ImageURL,
		Bio:      req.Bio,
	})
	metrics.RecordAuth("signup", err == nil)
	if err != nil {
		fail(w, r, err)
		return
	}
	if _, err := c.Sessions.Start(r.Context(), w, u.ID); err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewUserResponse(u))
}

func (c *AuthController) CheckSession(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := middleware.GetSession(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	u, err := c.Users.Get(r.Context(), uid)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	u, err := c.Users.Authenticate(r.Context(), req.Username, req.Password)
	metrics.RecordAuth("login", err == nil)
	if err != nil {
		fail(w, r, err)
		return
	}
	if _, err := c.Sessions.Start(r.Context(), w, u.ID); err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sid, _, ok := middleware.GetSession(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := c.Sessions.End(r.Context(), w, sid); err != nil {
		fail(w, r, err)
		return
	}
	metrics.RecordAuth("logout", true)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAccount removes the session's user with all of its recipes and ends the session.
func (c *AuthController) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	sid, uid, ok := middleware.GetSession(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := c.Users.Delete(r.Context(), uid); err != nil {
		fail(w, r, err)
		return
	}
	if err := c.Sessions.End(r.Context(), w, sid); err != nil {
		fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
