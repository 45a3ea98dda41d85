package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	jwtutil "recipe-vault/backend/app/jwt"

	"github.com/google/uuid"
)

const DefaultCookieName = "session"

// Manager binds a Store to the session cookie. The cookie holds a signed
// envelope around the session id; the user id only lives in the Store.
type Manager struct {
	Store      Store
	Signer     *jwtutil.Signer
	CookieName string
	TTL        time.Duration
	Secure     bool
}

func NewManager(store Store, signer *jwtutil.Signer, cookieName string, ttl time.Duration, secure bool) *Manager {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Manager{Store: store, Signer: signer, CookieName: cookieName, TTL: ttl, Secure: secure}
}

// Start creates a session for userID and sets the cookie on w.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, userID uint) (string, error) {
	sid := uuid.NewString()
	if err := m.Store.Put(ctx, sid, userID, m.TTL); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	token, err := m.Signer.Sign(sid)
	if err != nil {
		_ = m.Store.Delete(ctx, sid)
		return "", fmt.Errorf("sign session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sid, nil
}

// Resolve returns the session id and user id carried by r.
// It returns ErrNoSession when there is no valid cookie and ErrNotFound
// when the cookie names a session the store no longer knows.
func (m *Manager) Resolve(r *http.Request) (string, uint, error) {
	c, err := r.Cookie(m.CookieName)
	if err != nil || c.Value == "" {
		return "", 0, ErrNoSession
	}
	claims, err := m.Signer.Parse(c.Value)
	if err != nil {
		return "", 0, ErrNoSession
	}
	uid, err := m.Store.Get(r.Context(), claims.SessionID)
	if err != nil {
		return "", 0, err
	}
	return claims.SessionID, uid, nil
}

// End forgets the session and expires the cookie.
func (m *Manager) End(ctx context.Context, w http.ResponseWriter, sid string) error {
	err := m.Store.Delete(ctx, sid)
	http.SetCookie(w, &http.Cookie{
		Name:     m.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
