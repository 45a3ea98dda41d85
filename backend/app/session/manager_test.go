package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtutil "recipe-vault/backend/app/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *Manager {
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
	return NewManager(NewMemoryStore(), signer, "", time.Hour, false)
}

func requestWith(cookies []*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/check_session", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestManagerLifecycle(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	rec := httptest.NewRecorder()
	sid, err := m.Start(ctx, rec, 42)
	require.NoError(t, err)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, DefaultCookieName, c.Name)
	assert.True(t, c.HttpOnly)
	assert.NotContains(t, c.Value, "42")

	gotSID, uid, err := m.Resolve(requestWith(cookies))
	require.NoError(t, err)
	assert.Equal(t, sid, gotSID)
	assert.EqualValues(t, 42, uid)

	out := httptest.NewRecorder()
	require.NoError(t, m.End(ctx, out, sid))
	expired := out.Result().Cookies()
	require.Len(t, expired, 1)
	assert.Less(t, expired[0].MaxAge, 0)

	_, _, err = m.Resolve(requestWith(cookies))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerRejectsMissingOrForgedCookie(t *testing.T) {
	m := newManager()

	_, _, err := m.Resolve(requestWith(nil))
	assert.ErrorIs(t, err, ErrNoSession)

	_, _, err = m.Resolve(requestWith([]*http.Cookie{{Name: DefaultCookieName, Value: "garbage"}}))
	assert.ErrorIs(t, err, ErrNoSession)

	other := &jwtutil.Signer{Secret: []byte("other-secret"), Issuer: "test", TTL: time.Hour}
	forged, err := other.Sign("some-session")
	require.NoError(t, err)
	_, _, err = m.Resolve(requestWith([]*http.Cookie{{Name: DefaultCookieName, Value: forged}}))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManagerSessionsAreIndependent(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	first := httptest.NewRecorder()
	sid1, err := m.Start(ctx, first, 1)
	require.NoError(t, err)
	second := httptest.NewRecorder()
	_, err = m.Start(ctx, second, 2)
	require.NoError(t, err)

	require.NoError(t, m.End(ctx, httptest.NewRecorder(), sid1))

	_, uid, err := m.Resolve(requestWith(second.Result().Cookies()))
	require.NoError(t, err)
	assert.EqualValues(t, 2, uid)
}
