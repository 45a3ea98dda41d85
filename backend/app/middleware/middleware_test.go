package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtutil "recipe-vault/backend/app/jwt"
	"recipe-vault/backend/app/session"
	"recipe-vault/backend/global"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"), "keys are limited independently")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.Allow("a")
	now = now.Add(2 * visitorIdle)
	rl.Allow("b")
	_, ok := rl.visitors["a"]
	assert.False(t, ok)
}

func TestDisabledRateLimiterPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })
	var nilLimiter *RateLimiter
	for _, h := range []http.Handler{nilLimiter.Limit("/x", next), NewRateLimiter(0, 1).Limit("/x", next)} {
		for i := 0; i < 5; i++ {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/x", nil))
			assert.Equal(t, http.StatusTeapot, rec.Code)
		}
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", clientIP(r))
	r.RemoteAddr = "weird"
	assert.Equal(t, "weird", clientIP(r))
}

type failingStore struct{ session.Store }

func (failingStore) Get(context.Context, string) (uint, error) {
	return 0, errors.New("store down")
}

func TestRequireSession(t *testing.T) {
	signer := &jwtutil.Signer{Secret: []byte("k"), Issuer: "t", TTL: time.Hour}
	sessions := session.NewManager(session.NewMemoryStore(), signer, "session", time.Hour, false)
	auth := &Auth{Sessions: sessions}

	var gotUID uint
	h := auth.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotUID, _ = GetSession(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recipes", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["error"])

	start := httptest.NewRecorder()
	_, err := sessions.Start(context.Background(), start, 9)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	for _, c := range start.Result().Cookies() {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 9, gotUID)

	broken := &Auth{Sessions: session.NewManager(failingStore{}, signer, "session", time.Hour, false)}
	rec = httptest.NewRecorder()
	broken.RequireSession(http.NotFoundHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetSessionWithoutMiddleware(t *testing.T) {
	_, _, ok := GetSession(context.Background())
	assert.False(t, ok)
}

func TestLoggingRecordsRouteAndStatus(t *testing.T) {
	var buf bytes.Buffer
	prev := global.Logger
	global.Logger = zerolog.New(&buf)
	t.Cleanup(func() { global.Logger = prev })

	inner := WithRoute("POST /recipes", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	rec := httptest.NewRecorder()
	Logging(Metrics(inner)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recipes", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "POST /recipes", entry["route"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.Equal(t, "/recipes", entry["path"])
}
