package session

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound means the session id is unknown, expired or already ended.
	ErrNotFound = errors.New("session not found")
	// ErrNoSession means the request carried no usable session cookie.
	ErrNoSession = errors.New("no session")
)

// Store maps an opaque session id to a user id.
type Store interface {
	Put(ctx context.Context, id string, userID uint, ttl time.Duration) error
	Get(ctx context.Context, id string) (uint, error)
	Delete(ctx context.Context, id string) error
}
