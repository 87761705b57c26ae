// Package session holds the server-side session state and its stores. The
// cart lives here: it is owned by exactly one session and dies with it.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/hedibld92/margueritecookie/models"
)

// CookieName is the browser cookie carrying the opaque session id.
const CookieName = "cookie_bliss_session"

// TTL bounds a session's lifetime; every save refreshes it.
const TTL = 24 * time.Hour

// ErrNotFound signals a missing or expired session. Callers start a fresh one.
var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        string       `json:"id"`
	IsAdmin   bool         `json:"isAdmin"`
	Cart      *models.Cart `json:"cart,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

func New(id string) *Session {
	return &Session{
		ID:        id,
		Cart:      models.NewCart(),
		CreatedAt: time.Now(),
	}
}

// Store persists sessions keyed by their opaque id, with TTL-based expiry.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
}
