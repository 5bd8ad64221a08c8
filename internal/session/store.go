package session

import (
	"context"
	"errors"
	"time"

	"todolist_api/internal/domain"

	"github.com/google/uuid"
)

// TTL is the fixed session lifetime. Expiry is counted from creation,
// not from last activity.
const TTL = 24 * time.Hour

var ErrNoSession = errors.New("no session")

// Store maps opaque tokens to logged-in user summaries.
type Store interface {
	// Create allocates a new token for the given user.
	Create(ctx context.Context, user domain.SessionUser) (string, error)
	// Resolve returns the user behind a token, or ErrNoSession if the
	// token is unknown or expired.
	Resolve(ctx context.Context, token string) (*domain.SessionUser, error)
	// Destroy removes the token. Destroying an unknown token is not an
	// error.
	Destroy(ctx context.Context, token string) error
}

func newToken() string {
	return uuid.NewString()
}
