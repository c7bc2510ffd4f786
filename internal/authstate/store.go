package authstate

import (
	"context"
	"time"
)

// TTL bounds how long a login attempt may sit between the initial
// redirect and the provider callback.
const TTL = 10 * time.Minute

// Session is the transient server-side state correlating a login's
// start request with its eventual provider callback. It is keyed by
// the opaque state value embedded in the authorization URL and is
// destroyed the first time it is consumed or when it expires,
// whichever comes first.
type Session struct {
	State        string    // correlation token, also the store key
	PKCEVerifier string    // code_verifier for the token exchange
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Store holds in-flight login attempts. Implementations must support
// safe concurrent Create and Consume.
type Store interface {
	Create(ctx context.Context, s Session) error

	// Consume redeems the session for the given state exactly once.
	// A missing, already-consumed or expired session yields (nil, nil).
	Consume(ctx context.Context, state string) (*Session, error)
}
