// Package transport decides how an issued credential reaches the client
// and how a later request presents it back for verification. The two
// historical delivery modes (cookie vs. URL parameter) are modeled as
// interchangeable strategies selected once at startup, not as branches
// scattered through route handlers.
package transport

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Vindyani1999/snaplytics-auth-backend/internal/config"
)

// successPath is the frontend route the login flow lands on.
const successPath = "/auth/success"

// Strategy is implemented by each delivery mode.
type Strategy interface {
	// Deliver attaches the credential to the response and returns the
	// URL the post-login redirect should target.
	Deliver(w http.ResponseWriter, token string) (redirectURL string)

	// Extract reads the credential from an inbound request.
	Extract(r *http.Request) (token string, ok bool)

	// Clear removes any client-held credential this strategy manages.
	Clear(w http.ResponseWriter)
}

// New returns the strategy for the configured delivery mode.
func New(mode, frontendURL string, secure bool) (Strategy, error) {
	switch mode {
	case config.DeliveryCookie:
		return NewCookieStrategy(frontendURL, secure), nil
	case config.DeliveryQuery:
		return NewQueryStrategy(frontendURL), nil
	default:
		return nil, fmt.Errorf("transport: unknown delivery mode %q", mode)
	}
}

// bearerToken reads an Authorization: Bearer header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}
