package transport

import (
	"net/http"

	"github.com/Vindyani1999/snaplytics-auth-backend/internal/auth/token"
)

// CookieName carries the issued credential in cookie mode.
const CookieName = "auth_token"

// CookieStrategy delivers the credential as an HTTP-only, SameSite=Lax
// cookie scoped to the whole site. Extraction prefers the cookie but
// accepts a bearer header so API clients work in either mode.
type CookieStrategy struct {
	successURL string
	secure     bool
}

// NewCookieStrategy builds the cookie strategy. secure should reflect
// whether the service runs behind trusted transport (HTTPS).
func NewCookieStrategy(frontendURL string, secure bool) *CookieStrategy {
	return &CookieStrategy{
		successURL: frontendURL + successPath,
		secure:     secure,
	}
}

func (s *CookieStrategy) Deliver(w http.ResponseWriter, tok string) string {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(token.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return s.successURL
}

func (s *CookieStrategy) Extract(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return bearerToken(r)
}

func (s *CookieStrategy) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
