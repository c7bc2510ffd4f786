package transport

import (
	"net/http"
	"net/url"
)

// QueryStrategy appends the credential to the post-login redirect as a
// query parameter. The client persists it (e.g. local storage) and
// presents it back via the Authorization header; the server never sets
// a credential cookie in this mode.
type QueryStrategy struct {
	successURL string
}

func NewQueryStrategy(frontendURL string) *QueryStrategy {
	return &QueryStrategy{successURL: frontendURL + successPath}
}

func (s *QueryStrategy) Deliver(_ http.ResponseWriter, tok string) string {
	u, err := url.Parse(s.successURL)
	if err != nil {
		// successURL is validated config; fall back to raw concatenation
		return s.successURL + "?token=" + url.QueryEscape(tok)
	}
	q := u.Query()
	q.Set("token", tok)
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *QueryStrategy) Extract(r *http.Request) (string, bool) {
	return bearerToken(r)
}

// Clear is a no-op: the credential lives in client-side storage the
// server cannot reach.
func (s *QueryStrategy) Clear(http.ResponseWriter) {}
