package handler

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/Vindyani1999/snaplytics-auth-backend/internal/utils"
)

// generatePKCE produces a code verifier and its S256 challenge. The
// verifier travels server-side inside the transient correlation
// session, never to the browser.
func generatePKCE() (verifier string, challenge string) {
	verifier = utils.RandomString(32)

	hash := sha256.Sum256([]byte(verifier))
	challenge = base64.RawURLEncoding.EncodeToString(hash[:])

	return verifier, challenge
}
