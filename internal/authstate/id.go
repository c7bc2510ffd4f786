package authstate

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateState generates a cryptographically secure correlation token.
// 32 bytes = 256 bits of entropy.
func GenerateState() (string, error) {

	const size = 32 // 256 bits

	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("authstate: failed to generate state: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
