package middleware

import (
	"context"
	"net/http"

	"github.com/Vindyani1999/snaplytics-auth-backend/internal/auth"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/auth/token"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/transport"
)

// unexported, collision-proof context key
type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// IdentityFromContext extracts the verified identity from context.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*auth.Identity)
	return id, ok
}

// AuthMiddleware guards routes with credential verification. It reads
// the token through the active transport strategy and checks it with
// the codec; no server-side session lookup is involved.
type AuthMiddleware struct {
	Codec     *token.Codec
	Transport transport.Strategy
}

func NewAuthMiddleware(codec *token.Codec, strategy transport.Strategy) *AuthMiddleware {
	return &AuthMiddleware{Codec: codec, Transport: strategy}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, ok := a.Transport.Extract(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		identity, err := a.Codec.Verify(tok)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
