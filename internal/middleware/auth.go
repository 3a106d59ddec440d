package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

type CtxKey int

const (
	CtxGameClaims CtxKey = iota
)

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
		return token, true
	}
	if cookie, err := r.Cookie(config.TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return "", false
}

// Auth puts the game claims of a valid token into the request context.
// Requests without a valid token pass through untouched; handlers decide
// whether they need one.
func Auth(log logrus.FieldLogger, tokens *config.Tokens) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				h.ServeHTTP(w, r)
				return
			}
			claims, err := tokens.Parse(token)
			if err != nil {
				log.WithError(err).Debug("rejected game token")
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxGameClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GameClaims returns the claims Auth stored in ctx, if any.
func GameClaims(ctx context.Context) (*config.GameClaims, bool) {
	claims, ok := ctx.Value(CtxGameClaims).(*config.GameClaims)
	return claims, ok
}
