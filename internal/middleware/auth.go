package middleware

import (
	"context"
	"net/http"

	"github.com/cardmart/cardmart/internal/models"
	"github.com/cardmart/cardmart/internal/service"
)

type contextKey int

const (
	contextKeyPayload contextKey = iota
)

// Auth gets the token from the cookie and stores its payload in the context
func Auth(ts service.TokenService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("auth_token")
			if err != nil {
				http.Error(w, "can not get cookie", http.StatusUnauthorized)
				return
			}

			payload, err := ts.VerifyToken(cookie.Value)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyPayload, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PayloadFromContext extracts the verified token payload from ctx
func PayloadFromContext(ctx context.Context) (*models.TokenPayload, bool) {
	payload, ok := ctx.Value(contextKeyPayload).(*models.TokenPayload)
	return payload, ok
}

// AdminAuthorizer approves operations for callers whose verified token
// payload carries the admin flag.
type AdminAuthorizer struct{}

// Authorize implements service.Authorizer
func (AdminAuthorizer) Authorize(ctx context.Context) error {
	payload, ok := PayloadFromContext(ctx)
	if !ok || !payload.IsAdmin {
		return models.ErrUnauthorized
	}
	return nil
}
