package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/authorizing"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// publicPaths dispensam o token de sessão
var publicPaths = map[string]struct{}{
	"/healthcheck":            {},
	"/v1/auth/allowed-emails": {},
}

func AuthMiddleware(authService authorizing.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok || authService.Disabled() {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("auth: token recusado")

				var authErr *authorizing.AuthError
				if errors.As(err, &authErr) {
					apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			if holder, ok := r.Context().Value(contextKeyRequestUser).(*requestUser); ok {
				holder.claims = claims
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
