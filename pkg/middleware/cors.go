package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
}

// Cors libera o painel nas origens configuradas. O preflight responde 200 sem chegar
// ao AuthMiddleware.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	origins := make([]string, 0, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin = strings.TrimRight(strings.TrimSpace(origin), "/"); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With", CorrelationIDHeader},
		ExposedHeaders:   []string{CorrelationIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	})
}
