package handler

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

// HealthcheckHandler responde sem tocar em Steam ou Google
func HealthcheckHandler(clock clockwork.Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   clock.Now().UTC().Format(time.RFC3339),
		})
	})
}
