package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/steamstats"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

func GetSteamStats(service steamstats.SteamStatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()

		action := strings.ToLower(strings.TrimSpace(query.Get("action")))
		switch action {
		case "", "stats":
			stats, err := service.GetStats(ctx)
			if err != nil {
				writeSteamStatsError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, stats)

		case "reviews":
			page, err := service.GetReviews(ctx, query.Get("cursor"))
			if err != nil {
				writeSteamStatsError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, page)

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Ação inválida. Valores aceitos: stats, reviews", nil)
		}
	}
}

func writeSteamStatsError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, steamstats.ErrMissingAppID) {
		apiErrors.WriteError(w, apiErrors.ErrMissingConfiguration, "STEAM_APP_ID não configurado", nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("steam: erro ao consultar estatísticas")
	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar a Steam", nil)
}
