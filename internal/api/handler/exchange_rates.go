package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/exchange"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

func GetExchangeRate(provider exchange.RateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		from := strings.ToUpper(strings.TrimSpace(query.Get("from")))
		if from == "" {
			from = "USD"
		}
		to := strings.ToUpper(strings.TrimSpace(query.Get("to")))
		if to == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe a moeda de destino (to)", nil)
			return
		}

		rate, err := provider.GetRate(r.Context(), from, to)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("exchange: erro ao consultar cotação")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar cotação", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"from": from,
			"to":   to,
			"rate": rate,
		})
	}
}
