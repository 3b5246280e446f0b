package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/financials"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

const (
	financialsActionDates = "dates"
	financialsActionRange = "range"
)

// GetFinancials atende a tela de finanças: lista de datas ou relatório consolidado
func GetFinancials(service financials.FinancialsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		action := strings.ToLower(strings.TrimSpace(query.Get("action")))
		if action == "" {
			action = financialsActionDates
		}

		switch action {
		case financialsActionDates:
			dates, err := service.ListDates(r.Context())
			if err != nil {
				writeFinancialsError(w, r, err, "Erro ao listar datas")
				return
			}
			if dates == nil {
				dates = []domain.ReportDate{}
			}
			writeJSON(w, http.StatusOK, map[string]any{"dates": dates})

		case financialsActionRange:
			getSalesRange(w, r, service)

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Ação inválida. Valores aceitos: dates, range", nil)
		}
	}
}

func getSalesRange(w http.ResponseWriter, r *http.Request, service financials.FinancialsService) {
	ctx := r.Context()
	query := r.URL.Query()

	dates := parseDates(query.Get("dates"))
	period := strings.TrimSpace(query.Get("period"))

	if len(dates) == 0 && period == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe dates ou period", nil)
		return
	}

	if len(dates) == 0 {
		resolved, err := service.ResolvePeriod(ctx, domain.PeriodFilter{
			Period: domain.Period(period),
			From:   query.Get("from"),
			To:     query.Get("to"),
		})
		if err != nil {
			writeFinancialsError(w, r, err, "Erro ao resolver o período")
			return
		}
		dates = resolved
	}

	result, err := service.GetSalesRange(ctx, dates, isRefresh(r))
	if err != nil {
		writeFinancialsError(w, r, err, "Erro ao consolidar relatórios")
		return
	}

	if currency := query.Get("currency"); currency != "" && result.Summary != nil {
		if err := service.ConvertSummary(ctx, result.Summary, currency); err != nil {
			log.ForContext(ctx).WithError(err).Warn("financials: conversão de moeda indisponível, resumo em USD")
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func parseDates(value string) []domain.ReportDate {
	dates := make([]domain.ReportDate, 0)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dates = append(dates, domain.ReportDate(part))
	}
	return dates
}

func writeFinancialsError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var financialsErr *financials.FinancialsError
	if errors.As(err, &financialsErr) {
		log.ForContext(r.Context()).WithError(err).Warn("financials: requisição recusada")
		apiErrors.WriteError(w, financialsErr.Code, financialsErr.Details, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("financials: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
