package financials

import (
	"strings"

	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/utils"
)

// SelectPeriod escolhe, entre as datas disponíveis (em ordem crescente), as que
// pertencem ao período. A data mais recente ainda está incompleta e fica fora
// dos atalhos de semana, quinzena e mês.
func SelectPeriod(available []domain.ReportDate, filter domain.PeriodFilter) ([]domain.ReportDate, error) {
	dates := make([]domain.ReportDate, len(available))
	copy(dates, available)
	domain.SortReportDates(dates)

	period := domain.Period(strings.ToLower(strings.TrimSpace(string(filter.Period))))

	switch period {
	case domain.PeriodLatest:
		if len(dates) == 0 {
			return []domain.ReportDate{}, nil
		}
		return dates[len(dates)-1:], nil

	case domain.PeriodYesterday:
		if len(dates) < 2 {
			return []domain.ReportDate{}, nil
		}
		return dates[len(dates)-2 : len(dates)-1], nil

	case domain.PeriodWeek, domain.PeriodTwoWeeks, domain.PeriodMonth:
		if len(dates) < 2 {
			return []domain.ReportDate{}, nil
		}
		complete := dates[:len(dates)-1]
		n := domain.PeriodLength[period]
		if n > len(complete) {
			n = len(complete)
		}
		return complete[len(complete)-n:], nil

	case domain.PeriodAll:
		return dates, nil

	case domain.PeriodCustom:
		return selectCustom(dates, filter.From, filter.To)
	}

	return nil, NewFinancialsError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, "Período desconhecido: "+string(filter.Period))
}

func selectCustom(dates []domain.ReportDate, fromValue, toValue string) ([]domain.ReportDate, error) {
	from, err := utils.ParseDate(fromValue)
	if err != nil {
		return nil, NewFinancialsError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "from deve estar no formato YYYY-MM-DD")
	}

	to, err := utils.ParseDate(toValue)
	if err != nil {
		return nil, NewFinancialsError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "to deve estar no formato YYYY-MM-DD")
	}

	if from == nil && to == nil {
		return nil, NewFinancialsError(ErrMissingDates, apiErrors.ErrMissingRequiredData, "Informe from e/ou to para o período custom")
	}

	if from != nil && to != nil && from.After(*to) {
		return nil, NewFinancialsError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, "from deve ser anterior a to")
	}

	selected := make([]domain.ReportDate, 0)
	for _, date := range dates {
		if from != nil && date < domain.FormatReportDate(*from) {
			continue
		}
		if to != nil && date > domain.FormatReportDate(*to) {
			continue
		}
		selected = append(selected, date)
	}

	return selected, nil
}
