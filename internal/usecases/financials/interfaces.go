package financials

import (
	"context"

	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
)

// DateLister lista as datas com relatório disponível
type DateLister interface {
	ListDates(ctx context.Context) ([]domain.ReportDate, error)
}

// SalesRanger consolida os relatórios de um conjunto de datas usando o cache
type SalesRanger interface {
	GetSalesRange(ctx context.Context, dates []domain.ReportDate, forceRefresh bool) (*domain.SalesRange, error)
}

// FinancialsService é a interface completa usada pelos handlers
type FinancialsService interface {
	DateLister
	SalesRanger

	// ResolvePeriod converte um atalho de período em datas disponíveis
	ResolvePeriod(ctx context.Context, filter domain.PeriodFilter) ([]domain.ReportDate, error)

	// ConvertSummary acrescenta ao resumo o repasse na moeda pedida
	ConvertSummary(ctx context.Context, summary *domain.RevenueSummary, currency string) error
}
