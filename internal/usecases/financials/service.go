package financials

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/exchange"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam"
	steamdomain "github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam/domain"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
	"github.com/vfg2006/publisher-dashboard-api/pkg/utils"
)

const (
	defaultFetchBatchSize = 5
	baseCurrency          = "USD"
)

var ErrExchangeNotConfigured = errors.New("exchange rate provider not configured")

// Service consolida os relatórios financeiros da Steam com o cache externo
type Service struct {
	cfg      *config.Config
	steam    steam.SteamIntegrator
	cache    repository.SalesCacheRepository
	exchange exchange.RateProvider
	clock    clockwork.Clock
	useCache bool
}

var _ FinancialsService = (*Service)(nil)

// NewService cria o serviço sem cache; use WithCache para habilitar
func NewService(cfg *config.Config, steamIntegrator steam.SteamIntegrator, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		cfg:      cfg,
		steam:    steamIntegrator,
		clock:    clock,
		useCache: false,
	}
}

// WithCache habilita o cache de relatórios
func (s *Service) WithCache(cache repository.SalesCacheRepository) *Service {
	s.cache = cache
	s.useCache = cache != nil
	return s
}

// WithExchange habilita a conversão de moeda do resumo
func (s *Service) WithExchange(provider exchange.RateProvider) *Service {
	s.exchange = provider
	return s
}

func (s *Service) batchSize() int {
	if s.cfg.FinancialCache.FetchBatchSize > 0 {
		return s.cfg.FinancialCache.FetchBatchSize
	}
	return defaultFetchBatchSize
}

func (s *Service) checkAPIKey() error {
	if strings.TrimSpace(s.cfg.Steam.FinancialAPIKey) == "" {
		return NewFinancialsError(ErrMissingAPIKey, apiErrors.ErrMissingConfiguration, "Configure STEAM_FINANCIAL_API_KEY")
	}
	return nil
}

// ListDates retorna as datas com relatório disponível, em ordem crescente
func (s *Service) ListDates(ctx context.Context) ([]domain.ReportDate, error) {
	if err := s.checkAPIKey(); err != nil {
		return nil, err
	}

	dates, err := s.steam.ListChangedDates(ctx)
	if err != nil {
		if errors.Is(err, steamdomain.ErrUnauthorized) {
			return nil, NewFinancialsError(err, apiErrors.ErrSteamUnauthorized, "Chave da Financial API recusada pela Steam")
		}
		return nil, NewFinancialsError(err, apiErrors.ErrExternalService, "Falha ao listar datas na Steam")
	}

	return dates, nil
}

// GetSalesRange devolve os registros das datas pedidas. Datas com cache confiável
// vêm do cache; as demais são buscadas na Steam em lotes e gravadas de volta.
func (s *Service) GetSalesRange(ctx context.Context, dates []domain.ReportDate, forceRefresh bool) (*domain.SalesRange, error) {
	requested := domain.UniqueReportDates(dates)
	if len(requested) == 0 {
		return domain.NewEmptySalesRange(), nil
	}

	if err := s.checkAPIKey(); err != nil {
		return nil, err
	}

	today := domain.FormatReportDate(s.clock.Now())
	entries := s.loadCache(ctx, forceRefresh, today)

	datesToFetch := make([]domain.ReportDate, 0, len(requested))
	for _, date := range requested {
		entry, cached := entries[date]
		if !cached || NeedsFetch(date, entry.LastFetched) {
			datesToFetch = append(datesToFetch, date)
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dates":          len(requested),
		"dates_to_fetch": len(datesToFetch),
		"force_refresh":  forceRefresh,
	}).Info("financials: reconciliando datas")

	fetched, failed, err := s.fetchDates(ctx, datesToFetch, today)
	if err != nil {
		return nil, err
	}

	s.writeBack(ctx, datesToFetch, fetched)

	return assemble(requested, datesToFetch, entries, fetched, failed), nil
}

// loadCache lê o cache e agrupa por data. Falhas de leitura equivalem a cache vazio.
func (s *Service) loadCache(ctx context.Context, forceRefresh bool, today domain.ReportDate) map[domain.ReportDate]*domain.CacheEntry {
	entries := make(map[domain.ReportDate]*domain.CacheEntry)
	if !s.useCache {
		return entries
	}

	logger := log.ForContext(ctx)

	if forceRefresh {
		if err := s.cache.ClearAll(ctx); err != nil {
			logger.WithError(err).Warn("financials: falha ao limpar o cache")
		}
		return entries
	}

	rows, err := s.cache.ReadAll(ctx)
	if err != nil {
		logger.WithError(err).Warn("financials: cache indisponível, buscando tudo na Steam")
		return entries
	}

	return GroupCacheEntries(rows, today)
}

// fetchDates busca as datas em ondas sequenciais de até batchSize chamadas concorrentes.
// Uma data com erro não gera registros; chave recusada interrompe a requisição ao fim da onda.
func (s *Service) fetchDates(ctx context.Context, dates []domain.ReportDate, today domain.ReportDate) (map[domain.ReportDate]*domain.DailySales, int, error) {
	results := make(map[domain.ReportDate]*domain.DailySales, len(dates))
	failed := 0
	size := s.batchSize()
	logger := log.ForContext(ctx)

	for start := 0; start < len(dates); start += size {
		batch := dates[start:min(start+size, len(dates))]

		sales := make([]*domain.DailySales, len(batch))
		errs := make([]error, len(batch))

		var wg sync.WaitGroup
		for i, date := range batch {
			wg.Add(1)
			go func(i int, date domain.ReportDate) {
				defer wg.Done()
				sales[i], errs[i] = s.steam.GetDailySales(ctx, date)
			}(i, date)
		}
		wg.Wait()

		unauthorized := false
		for i, date := range batch {
			if errs[i] != nil {
				failed++
				if errors.Is(errs[i], steamdomain.ErrUnauthorized) {
					unauthorized = true
				}
				logger.WithError(errs[i]).WithFields(log.Fields{
					"date":  date,
					"batch": start / size,
				}).Warn("financials: falha ao buscar data na Steam")
				continue
			}

			day := sales[i]
			if day == nil {
				day = &domain.DailySales{Date: date}
			}
			for _, record := range day.Records {
				record.LastFetched = today
			}
			results[date] = day
		}

		if unauthorized {
			return nil, failed, NewFinancialsError(steamdomain.ErrUnauthorized, apiErrors.ErrSteamUnauthorized, "Chave da Financial API recusada pela Steam")
		}
	}

	return results, failed, nil
}

// writeBack grava os registros novos no cache com um FetchID próprio, para que duas
// gravações seguidas da mesma data não se fundam na leitura. Falhas são apenas registradas.
func (s *Service) writeBack(ctx context.Context, dates []domain.ReportDate, fetched map[domain.ReportDate]*domain.DailySales) {
	if !s.useCache {
		return
	}

	records := make([]*domain.SalesRecord, 0)
	for _, date := range dates {
		if day, ok := fetched[date]; ok {
			records = append(records, day.Records...)
		}
	}

	if len(records) == 0 {
		return
	}

	fetchID, err := utils.NewRunID("fetch")
	if err != nil {
		fetchID = fmt.Sprintf("fetch-%d", s.clock.Now().UnixNano())
	}
	for _, record := range records {
		record.FetchID = fetchID
	}

	if err := s.cache.AppendRows(ctx, records); err != nil {
		log.ForContext(ctx).WithError(err).WithField("rows", len(records)).Warn("financials: falha ao gravar o cache")
	}
}

// ConvertSummary acrescenta o repasse convertido de USD para a moeda pedida
func (s *Service) ConvertSummary(ctx context.Context, summary *domain.RevenueSummary, currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if summary == nil || currency == "" || currency == baseCurrency {
		return nil
	}

	if s.exchange == nil {
		return ErrExchangeNotConfigured
	}

	rate, err := s.exchange.GetRate(ctx, baseCurrency, currency)
	if err != nil {
		return err
	}

	summary.Convert(currency, rate)
	return nil
}

// ResolvePeriod converte o atalho de período nas datas disponíveis na Steam
func (s *Service) ResolvePeriod(ctx context.Context, filter domain.PeriodFilter) ([]domain.ReportDate, error) {
	available, err := s.ListDates(ctx)
	if err != nil {
		return nil, err
	}

	return SelectPeriod(available, filter)
}
