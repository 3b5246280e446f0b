package financials

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	exchangemocks "github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/exchange/mocks"
	steamdomain "github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam/domain"
	steammocks "github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam/mocks"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

// hoje nos testes: 15 de janeiro de 2024
var testNow = time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Steam: config.Steam{
			FinancialAPIKey: "chave",
		},
		FinancialCache: config.FinancialCache{
			FetchBatchSize: 5,
		},
	}
}

func record(date, country string, gross int64, lastFetched string) *domain.SalesRecord {
	return &domain.SalesRecord{
		Date:          domain.ReportDate(date),
		CountryCode:   country,
		GrossSalesUSD: decimal.NewFromInt(gross),
		NetSalesUSD:   decimal.NewFromInt(gross),
		LastFetched:   domain.ReportDate(lastFetched),
	}
}

func dailySales(date string, records ...*domain.SalesRecord) *domain.DailySales {
	info := make([]*domain.CountryInfo, 0, len(records))
	for _, r := range records {
		info = append(info, &domain.CountryInfo{CountryCode: r.CountryCode, CountryName: r.CountryCode + " name"})
	}
	return &domain.DailySales{
		Date:        domain.ReportDate(date),
		Records:     records,
		CountryInfo: info,
	}
}

func newTestService(ctrl *gomock.Controller, cfg *config.Config) (*Service, *steammocks.MockSteamIntegrator, *mocks.MockSalesCacheRepository) {
	steamMock := steammocks.NewMockSteamIntegrator(ctrl)
	cacheMock := mocks.NewMockSalesCacheRepository(ctrl)
	service := NewService(cfg, steamMock, clockwork.NewFakeClockAt(testNow)).WithCache(cacheMock)
	return service, steamMock, cacheMock
}

func TestService_GetSalesRange(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		dates        []domain.ReportDate
		forceRefresh bool
		setup        func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository)
		validate     func(t *testing.T, result *domain.SalesRange, err error)
	}{
		{
			name:  "Sem datas - retorna vazio sem chamar Steam nem cache",
			dates: []domain.ReportDate{},
			setup: func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository) {},
			validate: func(t *testing.T, result *domain.SalesRange, err error) {
				require.NoError(t, err)
				assert.Empty(t, result.Results)
				assert.Empty(t, result.CountryInfo)
				assert.Equal(t, 0, result.Fetched)
				assert.Equal(t, 0, result.Cached)
			},
		},
		{
			name:  "Data sem cache - busca na Steam e grava no cache",
			dates: []domain.ReportDate{"2024/01/10"},
			setup: func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository) {
				cacheMock.EXPECT().ReadAll(gomock.Any()).Return([]*domain.SalesRecord{}, nil)
				steamMock.EXPECT().
					GetDailySales(gomock.Any(), domain.ReportDate("2024/01/10")).
					Return(dailySales("2024/01/10", record("2024/01/10", "US", 100, "")), nil)
				cacheMock.EXPECT().
					AppendRows(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, records []*domain.SalesRecord) error {
						require.Len(t, records, 1)
						assert.Equal(t, domain.ReportDate("2024/01/15"), records[0].LastFetched)
						assert.Regexp(t, `^fetch-`, records[0].FetchID)
						return nil
					})
			},
			validate: func(t *testing.T, result *domain.SalesRange, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.Fetched)
				assert.Equal(t, 0, result.Cached)
				assert.Equal(t, 0, result.Failed)
				require.Len(t, result.Results, 1)
				assert.Equal(t, domain.ReportDate("2024/01/15"), result.Results[0].LastFetched)
				require.Len(t, result.CountryInfo, 1)
				assert.Equal(t, "US name", result.CountryInfo[0].CountryName)
			},
		},
		{
			name:  "Cache buscado depois da data - usa o cache",
			dates: []domain.ReportDate{"2024/01/10"},
			setup: func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository) {
				cacheMock.EXPECT().ReadAll(gomock.Any()).Return([]*domain.SalesRecord{
					record("2024/01/10", "US", 100, "2024/01/12"),
					record("2024/01/10", "BR", 50, "2024/01/12"),
				}, nil)
			},
			validate: func(t *testing.T, result *domain.SalesRange, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, result.Fetched)
				assert.Equal(t, 1, result.Cached)
				assert.Len(t, result.Results, 2)
				assert.True(t, result.Summary.GrossSales.Equal(decimal.NewFromInt(150)))
			},
		},
		{
			name:  "Cache buscado no próprio dia - busca de novo e descarta o cache antigo",
			dates: []domain.ReportDate{"2024/01/10"},
			setup: func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository) {
				cacheMock.EXPECT().ReadAll(gomock.Any()).Return([]*domain.SalesRecord{
					record("2024/01/10", "US", 10, "2024/01/10"),
				}, nil)
				steamMock.EXPECT().
					GetDailySales(gomock.Any(), domain.ReportDate("2024/01/10")).
					Return(dailySales("2024/01/10", record("2024/01/10", "US", 100, "")), nil)
				cacheMock.EXPECT().AppendRows(gomock.Any(), gomock.Len(1)).Return(nil)
			},
			validate: func(t *testing.T, result *domain.SalesRange, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.Fetched)
				require.Len(t, result.Results, 1)
				assert.True(t, result.Results[0].GrossSalesUSD.Equal(decimal.NewFromInt(100)))
			},
		},
		{
			name:  "Falha em uma data - demais datas continuam",
			dates: []domain.ReportDate{"2024/01/10", "2024/01/11"},
			setup: func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository) {
				cacheMock.EXPECT().ReadAll(gomock.Any()).Return(nil, nil)
				steamMock.EXPECT().
					GetDailySales(gomock.Any(), domain.ReportDate("2024/01/10")).
					Return(nil, steamdomain.ErrUpstream)
				steamMock.EXPECT().
					GetDailySales(gomock.Any(), domain.ReportDate("2024/01/11")).
					Return(dailySales("2024/01/11", record("2024/01/11", "US", 30, "")), nil)
				cacheMock.EXPECT().AppendRows(gomock.Any(), gomock.Len(1)).Return(nil)
			},
			validate: func(t *testing.T, result *domain.SalesRange, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, result.Fetched)
				assert.Equal(t, 1, result.Failed)
				require.Len(t, result.Results, 1)
				assert.Equal(t, domain.ReportDate("2024/01/11"), result.Results[0].Date)
			},
		},
		{
			name:  "Chave recusada - falha a requisição sem gravar cache",
			dates: []domain.ReportDate{"2024/01/10", "2024/01/11"},
			setup: func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository) {
				cacheMock.EXPECT().ReadAll(gomock.Any()).Return(nil, nil)
				steamMock.EXPECT().
					GetDailySales(gomock.Any(), domain.ReportDate("2024/01/10")).
					Return(nil, steamdomain.ErrUnauthorized)
				steamMock.EXPECT().
					GetDailySales(gomock.Any(), domain.ReportDate("2024/01/11")).
					Return(dailySales("2024/01/11", record("2024/01/11", "US", 30, "")), nil)
			},
			validate: func(t *testing.T, result *domain.SalesRange, err error) {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.ErrorIs(t, err, steamdomain.ErrUnauthorized)

				var financialsErr *FinancialsError
				require.ErrorAs(t, err, &financialsErr)
				assert.Equal(t, apiErrors.ErrSteamUnauthorized, financialsErr.Code)
			},
		},
		{
			name:  "Mesma data gravada duas vezes no dia por requisições simultâneas - não duplica",
			dates: []domain.ReportDate{"2024/01/10"},
			setup: func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository) {
				rows := []*domain.SalesRecord{
					record("2024/01/10", "US", 100, "2024/01/14"),
					record("2024/01/10", "BR", 40, "2024/01/14"),
					record("2024/01/10", "US", 100, "2024/01/14"),
					record("2024/01/10", "BR", 40, "2024/01/14"),
				}
				rows[0].FetchID, rows[1].FetchID = "fetch-sync", "fetch-sync"
				rows[2].FetchID, rows[3].FetchID = "fetch-user", "fetch-user"
				cacheMock.EXPECT().ReadAll(gomock.Any()).Return(rows, nil)
			},
			validate: func(t *testing.T, result *domain.SalesRange, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.Cached)
				assert.Len(t, result.Results, 2)
				assert.True(t, result.Summary.GrossSales.Equal(decimal.NewFromInt(140)))
			},
		},
		{
			name:  "Cache indisponível - tratado como vazio",
			dates: []domain.ReportDate{"2024/01/10"},
			setup: func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository) {
				cacheMock.EXPECT().ReadAll(gomock.Any()).Return(nil, repository.ErrCacheUnavailable)
				steamMock.EXPECT().
					GetDailySales(gomock.Any(), gomock.Any()).
					Return(dailySales("2024/01/10", record("2024/01/10", "US", 100, "")), nil)
				cacheMock.EXPECT().AppendRows(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.SalesRange, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.Fetched)
			},
		},
		{
			name:  "Falha ao gravar cache - resposta segue normalmente",
			dates: []domain.ReportDate{"2024/01/10"},
			setup: func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository) {
				cacheMock.EXPECT().ReadAll(gomock.Any()).Return(nil, nil)
				steamMock.EXPECT().
					GetDailySales(gomock.Any(), gomock.Any()).
					Return(dailySales("2024/01/10", record("2024/01/10", "US", 100, "")), nil)
				cacheMock.EXPECT().AppendRows(gomock.Any(), gomock.Any()).Return(repository.ErrCacheUnavailable)
			},
			validate: func(t *testing.T, result *domain.SalesRange, err error) {
				require.NoError(t, err)
				assert.Len(t, result.Results, 1)
			},
		},
		{
			name:         "Refresh forçado - limpa o cache e não lê",
			dates:        []domain.ReportDate{"2024/01/10"},
			forceRefresh: true,
			setup: func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository) {
				cacheMock.EXPECT().ClearAll(gomock.Any()).Return(nil)
				steamMock.EXPECT().
					GetDailySales(gomock.Any(), gomock.Any()).
					Return(dailySales("2024/01/10", record("2024/01/10", "US", 100, "")), nil)
				cacheMock.EXPECT().AppendRows(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.SalesRange, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.Fetched)
			},
		},
		{
			name:  "Datas repetidas e fora de ordem - ordem do pedido e intervalo correto",
			dates: []domain.ReportDate{"2024/01/12", "2024/01/03", "2024/01/12", "2024/01/08"},
			setup: func(steamMock *steammocks.MockSteamIntegrator, cacheMock *mocks.MockSalesCacheRepository) {
				cacheMock.EXPECT().ReadAll(gomock.Any()).Return([]*domain.SalesRecord{
					record("2024/01/03", "US", 1, "2024/01/14"),
					record("2024/01/08", "US", 2, "2024/01/14"),
					record("2024/01/12", "US", 3, "2024/01/14"),
				}, nil)
			},
			validate: func(t *testing.T, result *domain.SalesRange, err error) {
				require.NoError(t, err)
				assert.Equal(t, 3, result.Cached)
				assert.Equal(t, 0, result.Fetched)
				require.Len(t, result.Results, 3)
				assert.Equal(t, domain.ReportDate("2024/01/12"), result.Results[0].Date)
				assert.Equal(t, domain.ReportDate("2024/01/03"), result.Results[1].Date)
				assert.Equal(t, domain.DateRange{From: "2024/01/03", To: "2024/01/12"}, result.DateRange)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, steamMock, cacheMock := newTestService(ctrl, testConfig())
			tt.setup(steamMock, cacheMock)

			result, err := service.GetSalesRange(ctx, tt.dates, tt.forceRefresh)
			tt.validate(t, result, err)
		})
	}
}

func TestService_GetSalesRange_SemChave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Steam.FinancialAPIKey = ""
	service, _, _ := newTestService(ctrl, cfg)

	_, err := service.GetSalesRange(context.Background(), []domain.ReportDate{"2024/01/10"}, false)

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	var financialsErr *FinancialsError
	require.ErrorAs(t, err, &financialsErr)
	assert.Equal(t, apiErrors.ErrMissingConfiguration, financialsErr.Code)
}

func TestService_GetSalesRange_SemCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	steamMock := steammocks.NewMockSteamIntegrator(ctrl)
	service := NewService(testConfig(), steamMock, clockwork.NewFakeClockAt(testNow))

	steamMock.EXPECT().
		GetDailySales(gomock.Any(), gomock.Any()).
		Return(dailySales("2024/01/10", record("2024/01/10", "US", 100, "")), nil)

	result, err := service.GetSalesRange(context.Background(), []domain.ReportDate{"2024/01/10"}, false)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Fetched)
	assert.Len(t, result.Results, 1)
}

func TestService_GetSalesRange_LimiteDeConcorrencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.FinancialCache.FetchBatchSize = 3
	service, steamMock, cacheMock := newTestService(ctrl, cfg)

	dates := []domain.ReportDate{
		"2024/01/01", "2024/01/02", "2024/01/03", "2024/01/04",
		"2024/01/05", "2024/01/06", "2024/01/07",
	}

	var (
		running    int32
		maxRunning int32
		mutex      sync.Mutex
	)

	cacheMock.EXPECT().ReadAll(gomock.Any()).Return(nil, nil)
	steamMock.EXPECT().
		GetDailySales(gomock.Any(), gomock.Any()).
		Times(len(dates)).
		DoAndReturn(func(_ context.Context, date domain.ReportDate) (*domain.DailySales, error) {
			current := atomic.AddInt32(&running, 1)
			mutex.Lock()
			if current > maxRunning {
				maxRunning = current
			}
			mutex.Unlock()

			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&running, -1)

			return dailySales(date.String(), record(date.String(), "US", 1, "")), nil
		})
	cacheMock.EXPECT().AppendRows(gomock.Any(), gomock.Len(len(dates))).Return(nil)

	result, err := service.GetSalesRange(context.Background(), dates, false)

	require.NoError(t, err)
	assert.Equal(t, len(dates), result.Fetched)
	assert.LessOrEqual(t, maxRunning, int32(3))
}

func TestService_GetSalesRange_MesmoFetchIDNaGravacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, steamMock, cacheMock := newTestService(ctrl, testConfig())

	cacheMock.EXPECT().ReadAll(gomock.Any()).Return(nil, nil)
	steamMock.EXPECT().
		GetDailySales(gomock.Any(), domain.ReportDate("2024/01/10")).
		Return(dailySales("2024/01/10", record("2024/01/10", "US", 1, ""), record("2024/01/10", "BR", 2, "")), nil)
	steamMock.EXPECT().
		GetDailySales(gomock.Any(), domain.ReportDate("2024/01/11")).
		Return(dailySales("2024/01/11", record("2024/01/11", "US", 3, "")), nil)

	var written []*domain.SalesRecord
	cacheMock.EXPECT().
		AppendRows(gomock.Any(), gomock.Len(3)).
		DoAndReturn(func(_ context.Context, records []*domain.SalesRecord) error {
			written = records
			return nil
		})

	_, err := service.GetSalesRange(context.Background(), []domain.ReportDate{"2024/01/10", "2024/01/11"}, false)
	require.NoError(t, err)

	require.Len(t, written, 3)
	assert.NotEmpty(t, written[0].FetchID)
	assert.Equal(t, written[0].FetchID, written[1].FetchID)
	assert.Equal(t, written[0].FetchID, written[2].FetchID)
}

func TestService_GetSalesRange_Idempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, cacheMock := newTestService(ctrl, testConfig())

	rows := []*domain.SalesRecord{
		record("2024/01/08", "US", 100, "2024/01/14"),
		record("2024/01/09", "BR", 40, "2024/01/14"),
	}
	cacheMock.EXPECT().ReadAll(gomock.Any()).Return(rows, nil).Times(2)

	dates := []domain.ReportDate{"2024/01/08", "2024/01/09"}
	first, err := service.GetSalesRange(context.Background(), dates, false)
	require.NoError(t, err)
	second, err := service.GetSalesRange(context.Background(), dates, false)
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Fetched+first.Cached, len(dates))
}

func TestService_ListDates(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(steamMock *steammocks.MockSteamIntegrator)
		validate func(t *testing.T, dates []domain.ReportDate, err error)
	}{
		{
			name: "Lista as datas da Steam",
			setup: func(steamMock *steammocks.MockSteamIntegrator) {
				steamMock.EXPECT().ListChangedDates(gomock.Any()).Return([]domain.ReportDate{"2024/01/01", "2024/01/02"}, nil)
			},
			validate: func(t *testing.T, dates []domain.ReportDate, err error) {
				require.NoError(t, err)
				assert.Equal(t, []domain.ReportDate{"2024/01/01", "2024/01/02"}, dates)
			},
		},
		{
			name: "Chave recusada - STEAM_001",
			setup: func(steamMock *steammocks.MockSteamIntegrator) {
				steamMock.EXPECT().ListChangedDates(gomock.Any()).Return(nil, steamdomain.ErrUnauthorized)
			},
			validate: func(t *testing.T, dates []domain.ReportDate, err error) {
				assert.Nil(t, dates)
				assert.ErrorIs(t, err, steamdomain.ErrUnauthorized)
				var financialsErr *FinancialsError
				require.ErrorAs(t, err, &financialsErr)
				assert.Equal(t, apiErrors.ErrSteamUnauthorized, financialsErr.Code)
			},
		},
		{
			name: "Erro da Steam - SRV_003",
			setup: func(steamMock *steammocks.MockSteamIntegrator) {
				steamMock.EXPECT().ListChangedDates(gomock.Any()).Return(nil, &steamdomain.StatusError{StatusCode: 500})
			},
			validate: func(t *testing.T, dates []domain.ReportDate, err error) {
				assert.ErrorIs(t, err, steamdomain.ErrUpstream)
				var financialsErr *FinancialsError
				require.ErrorAs(t, err, &financialsErr)
				assert.Equal(t, apiErrors.ErrExternalService, financialsErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, steamMock, _ := newTestService(ctrl, testConfig())
			tt.setup(steamMock)

			dates, err := service.ListDates(context.Background())
			tt.validate(t, dates, err)
		})
	}
}

func TestService_ConvertSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := exchangemocks.NewMockRateProvider(ctrl)
	service := NewService(testConfig(), nil, clockwork.NewFakeClockAt(testNow)).WithExchange(rates)

	summary := &domain.RevenueSummary{
		FinalPayout:  decimal.NewFromInt(100),
		DailyAverage: decimal.NewFromInt(10),
	}

	rates.EXPECT().GetRate(gomock.Any(), "USD", "INR").Return(decimal.NewFromInt(83), nil)

	require.NoError(t, service.ConvertSummary(context.Background(), summary, "inr"))
	require.NotNil(t, summary.Converted)
	assert.Equal(t, "INR", summary.Converted.Currency)
	assert.True(t, summary.Converted.FinalPayout.Equal(decimal.NewFromInt(8300)))
	assert.True(t, summary.Converted.DailyAverage.Equal(decimal.NewFromInt(830)))

	t.Run("Falha na cotação", func(t *testing.T) {
		other := &domain.RevenueSummary{}
		rates.EXPECT().GetRate(gomock.Any(), "USD", "EUR").Return(decimal.Zero, errors.New("offline"))
		assert.Error(t, service.ConvertSummary(context.Background(), other, "EUR"))
		assert.Nil(t, other.Converted)
	})

	t.Run("USD não converte", func(t *testing.T) {
		other := &domain.RevenueSummary{}
		assert.NoError(t, service.ConvertSummary(context.Background(), other, "USD"))
		assert.Nil(t, other.Converted)
	})
}
