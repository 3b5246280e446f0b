package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/database/sqlite"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/exchange"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/google/publishedsheet"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/google/sheetsclient"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam/steamclient"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/publisher-dashboard-api/internal/api"
	"github.com/vfg2006/publisher-dashboard-api/internal/api/handler"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	"github.com/vfg2006/publisher-dashboard-api/internal/scheduler"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/authorizing"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/financials"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/sheetdata"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/steamstats"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/utmlinks"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// APP_ENV já foi exportado pela config; o formato depende dele
	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewRealClock()

	steamClient := steamclient.NewClient(cfg)
	steamIntegrator := steam.New(cfg, steamClient)

	tokenManager := sheetsclient.NewTokenManager(cfg, clock)
	sheetsClient := sheetsclient.NewClient(cfg, tokenManager)
	if !cfg.Google.HasCredentials() {
		logrus.Warn("Conta de serviço do Google não configurada: cache do financeiro e links UTM indisponíveis")
	}

	exchangeClient := exchange.NewClient(cfg)

	// Serviço financeiro com o cache escolhido por FINANCIAL_CACHE_BACKEND
	financialsService := financials.NewService(cfg, steamIntegrator, clock).WithExchange(exchangeClient)
	if salesCache, closeCache := salesCacheRepository(ctx, cfg, sheetsClient); salesCache != nil {
		defer closeCache()
		financialsService = financialsService.WithCache(salesCache)
	}

	steamStatsService := steamstats.NewService(cfg, steamIntegrator, clock)

	sheetDataService := sheetdata.NewService(cfg, publishedsheet.NewClient(), clock)
	authorizer := authorizing.NewService(cfg, sheetDataService, clock)
	if authorizer.Disabled() {
		logrus.Warn("AUTH_DISABLED=true: rotas sem verificação de sessão")
	}

	utmLinkService := utmlinks.NewService(
		repository.NewUTMLinkRepository(sheetsClient, cfg.UTMLinks.SheetID, cfg.UTMLinks.Range),
	)

	// Inicializa os agendadores
	financialsSyncService := scheduler.NewFinancialsSyncService(financialsService, cfg, clock)
	sheetsWarmupService := scheduler.NewSheetsWarmupService(sheetDataService, cfg, clock)

	if err := financialsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do financeiro")
	} else {
		logrus.Info("Agendador de sincronização do financeiro iniciado com sucesso")
	}

	if err := sheetsWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de planilhas")
	} else {
		logrus.Info("Agendador de planilhas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Financials: financialsService,
		SteamStats: steamStatsService,
		SheetData:  sheetDataService,
		UTMLinks:   utmLinkService,
		Exchange:   exchangeClient,
		Authorizer: authorizer,
		CronServices: handler.CronJobServices{
			FinancialsSyncService: financialsSyncService,
			SheetsWarmupService:   sheetsWarmupService,
		},
	}, clock)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// salesCacheRepository monta o cache de vendas. Sem cache o serviço busca tudo na Steam.
func salesCacheRepository(ctx context.Context, cfg *config.Config, sheetsClient sheetsclient.Client) (repository.SalesCacheRepository, func()) {
	noop := func() {}

	switch cfg.FinancialCache.Backend {
	case config.CacheBackendSheets:
		if !cfg.Google.HasCredentials() || cfg.FinancialCache.SheetID == "" {
			logrus.Warn("Cache do financeiro em planilha sem credenciais ou FINANCIAL_CACHE_SHEET_ID, seguindo sem cache")
			return nil, noop
		}
		logrus.WithField("sheet_name", cfg.FinancialCache.SheetName).Info("Cache do financeiro em Google Sheets")
		return repository.NewSalesCacheSheetRepository(sheetsClient, cfg.FinancialCache.SheetID, cfg.FinancialCache.SheetName), noop

	case config.CacheBackendPostgres:
		conn := pgconn(ctx, cfg.Database)
		repo := repository.NewSalesCachePostgresRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar a tabela do cache do financeiro")
		}
		logrus.Info("Cache do financeiro em PostgreSQL")
		return repo, func() { conn.Close() }

	case config.CacheBackendSQLite:
		conn, err := sqlite.NewConnection(ctx, cfg.FinancialCache.SQLitePath)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao abrir o SQLite do cache do financeiro")
		}
		repo := repository.NewSalesCacheSQLiteRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar a tabela do cache do financeiro")
		}
		logrus.WithField("path", cfg.FinancialCache.SQLitePath).Info("Cache do financeiro em SQLite")
		return repo, func() { conn.Close() }

	case config.CacheBackendNone:
		logrus.Info("Cache do financeiro desabilitado")
		return nil, noop
	}

	logrus.Warnf("FINANCIAL_CACHE_BACKEND desconhecido: %s, seguindo sem cache", cfg.FinancialCache.Backend)
	return nil, noop
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
