// Copia o cache do financeiro da planilha para o banco. O destino é o SQLite quando
// FINANCIAL_CACHE_BACKEND=sqlite e o PostgreSQL nos demais casos.
// Uso: FINANCIAL_CACHE_SHEET_ID=... DATABASE_URL=... go run ./infrastructure/migration/script
package main

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/database/sqlite"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/google/sheetsclient"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
)

const batchSize = 500

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração do cache do financeiro...")
}

func main() {
	setupLogger()
	startTime := time.Now()
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	if !cfg.Google.HasCredentials() || cfg.FinancialCache.SheetID == "" {
		logrus.Fatal("ERRO: conta de serviço do Google e FINANCIAL_CACHE_SHEET_ID são obrigatórios")
	}

	target, closeTarget := openTarget(ctx, cfg)
	defer closeTarget()

	if err := target.EnsureSchema(ctx); err != nil {
		logrus.Fatalf("ERRO ao criar a tabela do cache: %v", err)
	}
	logrus.Info("Tabela do cache verificada")

	sheets := sheetsclient.NewClient(cfg, sheetsclient.NewTokenManager(cfg, clockwork.NewRealClock()))
	source := repository.NewSalesCacheSheetRepository(sheets, cfg.FinancialCache.SheetID, cfg.FinancialCache.SheetName)

	records, err := source.ReadAll(ctx)
	if err != nil {
		logrus.Fatalf("ERRO ao ler a planilha de cache: %v", err)
	}
	logrus.Infof("%d linhas lidas da planilha", len(records))

	existing, err := target.ReadAll(ctx)
	if err != nil {
		logrus.Fatalf("ERRO ao ler o cache de destino: %v", err)
	}
	if len(existing) > 0 {
		logrus.Warnf("AVISO: a tabela já tem %d linhas; a cópia será anexada e prevalece na leitura", len(existing))
	}

	copied := copyInBatches(ctx, target, records)

	logrus.Infof("Migração concluída em %v. Linhas copiadas: %d de %d", time.Since(startTime), copied, len(records))
}

func openTarget(ctx context.Context, cfg *config.Config) (*repository.SalesCacheSQLRepository, func()) {
	if cfg.FinancialCache.Backend == config.CacheBackendSQLite {
		conn, err := sqlite.NewConnection(ctx, cfg.FinancialCache.SQLitePath)
		if err != nil {
			logrus.Fatalf("ERRO ao abrir o SQLite: %v", err)
		}
		logrus.Infof("Destino: SQLite em %s", cfg.FinancialCache.SQLitePath)
		return repository.NewSalesCacheSQLiteRepository(conn), func() { conn.Close() }
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao PostgreSQL: %v", err)
	}
	logrus.Info("Destino: PostgreSQL")
	return repository.NewSalesCachePostgresRepository(conn), func() { conn.Close() }
}

// copyInBatches preserva a ordem da planilha, que decide qual gravação prevalece
func copyInBatches(ctx context.Context, target repository.SalesCacheRepository, records []*domain.SalesRecord) int {
	copied := 0
	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))

		if err := target.AppendRows(ctx, records[start:end]); err != nil {
			logrus.Errorf("ERRO ao gravar linhas [%d-%d]: %v", start+1, end, err)
			continue
		}

		copied += end - start
		logrus.Infof("Progresso: %d/%d linhas copiadas", copied, len(records))
	}
	return copied
}
