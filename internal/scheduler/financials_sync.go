package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/financials"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
	"github.com/vfg2006/publisher-dashboard-api/pkg/utils"
)

const defaultLookbackDays = 7

// FinancialsSyncConfig representa a configuração do aquecimento do cache de vendas
type FinancialsSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// FinancialsSyncService mantém o cache de vendas das datas recentes atualizado
type FinancialsSyncService struct {
	scheduler           *gocron.Scheduler
	config              FinancialsSyncConfig
	financials          financials.FinancialsService
	clock               clockwork.Clock
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastSyncDates       int
}

func NewFinancialsSyncService(financialsService financials.FinancialsService, appConfig *config.Config, clock clockwork.Clock) *FinancialsSyncService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	syncConfig := FinancialsSyncConfig{
		CronSchedule: appConfig.FinancialsSync.CronSchedule,
		LookbackDays: appConfig.FinancialsSync.LookbackDays,
		SyncEnabled:  appConfig.FinancialsSync.Enabled,
	}
	if syncConfig.LookbackDays <= 0 {
		syncConfig.LookbackDays = defaultLookbackDays
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de financeiro carregada")

	return &FinancialsSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		financials: financialsService,
		clock:      clock,
	}
}

// Start inicia o agendador
func (s *FinancialsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do financeiro desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do financeiro")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runGuarded(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do financeiro: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do financeiro")
		s.scheduler.Stop()
	}()

	return nil
}

// runGuarded ignora a execução quando já existe uma em andamento
func (s *FinancialsSyncService) runGuarded(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do financeiro já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	_ = s.RunOnce(ctx)
}

// RunOnce aquece o cache com as últimas LookbackDays datas disponíveis
func (s *FinancialsSyncService) RunOnce(ctx context.Context) error {
	ctx, _ = log.WithCorrelationID(ctx)
	runID, err := utils.NewRunID("financials")
	if err != nil {
		runID = "financials-manual"
	}
	logger := log.ForContext(ctx).WithField("run_id", runID)

	startTime := s.clock.Now()
	s.syncMutex.Lock()
	s.lastRunID = runID
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	logger.Info("Iniciando sincronização do financeiro")

	count, err := s.sync(ctx)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.clock.Now()
	s.lastSyncDates = count
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Erro na sincronização do financeiro")
		return err
	}

	logger.WithFields(log.Fields{
		"dates_to_fetch": count,
		"duration_ms":    s.clock.Since(startTime).Milliseconds(),
	}).Info("Sincronização do financeiro concluída")

	return nil
}

func (s *FinancialsSyncService) sync(ctx context.Context) (int, error) {
	dates, err := s.financials.ListDates(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao listar datas: %w", err)
	}

	recent := recentDates(dates, s.config.LookbackDays)
	if len(recent) == 0 {
		return 0, nil
	}

	result, err := s.financials.GetSalesRange(ctx, recent, false)
	if err != nil {
		return 0, fmt.Errorf("erro ao consolidar datas recentes: %w", err)
	}

	return result.Fetched + result.Cached, nil
}

func recentDates(dates []domain.ReportDate, lookback int) []domain.ReportDate {
	sorted := make([]domain.ReportDate, len(dates))
	copy(sorted, dates)
	domain.SortReportDates(sorted)

	if lookback < len(sorted) {
		sorted = sorted[len(sorted)-lookback:]
	}
	return sorted
}

// TriggerManualSync inicia uma sincronização fora do agendamento.
// Retorna false quando já existe uma em andamento.
func (s *FinancialsSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do financeiro já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do financeiro")
	go s.runGuarded(context.Background())
	return true
}

// GetStatus retorna o status atual da sincronização
func (s *FinancialsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"lookback_days":          s.config.LookbackDays,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_dates":        s.lastSyncDates,
		"last_sync_error":        s.lastSyncError,
	}
}
