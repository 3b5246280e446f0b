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
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/sheetdata"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
	"github.com/vfg2006/publisher-dashboard-api/pkg/utils"
)

// SheetsWarmupService recarrega periodicamente as planilhas publicadas
type SheetsWarmupService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	enabled             bool
	sheets              sheetdata.SheetDataService
	clock               clockwork.Clock
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewSheetsWarmupService(sheets sheetdata.SheetDataService, appConfig *config.Config, clock clockwork.Clock) *SheetsWarmupService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.SheetsWarmup.CronSchedule,
		"sync_enabled":  appConfig.SheetsWarmup.Enabled,
	}).Info("Configuração do agendador de planilhas carregada")

	return &SheetsWarmupService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.SheetsWarmup.CronSchedule,
		enabled:      appConfig.SheetsWarmup.Enabled,
		sheets:       sheets,
		clock:        clock,
	}
}

func (s *SheetsWarmupService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Aquecimento das planilhas desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.runGuarded(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento das planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SheetsWarmupService) runGuarded(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento das planilhas já em andamento, ignorando")
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

// RunOnce recarrega todas as planilhas ignorando o TTL
func (s *SheetsWarmupService) RunOnce(ctx context.Context) error {
	ctx, _ = log.WithCorrelationID(ctx)
	runID, err := utils.NewRunID("sheets")
	if err != nil {
		runID = "sheets-manual"
	}
	logger := log.ForContext(ctx).WithField("run_id", runID)

	startTime := s.clock.Now()
	s.syncMutex.Lock()
	s.lastRunID = runID
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	err = s.sheets.Warmup(ctx)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.clock.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Warn("Aquecimento das planilhas concluído com falhas")
		return err
	}

	logger.WithField("duration_ms", s.clock.Since(startTime).Milliseconds()).Info("Aquecimento das planilhas concluído")
	return nil
}

func (s *SheetsWarmupService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento das planilhas já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	go s.runGuarded(context.Background())
	return true
}

func (s *SheetsWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.cronSchedule,
		"sync_enabled":           s.enabled,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
