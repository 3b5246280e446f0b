package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	sheetmocks "github.com/vfg2006/publisher-dashboard-api/internal/usecases/sheetdata/mocks"
	"go.uber.org/mock/gomock"
)

func TestSheetsWarmupService_RunOnce(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	cfg := &config.Config{SheetsWarmup: config.SheetsWarmup{CronSchedule: "*/30 * * * *", Enabled: true}}

	tests := []struct {
		name     string
		warmup   error
		validate func(t *testing.T, svc *SheetsWarmupService, err error)
	}{
		{
			name: "Todas as planilhas recarregadas",
			validate: func(t *testing.T, svc *SheetsWarmupService, err error) {
				require.NoError(t, err)
				status := svc.GetStatus()
				assert.Equal(t, "", status["last_sync_error"])
				assert.Equal(t, now, status["last_sync_completed_at"])
				assert.Equal(t, true, status["sync_enabled"])
			},
		},
		{
			name:   "Falha em uma planilha fica no status",
			warmup: errors.New("quick links indisponível"),
			validate: func(t *testing.T, svc *SheetsWarmupService, err error) {
				require.Error(t, err)
				assert.Equal(t, "quick links indisponível", svc.GetStatus()["last_sync_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sheets := sheetmocks.NewMockSheetDataService(ctrl)
			sheets.EXPECT().Warmup(gomock.Any()).Return(tt.warmup)

			svc := NewSheetsWarmupService(sheets, cfg, clockwork.NewFakeClockAt(now))
			tt.validate(t, svc, svc.RunOnce(context.Background()))
		})
	}
}

func TestSheetsWarmupService_TriggerManualSyncEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	sheets := sheetmocks.NewMockSheetDataService(ctrl)

	svc := NewSheetsWarmupService(sheets, &config.Config{}, nil)
	svc.syncRunning = true

	assert.False(t, svc.TriggerManualSync())
}
