package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeFinancials = "financials"
	CronJobTypeSheets     = "sheets"
	CronJobTypeAll        = "all"
)

// CronJob é o contrato comum dos agendadores
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	FinancialsSyncService CronJob
	SheetsWarmupService   CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		started := map[string]bool{}

		switch cronType {
		case CronJobTypeFinancials:
			if services.FinancialsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do financeiro não disponível", nil)
				return
			}
			started[CronJobTypeFinancials] = services.FinancialsSyncService.TriggerManualSync()

		case CronJobTypeSheets:
			if services.SheetsWarmupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento das planilhas não disponível", nil)
				return
			}
			started[CronJobTypeSheets] = services.SheetsWarmupService.TriggerManualSync()

		case CronJobTypeAll:
			if services.FinancialsSyncService != nil {
				started[CronJobTypeFinancials] = services.FinancialsSyncService.TriggerManualSync()
			}
			if services.SheetsWarmupService != nil {
				started[CronJobTypeSheets] = services.SheetsWarmupService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: financials, sheets, all", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.FinancialsSyncService != nil {
			status[CronJobTypeFinancials] = services.FinancialsSyncService.GetStatus()
		}
		if services.SheetsWarmupService != nil {
			status[CronJobTypeSheets] = services.SheetsWarmupService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
