package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-coach-api/internal/scheduler"
	"github.com/vfg2006/revenue-coach-api/pkg/apiErrors"
)

const CronJobTypeRetention = "retention"

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	ReportRetentionService *scheduler.ReportRetentionService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeRetention:
			if services.ReportRetentionService == nil || !services.ReportRetentionService.TriggerManualRun() {
				apiErrors.WriteError(w, apiErrors.ErrArchiveDisabled, "Limpeza do histórico indisponível ou em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")
		writeJSON(w, r, http.StatusAccepted, map[string]string{
			"message": "Cron job iniciada",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ReportRetentionService != nil {
			status[CronJobTypeRetention] = services.ReportRetentionService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
