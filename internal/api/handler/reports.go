package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-coach-api/internal/domain"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/calculating"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-coach-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-coach-api/pkg/log"
	"github.com/vfg2006/revenue-coach-api/pkg/utils"
)

const maxReportsLimit = 200

type ReportResponse struct {
	Simulation *domain.Simulation       `json:"simulation"`
	Report     *domain.ComparisonReport `json:"report"`
}

func parseReportFilters(r *http.Request) (*domain.SimulationReportFilters, error) {
	query := r.URL.Query()
	filters := &domain.SimulationReportFilters{}

	if value := query.Get("since"); value != "" {
		since, err := utils.ParseDate(value)
		if err != nil {
			return nil, errors.Wrap(err, "since")
		}
		filters.Since = since
	}

	if value := query.Get("until"); value != "" {
		until, err := utils.ParseDate(value)
		if err != nil {
			return nil, errors.Wrap(err, "until")
		}
		filters.Until = until
	}

	if value := query.Get("limit"); value != "" {
		limit, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "limit")
		}
		if limit > maxReportsLimit {
			limit = maxReportsLimit
		}
		filters.Limit = limit
	}

	return filters, nil
}

// ListReports lista as simulações arquivadas
func ListReports(simulator calculating.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithError(err).Warn("reports: invalid filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		reports, err := simulator.ListReports(filters)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		logger.WithField("report_count", len(reports)).Info("reports: listed archived simulations")
		writeJSON(w, r, http.StatusOK, reports)
	}
}

// GetReport retorna uma simulação arquivada com o modelo de exibição
func GetReport(simulator calculating.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		simulation, err := simulator.GetReport(id)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, ReportResponse{
			Simulation: simulation,
			Report:     reporting.BuildReport(simulation),
		})
	}
}

func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, calculating.ErrArchiveDisabled):
		apiErrors.WriteError(w, apiErrors.ErrArchiveDisabled, "Histórico de simulações desabilitado", nil)
	case errors.Is(err, calculating.ErrReportNotFound):
		apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Simulação não encontrada", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("reports: failed to read archive")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico", nil)
	}
}
