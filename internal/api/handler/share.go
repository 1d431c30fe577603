package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/calculating"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/sharing"
	"github.com/vfg2006/revenue-coach-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-coach-api/pkg/log"
	"github.com/vfg2006/revenue-coach-api/pkg/metrics"
)

// GetSharedSimulation recalcula a comparação contida em um link de compartilhamento
func GetSharedSimulation(simulator calculating.Simulator, sharer sharing.Sharer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		token := httprouter.ParamsFromContext(r.Context()).ByName("token")

		current, target, err := sharer.Decode(token)
		if err != nil {
			logger.WithError(err).Warn("share: invalid share token")
			apiErrors.WriteError(w, apiErrors.ErrInvalidShareToken, "Link de compartilhamento inválido ou expirado", nil)
			return
		}

		response, err := buildSimulationResponse(r, simulator, sharer, current, target)
		if err != nil {
			writeSimulationError(w, r, err)
			return
		}
		response.ShareToken = token

		metrics.SimulationsTotal.WithLabelValues("share").Inc()
		writeJSON(w, r, http.StatusOK, response)
	}
}
