package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-coach-api/internal/domain"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/calculating"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/sharing"
	"github.com/vfg2006/revenue-coach-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-coach-api/pkg/log"
	"github.com/vfg2006/revenue-coach-api/pkg/metrics"
)

type SimulationRequest struct {
	Current domain.ScenarioInput `json:"current"`
	Target  domain.ScenarioInput `json:"target"`
}

type SimulationResponse struct {
	Simulation *domain.Simulation       `json:"simulation"`
	Report     *domain.ComparisonReport `json:"report"`
	ShareToken string                   `json:"share_token,omitempty"`
}

func decodeSimulationRequest(r *http.Request) (*SimulationRequest, error) {
	var req SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(err, "decode simulation request")
	}
	return &req, nil
}

// CreateSimulation calcula a comparação entre o cenário atual e a meta
func CreateSimulation(simulator calculating.Simulator, sharer sharing.Sharer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, err := decodeSimulationRequest(r)
		if err != nil {
			logger.WithError(err).Warn("simulations: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.WithError(err).Warn("simulations: validation failed")
			writeValidationError(w, err)
			return
		}

		response, err := buildSimulationResponse(r, simulator, sharer, req.Current, req.Target)
		if err != nil {
			writeSimulationError(w, r, err)
			return
		}

		metrics.SimulationsTotal.WithLabelValues("api").Inc()
		writeJSON(w, r, http.StatusCreated, response)
	}
}

func buildSimulationResponse(
	r *http.Request,
	simulator calculating.Simulator,
	sharer sharing.Sharer,
	current, target domain.ScenarioInput,
) (*SimulationResponse, error) {
	simulation, err := simulator.Simulate(r.Context(), current, target)
	if err != nil {
		return nil, err
	}

	response := &SimulationResponse{
		Simulation: simulation,
		Report:     reporting.BuildReport(simulation),
	}

	token, err := sharer.Encode(simulation.Current, simulation.Target)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("simulations: failed to sign share token")
	} else {
		response.ShareToken = token
	}

	return response, nil
}

func writeSimulationError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrUnknownFranchiseType) {
		apiErrors.WriteError(w, apiErrors.ErrUnknownFranchiseType, "Tipo de contrato desconhecido", nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("simulations: failed to simulate")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular simulação", nil)
}

// ListFranchiseTypes retorna a tabela fixa de apoio e royalty por tipo de contrato
func ListFranchiseTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.FranchiseTypeTable())
	}
}

// GetFormDefaults retorna os valores iniciais do formulário
func GetFormDefaults() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.NewFormDefaults())
	}
}
