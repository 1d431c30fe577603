package handler

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-coach-api/internal/domain"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/calculating"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/sharing"
	"github.com/vfg2006/revenue-coach-api/pkg/log"
	"github.com/vfg2006/revenue-coach-api/pkg/metrics"
)

//go:embed templates/*.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

type dashboardView struct {
	FranchiseTypes []domain.FranchiseType
	Current        domain.ScenarioInput
	Target         domain.ScenarioInput
	Simulation     *domain.Simulation
	Report         *domain.ComparisonReport
	ShareToken     string
	SalesStep      float64
	MarginStep     float64
	MinMarginRate  float64
	MaxMarginRate  float64
	Error          string
}

func newDashboardView(current, target domain.ScenarioInput) *dashboardView {
	return &dashboardView{
		FranchiseTypes: domain.FranchiseTypes(),
		Current:        current,
		Target:         target,
		SalesStep:      domain.SalesStep,
		MarginStep:     domain.MarginStep,
		MinMarginRate:  domain.MinMarginRate,
		MaxMarginRate:  domain.MaxMarginRate,
	}
}

// parseScenarioForm lê os campos do formulário (prefixos c_ e t_). Campos ausentes usam os valores iniciais.
func parseScenarioForm(values url.Values) (domain.ScenarioInput, domain.ScenarioInput, error) {
	current := domain.DefaultCurrentScenario()
	if err := applyScenarioFields(values, "c_", &current); err != nil {
		return current, domain.DefaultTargetScenario(current), err
	}

	target := domain.DefaultTargetScenario(current)
	if err := applyScenarioFields(values, "t_", &target); err != nil {
		return current, target, err
	}

	return current, target, nil
}

func applyScenarioFields(values url.Values, prefix string, in *domain.ScenarioInput) error {
	if value := values.Get(prefix + "type"); value != "" {
		franchiseType, err := domain.ParseFranchiseType(value)
		if err != nil {
			return errors.Wrapf(err, "campo %stype", prefix)
		}
		in.FranchiseType = franchiseType
	}

	fields := []struct {
		name   string
		target *float64
	}{
		{name: "sales", target: &in.DailySales},
		{name: "margin", target: &in.MarginRate},
		{name: "o4o", target: &in.OnlineSales},
		{name: "rent", target: &in.Rent},
	}

	for _, field := range fields {
		value := values.Get(prefix + field.name)
		if value == "" {
			continue
		}

		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.Wrapf(err, "campo %s%s", prefix, field.name)
		}
		*field.target = parsed
	}

	return nil
}

// Dashboard renderiza o formulário e a comparação a partir dos parâmetros da URL
func Dashboard(simulator calculating.Simulator, sharer sharing.Sharer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, target, err := parseScenarioForm(r.URL.Query())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("dashboard: invalid form values")
			view := newDashboardView(current, target)
			view.Error = err.Error()
			renderDashboard(w, r, http.StatusBadRequest, view)
			return
		}

		renderSimulation(w, r, simulator, sharer, current, target, "dashboard")
	}
}

// SharedDashboard renderiza a comparação contida em um link de compartilhamento
func SharedDashboard(simulator calculating.Simulator, sharer sharing.Sharer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := httprouter.ParamsFromContext(r.Context()).ByName("token")

		current, target, err := sharer.Decode(token)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("dashboard: invalid share token")
			current = domain.DefaultCurrentScenario()
			view := newDashboardView(current, domain.DefaultTargetScenario(current))
			view.Error = "공유 링크가 유효하지 않거나 만료되었습니다."
			renderDashboard(w, r, http.StatusBadRequest, view)
			return
		}

		renderSimulation(w, r, simulator, sharer, current, target, "share")
	}
}

func renderSimulation(
	w http.ResponseWriter,
	r *http.Request,
	simulator calculating.Simulator,
	sharer sharing.Sharer,
	current, target domain.ScenarioInput,
	source string,
) {
	view := newDashboardView(current, target)

	response, err := buildSimulationResponse(r, simulator, sharer, current, target)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to simulate")
		view.Error = err.Error()
		renderDashboard(w, r, http.StatusInternalServerError, view)
		return
	}

	view.Current = response.Simulation.Current
	view.Target = response.Simulation.Target
	view.Simulation = response.Simulation
	view.Report = response.Report
	view.ShareToken = response.ShareToken

	metrics.SimulationsTotal.WithLabelValues(source).Inc()
	renderDashboard(w, r, http.StatusOK, view)
}

func renderDashboard(w http.ResponseWriter, r *http.Request, status int, view *dashboardView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := dashboardTemplate.Execute(w, view); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to render template")
	}
}
