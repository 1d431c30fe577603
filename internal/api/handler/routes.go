package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/revenue-coach-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/calculating"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/sharing"
	"github.com/vfg2006/revenue-coach-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Dashboards(simulator calculating.Simulator, sharer sharing.Sharer) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Dashboard(simulator, sharer),
		},
		{
			Path:    "/share/:token",
			Method:  http.MethodGet,
			Handler: SharedDashboard(simulator, sharer),
		},
	}
}

func Simulations(simulator calculating.Simulator, sharer sharing.Sharer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/simulations",
			Method:  http.MethodPost,
			Handler: CreateSimulation(simulator, sharer),
		},
		{
			Path:    "/v1/franchise-types",
			Method:  http.MethodGet,
			Handler: ListFranchiseTypes(),
		},
		{
			Path:    "/v1/defaults",
			Method:  http.MethodGet,
			Handler: GetFormDefaults(),
		},
		{
			Path:    "/v1/share/:token",
			Method:  http.MethodGet,
			Handler: GetSharedSimulation(simulator, sharer),
		},
	}
}

func Reports(simulator calculating.Simulator, token string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports",
			Method:      http.MethodGet,
			Handler:     ListReports(simulator),
			Middlewares: []func(http.Handler) http.Handler{middleware.BearerToken(token)},
		},
		{
			Path:        "/v1/reports/:id",
			Method:      http.MethodGet,
			Handler:     GetReport(simulator),
			Middlewares: []func(http.Handler) http.Handler{middleware.BearerToken(token)},
		},
	}
}

func CronJobs(services CronJobServices, token string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.BearerToken(token)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.BearerToken(token)},
		},
	}
}
