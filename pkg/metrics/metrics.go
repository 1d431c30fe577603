package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revenue_coach_simulations_total",
			Help: "Total number of current/target simulations computed",
		},
		[]string{"source"},
	)

	ScenariosByFranchiseType = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revenue_coach_scenarios_total",
			Help: "Total number of scenarios computed per franchise type",
		},
		[]string{"franchise_type", "role"},
	)

	ArchiveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "revenue_coach_archive_failures_total",
			Help: "Total number of simulations that could not be archived",
		},
	)

	ReportsPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "revenue_coach_reports_pruned_total",
			Help: "Total number of archived reports removed by the retention job",
		},
	)
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "revenue_coach_http_request_duration_seconds",
		Help:    "Duration of HTTP requests by method, route and status",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
