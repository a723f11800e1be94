package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	SimulationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulation_runs_total",
			Help: "Completed simulation runs",
		},
		[]string{"mode"},
	)

	TrialsExecuted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "simulation_trials_total",
			Help: "Total Monte Carlo trials executed",
		},
	)
)

func Init() {
	prometheus.MustRegister(HttpRequests)
	prometheus.MustRegister(SimulationRuns)
	prometheus.MustRegister(TrialsExecuted)
}
