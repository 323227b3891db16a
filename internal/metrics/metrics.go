package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	apiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tikang_admin",
			Name:      "api_requests_total",
			Help:      "Outbound admin API requests by endpoint and status class.",
		},
		[]string{"endpoint", "status"},
	)

	mutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tikang_admin",
			Name:      "mutations_total",
			Help:      "Mutation actions by action name and outcome.",
		},
		[]string{"action", "outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(apiRequests, mutations)
	})
}

// IncAPIRequest increments the request counter for an endpoint/status pair.
func IncAPIRequest(endpoint, status string) {
	apiRequests.WithLabelValues(endpoint, status).Inc()
}

// IncMutation increments the mutation counter for an action/outcome pair.
func IncMutation(action, outcome string) {
	mutations.WithLabelValues(action, outcome).Inc()
}

// Serve exposes /metrics on the given port. Intended for long-running
// invocations (export jobs, watch modes); returns when the server stops.
func Serve(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}
