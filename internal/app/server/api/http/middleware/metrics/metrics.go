package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics считает запросы к API записей по операции и статусу
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oficina_http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "endpoint", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "oficina_http_request_duration_seconds",
			Help:    "Request latency",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "endpoint"}),
	}

	reg.MustRegister(m.requests, m.latency)
	return m
}

// Middleware использует шаблон пути операции, а не фактический путь:
// /servicos/{id}/toggle не порождает метку на каждый id.
func (m *Metrics) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		endpoint := ctx.URL().Path
		if op := ctx.Operation(); op != nil {
			endpoint = op.Path
		}
		method := ctx.Method()

		m.requests.WithLabelValues(method, endpoint, strconv.Itoa(ctx.Status())).Inc()
		m.latency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}
