package middleware

import (
	"net/http"
	"strconv"
	"time"

	"farmhub/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records request counts and latencies per route.
type MetricsMiddleware struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsMiddleware registers the HTTP collectors on a dedicated registry.
func NewMetricsMiddleware(namespace string) (*MetricsMiddleware, error) {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	for _, collector := range []prometheus.Collector{
		requests,
		duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := registry.Register(collector); err != nil {
			return nil, errors.Wrap(err, "register metrics collector")
		}
	}

	return &MetricsMiddleware{
		registry: registry,
		requests: requests,
		duration: duration,
	}, nil
}

// Handle observes every request that passes through it.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := responseStatus(c, err)
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

// Register adds collectors owned by other components, such as the database pool.
func (m *MetricsMiddleware) Register(cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := m.registry.Register(c); err != nil {
			return errors.Wrap(err, "register metrics collector")
		}
	}

	return nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *MetricsMiddleware) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

type httpCoder interface {
	HTTPCode() int
}

// responseStatus predicts the status of a request whose error has not been
// written yet. The error handler runs after the middleware chain.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest
	}

	var coder httpCoder
	if errors.As(err, &coder) {
		return coder.HTTPCode()
	}
	if c.Response().Committed {
		return c.Response().Status
	}

	return http.StatusInternalServerError
}
