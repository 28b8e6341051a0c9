package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "farmhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_CountsByRouteAndStatus(t *testing.T) {
	metrics, err := NewMetricsMiddleware("farmhub")
	require.NoError(t, err)

	e := echo.New()
	e.Use(metrics.Handle)
	e.GET("/farms/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrNotFound
		}

		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/farms/a", "/farms/b", "/farms/missing"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "/farms/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "/farms/:id", "404")), 0)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "farmhub_http_requests_total")
}

func TestMetricsMiddleware_Register(t *testing.T) {
	metrics, err := NewMetricsMiddleware("farmhub")
	require.NoError(t, err)

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "farmhub", Name: "db_open_connections"})
	require.NoError(t, metrics.Register(gauge))
	gauge.Set(3)

	assert.Error(t, metrics.Register(gauge))

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "farmhub_db_open_connections 3")
}
