package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"erp-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	run := func(t *testing.T, path string, next echo.HandlerFunc) {
		t.Helper()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath(path)
		require.NoError(t, MetricsMiddleware(next)(c))
	}

	t.Run("counts requests by route and status", func(t *testing.T) {
		before := testutil.ToFloat64(prometheus.HttpRequestsTotal.WithLabelValues("GET", "/health", "200"))
		run(t, "/health", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		after := testutil.ToFloat64(prometheus.HttpRequestsTotal.WithLabelValues("GET", "/health", "200"))
		assert.Equal(t, before+1, after)
	})

	t.Run("echo errors are labeled with their status", func(t *testing.T) {
		before := testutil.ToFloat64(prometheus.HttpRequestsTotal.WithLabelValues("GET", "/api/tenants/:id", "404"))
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/tenants/42", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/tenants/:id")

		err := MetricsMiddleware(func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound)
		})(c)
		require.Error(t, err)

		after := testutil.ToFloat64(prometheus.HttpRequestsTotal.WithLabelValues("GET", "/api/tenants/:id", "404"))
		assert.Equal(t, before+1, after)
	})
}
