package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubHealth bool

func (h stubHealth) Healthy(context.Context) bool { return bool(h) }

func TestServer_HealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		healthy bool
		code    int
	}{
		{name: "healthy", healthy: true, code: http.StatusOK},
		{name: "unhealthy", healthy: false, code: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&Config{Port: "0", CorsOrigins: []string{"*"}}, stubHealth(tt.healthy)).
				SetupMiddlewares().
				SetupHealthChecks("/health")

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestServer_ErrorHandler(t *testing.T) {
	s := New(&Config{Port: "0"}, nil).SetupErrorHandler()
	s.Echo.GET("/invalid", func(c echo.Context) error {
		return apperr.NewValidation("bad input")
	})
	s.Echo.GET("/state", func(c echo.Context) error {
		return apperr.NewState("run not finalized")
	})
	s.Echo.GET("/boom", func(c echo.Context) error {
		return assert.AnError
	})

	for path, code := range map[string]int{
		"/invalid": http.StatusBadRequest,
		"/state":   http.StatusConflict,
		"/boom":    http.StatusInternalServerError,
		"/missing": http.StatusNotFound,
	} {
		rec := httptest.NewRecorder()
		s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, code, rec.Code, path)
	}
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, validatePort("8080"))
	assert.Error(t, validatePort("http"))
	assert.Error(t, validatePort("70000"))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9091")
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "9091", cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
	assert.False(t, cfg.UseHttp2)

	t.Setenv("PORT", "99999")
	_, err = LoadConfig()
	assert.Error(t, err)
}
