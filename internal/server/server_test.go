package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/sitewide-search/internal/apperr"
	pkgserver "github.com/DjordjeVuckovic/sitewide-search/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type fixedChecker bool

func (f fixedChecker) Healthy(context.Context) bool { return bool(f) }

func newTestServer(search, autosuggest bool) *Server {
	cfg := &Config{Port: "8080", CorsOrigins: []string{"*"}, MetricsPath: "/metrics"}
	hc := pkgserver.NewCompositeHealthChecker(
		pkgserver.NamedHealthChecker{Name: "search", Checker: fixedChecker(search)},
		pkgserver.NamedHealthChecker{Name: "autosuggest", Checker: fixedChecker(autosuggest)},
	)
	return New(cfg, hc).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics()
}

func get(s *Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		search      bool
		autosuggest bool
		wantStatus  int
		wantBody    string
	}{
		{
			name:        "all healthy",
			search:      true,
			autosuggest: true,
			wantStatus:  http.StatusOK,
			wantBody:    `{"status":"ok"}`,
		},
		{
			name:        "autosuggest down",
			search:      true,
			autosuggest: false,
			wantStatus:  http.StatusServiceUnavailable,
			wantBody:    `{"status":"unhealthy","services":{"search":true,"autosuggest":false}}`,
		},
		{
			name:        "both down",
			wantStatus:  http.StatusServiceUnavailable,
			wantBody:    `{"status":"unhealthy","services":{"search":false,"autosuggest":false}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(newTestServer(tt.search, tt.autosuggest), "/health")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(newTestServer(true, true), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestErrorHandler(t *testing.T) {
	s := newTestServer(true, true)
	s.Echo.GET("/fail", func(c echo.Context) error {
		return apperr.NewValidation("Not a valid language code.")
	})

	rec := get(s, "/fail")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Not a valid language code.","title":"validation error"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRecover(t *testing.T) {
	s := newTestServer(true, true)
	s.Echo.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	rec := get(s, "/panic")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"errors occurred."}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	rec := get(newTestServer(true, true), "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShutdownSignal(t *testing.T) {
	s := newTestServer(true, true)

	select {
	case <-s.ShutdownSignal():
		t.Fatal("shutdown signalled before any signal was sent")
	default:
	}

	s.stop()
	<-s.ShutdownSignal()
	assert.Error(t, s.Context().Err())
}
