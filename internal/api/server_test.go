package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-coach-api/internal/config"
	"github.com/vfg2006/revenue-coach-api/internal/scheduler"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/calculating"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/sharing"
)

func newTestHandler() http.Handler {
	cfg := &config.Config{
		Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
		Share:  config.Share{Secret: "test-secret"},
		Auth:   config.Auth{ReportsToken: "ops-token"},
	}

	return NewHandler(
		cfg,
		calculating.NewService(),
		sharing.NewService(cfg),
		scheduler.NewReportRetentionService(nil, cfg),
	)
}

func TestNewHandler_Routes(t *testing.T) {
	handler := newTestHandler()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		wantStatus int
	}{
		{"healthcheck", http.MethodGet, "/healthcheck", "", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", "", http.StatusOK},
		{"dashboard", http.MethodGet, "/", "", "", http.StatusOK},
		{"franchise types", http.MethodGet, "/v1/franchise-types", "", "", http.StatusOK},
		{"defaults", http.MethodGet, "/v1/defaults", "", "", http.StatusOK},
		{
			"create simulation", http.MethodPost, "/v1/simulations",
			`{"current":{"franchise_type":"GS1","daily_sales":1500,"margin_rate":30},"target":{"franchise_type":"GS1","daily_sales":1700,"margin_rate":31.5}}`,
			"", http.StatusCreated,
		},
		{"reports without token", http.MethodGet, "/v1/reports", "", "", http.StatusUnauthorized},
		{"reports with wrong token", http.MethodGet, "/v1/reports", "", "nope", http.StatusUnauthorized},
		{"reports archive disabled", http.MethodGet, "/v1/reports", "", "ops-token", http.StatusNotFound},
		{"cron status", http.MethodGet, "/v1/cron/status", "", "ops-token", http.StatusOK},
		{"unknown route", http.MethodGet, "/v2/anything", "", "", http.StatusNotFound},
		{"wrong method", http.MethodDelete, "/v1/simulations", "", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewHandler_CorsPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/v1/simulations", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
