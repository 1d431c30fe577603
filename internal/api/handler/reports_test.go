package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-coach-api/internal/domain"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/calculating"
	"github.com/vfg2006/revenue-coach-api/internal/usecases/calculating/mocks"
	"github.com/vfg2006/revenue-coach-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestParseReportFilters(t *testing.T) {
	filters, err := parseReportFilters(newRequest(http.MethodGet, "/v1/reports?since=2024-05-01&until=2024-05-31&limit=500", nil))
	require.NoError(t, err)

	require.NotNil(t, filters.Since)
	require.NotNil(t, filters.Until)
	assert.Equal(t, time.May, filters.Since.Month())
	assert.Equal(t, 31, filters.Until.Day())
	assert.Equal(t, uint64(maxReportsLimit), filters.Limit)
}

func TestParseReportFilters_Invalid(t *testing.T) {
	_, err := parseReportFilters(newRequest(http.MethodGet, "/v1/reports?limit=-1", nil))
	assert.ErrorContains(t, err, "limit")

	_, err = parseReportFilters(newRequest(http.MethodGet, "/v1/reports?since=ontem", nil))
	assert.ErrorContains(t, err, "since")
}

func TestListReports_ArchiveDisabled(t *testing.T) {
	rec := httptest.NewRecorder()
	ListReports(calculating.NewService()).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/reports", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrArchiveDisabled, decodeAPIError(t, rec).Code)
}

func TestListReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	simulator := mocks.NewMockSimulator(ctrl)
	simulator.EXPECT().
		ListReports(&domain.SimulationReportFilters{Limit: 10}).
		Return([]*domain.Simulation{{ID: "abc123"}}, nil)

	rec := httptest.NewRecorder()
	ListReports(simulator).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/reports?limit=10", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var reports []domain.Simulation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "abc123", reports[0].ID)
}

func TestGetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	simulator := mocks.NewMockSimulator(ctrl)
	simulator.EXPECT().GetReport("abc123").Return(&domain.Simulation{
		ID:      "abc123",
		Current: domain.DefaultCurrentScenario(),
		Target:  domain.DefaultTargetScenario(domain.DefaultCurrentScenario()),
	}, nil)

	rec := httptest.NewRecorder()
	GetReport(simulator).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/reports/abc123", nil, httprouter.Param{Key: "id", Value: "abc123"}))

	require.Equal(t, http.StatusOK, rec.Code)

	var response ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "abc123", response.Simulation.ID)
	assert.Len(t, response.Report.Rows, 5)
}

func TestGetReport_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", calculating.ErrReportNotFound, http.StatusNotFound, apiErrors.ErrReportNotFound},
		{"archive disabled", calculating.ErrArchiveDisabled, http.StatusNotFound, apiErrors.ErrArchiveDisabled},
		{"database failure", errors.New("connection reset"), http.StatusInternalServerError, apiErrors.ErrDatabaseOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			simulator := mocks.NewMockSimulator(ctrl)
			simulator.EXPECT().GetReport("x").Return(nil, tt.err)

			rec := httptest.NewRecorder()
			GetReport(simulator).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/reports/x", nil, httprouter.Param{Key: "id", Value: "x"}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
		})
	}
}
