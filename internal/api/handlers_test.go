package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edusave/education-calculator/internal/calculation"
	"github.com/edusave/education-calculator/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRouter(calculation.NewPlanningEngine(), log)
}

func postPlan(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreatePlan_Success(t *testing.T) {
	router := newTestRouter()
	rec := postPlan(t, router, PlanRequest{
		AnnualTuition:       decimal.NewFromInt(20000),
		YearsInUniversity:   4,
		StartDate:           "2026-09-01",
		UniversityStartDate: "2030-09-01",
		InflationRate:       decimal.NewFromFloat(0.02),
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var summary domain.PlanSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))

	assert.Equal(t, 4, summary.TimeHorizon)
	assert.True(t, summary.TotalTuition.Equal(decimal.NewFromInt(80000)))
	assert.True(t, summary.TotalSavingsGoal.Equal(decimal.NewFromInt(92000)))
	assert.True(t, summary.RecommendedDeposit.GreaterThan(decimal.Zero))
	assert.Len(t, summary.Projections, 4)
	assert.Len(t, summary.GlidePath, 5)
}

func TestCreatePlan_MalformedBody(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bad_request", resp.Error)
}

func TestCreatePlan_BadDates(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		req  PlanRequest
	}{
		{
			"unparseable start date",
			PlanRequest{
				AnnualTuition:       decimal.NewFromInt(20000),
				YearsInUniversity:   4,
				StartDate:           "09/01/2026",
				UniversityStartDate: "2030-09-01",
			},
		},
		{
			"unparseable university date",
			PlanRequest{
				AnnualTuition:       decimal.NewFromInt(20000),
				YearsInUniversity:   4,
				StartDate:           "2026-09-01",
				UniversityStartDate: "soon",
			},
		},
		{
			"start after university start",
			PlanRequest{
				AnnualTuition:       decimal.NewFromInt(20000),
				YearsInUniversity:   4,
				StartDate:           "2031-09-01",
				UniversityStartDate: "2030-09-01",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postPlan(t, router, tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "bad_request", resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestCreatePlan_InvalidPlan(t *testing.T) {
	router := newTestRouter()
	rec := postPlan(t, router, PlanRequest{
		AnnualTuition:       decimal.Zero,
		YearsInUniversity:   4,
		StartDate:           "2026-09-01",
		UniversityStartDate: "2030-09-01",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "tuition")
}

func TestCreatePlan_SubYearHorizon(t *testing.T) {
	router := newTestRouter()
	rec := postPlan(t, router, PlanRequest{
		AnnualTuition:       decimal.NewFromInt(20000),
		YearsInUniversity:   4,
		StartDate:           "2030-08-01",
		UniversityStartDate: "2030-09-01",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bad_request", resp.Error)
}
