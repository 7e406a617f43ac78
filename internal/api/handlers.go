package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/edusave/education-calculator/internal/calculation"
	"github.com/edusave/education-calculator/internal/config"
	"github.com/edusave/education-calculator/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// PlanHandler exposes the planning engine over HTTP.
type PlanHandler struct {
	engine *calculation.PlanningEngine
	parser *config.InputParser
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(engine *calculation.PlanningEngine) *PlanHandler {
	return &PlanHandler{
		engine: engine,
		parser: config.NewInputParser(),
	}
}

// PlanRequest is the JSON body for POST /api/v1/plan.
type PlanRequest struct {
	AnnualTuition       decimal.Decimal `json:"annual_tuition"`
	YearsInUniversity   int             `json:"years_in_university"`
	StartDate           string          `json:"start_date"`
	UniversityStartDate string          `json:"university_start_date"`
	InflationRate       decimal.Decimal `json:"inflation_rate"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CreatePlan handles POST /api/v1/plan
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "start_date must be formatted YYYY-MM-DD",
		})
		return
	}
	universityStartDate, err := time.Parse(dateLayout, req.UniversityStartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "university_start_date must be formatted YYYY-MM-DD",
		})
		return
	}

	cfg := &domain.Configuration{
		Plan: domain.PlanDetails{
			AnnualTuition:       req.AnnualTuition,
			YearsInUniversity:   req.YearsInUniversity,
			StartDate:           startDate,
			UniversityStartDate: universityStartDate,
			InflationRate:       req.InflationRate,
		},
		Assumptions: h.engine.Assumptions,
	}

	if err := h.parser.ValidateConfiguration(cfg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	summary, err := h.engine.BuildPlan(cfg)
	if err != nil {
		if errors.Is(err, calculation.ErrInvalidHorizon) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}
