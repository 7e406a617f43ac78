package calculation

import (
	"fmt"

	"github.com/edusave/education-calculator/internal/domain"
	"github.com/edusave/education-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// PlanningEngine orchestrates a full planning run: it derives the horizon
// and savings goal from the plan details, then chains the allocation
// schedule, deposit solver, and projection engine.
type PlanningEngine struct {
	Assumptions domain.Assumptions
	Allocations *AllocationSchedule
	Solver      *DepositSolver
	Projector   *ProjectionEngine
	Logger      Logger
}

// NewPlanningEngine creates a planning engine with the default assumptions.
func NewPlanningEngine() *PlanningEngine {
	return NewPlanningEngineWithAssumptions(domain.DefaultAssumptions())
}

// NewPlanningEngineWithAssumptions creates a planning engine threading the
// given assumption set into every calculator.
func NewPlanningEngineWithAssumptions(assumptions domain.Assumptions) *PlanningEngine {
	return &PlanningEngine{
		Assumptions: assumptions,
		Allocations: NewAllocationSchedule(assumptions),
		Solver:      NewDepositSolver(assumptions),
		Projector:   NewProjectionEngine(assumptions),
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the planning engine. If nil is provided, a
// no-op logger is used.
func (pe *PlanningEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// BuildPlan computes the complete savings plan for the given configuration.
// The caller is responsible for validating the raw input first (see the
// config package); BuildPlan still rejects horizons shorter than one year,
// since the glide path is undefined there.
func (pe *PlanningEngine) BuildPlan(cfg *domain.Configuration) (*domain.PlanSummary, error) {
	plan := cfg.Plan

	timeHorizon := dateutil.TimeHorizon(plan.StartDate, plan.UniversityStartDate)
	if timeHorizon < 1 {
		return nil, fmt.Errorf("start date %s to university start %s yields horizon %d: %w",
			plan.StartDate.Format("2006-01-02"), plan.UniversityStartDate.Format("2006-01-02"), timeHorizon, ErrInvalidHorizon)
	}

	totalTuition := plan.AnnualTuition.Mul(decimal.NewFromInt(int64(plan.YearsInUniversity)))
	cushion := totalTuition.Mul(pe.Assumptions.CushionPercent)
	goal := totalTuition.Add(cushion)

	glidePath, err := pe.Allocations.GenerateGlidePath(timeHorizon)
	if err != nil {
		return nil, err
	}
	startAllocation := glidePath[0].Allocation

	// The solver holds the first-year allocation fixed for the whole
	// horizon, so its deposit lands slightly above what the glide-path
	// projection below reaches. The gap is expected.
	deposit := pe.Solver.CalculateRequiredDeposit(goal, timeHorizon, startAllocation)

	projections, err := pe.Projector.CalculatePortfolioProjections(deposit, timeHorizon, glidePath)
	if err != nil {
		return nil, err
	}

	pe.Logger.Debugf("plan: horizon=%d goal=%s deposit=%s terminal=%s",
		timeHorizon, goal.StringFixed(2), deposit.StringFixed(2),
		projections[len(projections)-1].PortfolioValue.StringFixed(2))

	return &domain.PlanSummary{
		RecommendedDeposit: deposit,
		TotalTuition:       totalTuition,
		CushionAmount:      cushion,
		TotalSavingsGoal:   goal,
		TimeHorizon:        timeHorizon,
		StartAllocation:    startAllocation,
		GlidePath:          glidePath,
		Projections:        projections,
		Assumptions:        pe.Assumptions,
		InflationRate:      plan.InflationRate,
	}, nil
}
