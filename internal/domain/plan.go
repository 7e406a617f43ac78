package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanDetails is the validated user input for a single planning run.
type PlanDetails struct {
	// AnnualTuition is the expected yearly tuition cost in today's dollars.
	AnnualTuition decimal.Decimal `json:"annual_tuition"`

	// YearsInUniversity is the number of tuition years to fund (1-10).
	YearsInUniversity int `json:"years_in_university"`

	// StartDate is when saving begins.
	StartDate time.Time `json:"start_date"`

	// UniversityStartDate is the target date the funds are needed by.
	UniversityStartDate time.Time `json:"university_start_date"`

	// InflationRate is collected from the user but not applied by the
	// deterministic calculators; it is echoed back for display.
	InflationRate decimal.Decimal `json:"inflation_rate"`
}

// Configuration is the top-level input document for a planning run.
type Configuration struct {
	Plan        PlanDetails `json:"plan" yaml:"plan"`
	Assumptions Assumptions `json:"assumptions" yaml:"assumptions"`
}

// ProjectionRecord captures one simulated year of portfolio evolution.
// Records form a strict sequence: each year's values are derived from the
// previous year's ending portfolio value.
type ProjectionRecord struct {
	Year           int             `json:"year"`
	Deposit        decimal.Decimal `json:"deposit"`
	PortfolioValue decimal.Decimal `json:"portfolio_value"`
	StocksValue    decimal.Decimal `json:"stocks_value"`
	BondsValue     decimal.Decimal `json:"bonds_value"`
	CashValue      decimal.Decimal `json:"cash_value"`
}

// PlanSummary is the complete result of a planning run, ready for a
// presentation layer to render.
type PlanSummary struct {
	RecommendedDeposit decimal.Decimal    `json:"recommended_deposit"`
	TotalTuition       decimal.Decimal    `json:"total_tuition"`
	CushionAmount      decimal.Decimal    `json:"cushion_amount"`
	TotalSavingsGoal   decimal.Decimal    `json:"total_savings_goal"`
	TimeHorizon        int                `json:"time_horizon"`
	StartAllocation    Allocation         `json:"start_allocation"`
	GlidePath          GlidePath          `json:"glide_path"`
	Projections        []ProjectionRecord `json:"projections"`
	Assumptions        Assumptions        `json:"assumptions"`
	InflationRate      decimal.Decimal    `json:"inflation_rate"`
}

// FinalValue returns the terminal portfolio value of the projection, or zero
// when no projections exist.
func (ps *PlanSummary) FinalValue() decimal.Decimal {
	if len(ps.Projections) == 0 {
		return decimal.Zero
	}
	return ps.Projections[len(ps.Projections)-1].PortfolioValue
}

// Shortfall returns goal minus terminal projected value. A positive result
// means the projection lands under the goal (expected: the deposit is sized
// against the first-year allocation, which outperforms the glide path).
func (ps *PlanSummary) Shortfall() decimal.Decimal {
	return ps.TotalSavingsGoal.Sub(ps.FinalValue())
}
