package calculation

import (
	"github.com/edusave/education-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// solverMaxIterations caps the binary search at a fixed step count so
	// worst-case cost stays deterministic. The residual deposit resolution
	// after the cap is (2 x goal) / 2^20, which can leave the simulated
	// final value more than a cent off the goal for very large goals; that
	// residual is accepted rather than iterated away.
	solverMaxIterations = 20
)

// solverTolerance is the absolute final-value tolerance that ends the
// search early.
var solverTolerance = decimal.NewFromFloat(0.01)

// DepositSolver sizes the constant annual deposit whose compounded outcome
// reaches a savings goal within the horizon.
type DepositSolver struct {
	Assumptions domain.Assumptions
}

// NewDepositSolver creates a deposit solver using the given assumption set.
func NewDepositSolver(assumptions domain.Assumptions) *DepositSolver {
	return &DepositSolver{Assumptions: assumptions}
}

// CalculateRequiredDeposit finds the constant annual deposit that grows to
// the goal over the given number of years under the single fixed allocation.
// Callers planning against a glide path pass the first year's allocation
// only; the solver intentionally does not track the evolving path, so its
// answer diverges slightly from the full glide-path projection.
//
// years <= 0 is the degenerate case: the whole goal is saved up front.
//
// The search brackets the deposit in [0, 2 x goal] and bisects for at most
// solverMaxIterations steps, returning early once the simulated final value
// is within a cent of the goal. The simulated outcome is monotonically
// increasing in the deposit, so the bracket always narrows onto the answer.
func (ds *DepositSolver) CalculateRequiredDeposit(goal decimal.Decimal, years int, allocation domain.Allocation) decimal.Decimal {
	if years <= 0 {
		return goal
	}

	low := decimal.Zero
	high := goal.Mul(two)
	guess := low.Add(high).Div(two)

	for i := 0; i < solverMaxIterations; i++ {
		guess = low.Add(high).Div(two)
		finalValue := ds.SimulateFinalValue(guess, years, allocation)
		if finalValue.Sub(goal).Abs().LessThan(solverTolerance) {
			break
		}
		if finalValue.LessThan(goal) {
			low = guess
		} else {
			high = guess
		}
	}
	return guess
}

// SimulateFinalValue runs the deterministic forward simulation the solver
// bisects over: each year the deposit is added, the running value is split
// by the fixed allocation, and each slice earns its asset's annual return.
func (ds *DepositSolver) SimulateFinalValue(deposit decimal.Decimal, years int, allocation domain.Allocation) decimal.Decimal {
	a := ds.Assumptions
	value := decimal.Zero
	for i := 0; i < years; i++ {
		value = value.Add(deposit)
		stocks := value.Mul(domain.Weight(allocation.Stocks)).Mul(one.Add(a.StocksReturn))
		bonds := value.Mul(domain.Weight(allocation.Bonds)).Mul(one.Add(a.BondsReturn))
		cash := value.Mul(domain.Weight(allocation.Cash)).Mul(one.Add(a.CashReturn))
		value = stocks.Add(bonds).Add(cash)
	}
	return value
}
