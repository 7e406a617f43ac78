package calculation

import (
	"errors"
	"fmt"

	"github.com/edusave/education-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidHorizon is returned when a routine that interpolates across the
// time horizon is asked for a horizon shorter than one year.
var ErrInvalidHorizon = errors.New("time horizon must be at least 1 year")

var (
	two           = decimal.NewFromInt(2)
	hundred       = decimal.NewFromInt(100)
	ten           = decimal.NewFromInt(10)
	one           = decimal.NewFromInt(1)
	bondRampShare = decimal.NewFromFloat(0.7)
)

// AllocationSchedule derives the time-varying target allocation for a
// savings horizon: an aggressiveness-scaled starting mix, interpolated
// linearly down to the fixed conservative ending mix.
type AllocationSchedule struct {
	Assumptions domain.Assumptions
}

// NewAllocationSchedule creates an allocation schedule using the given
// assumption set.
func NewAllocationSchedule(assumptions domain.Assumptions) *AllocationSchedule {
	return &AllocationSchedule{Assumptions: assumptions}
}

// ComputeStartAllocation derives the year-zero allocation for a horizon.
// Horizons of ten years or more get the maximally aggressive mix; shorter
// horizons scale down linearly. Bonds ramp at 70% of the stocks ramp, which
// deliberately shifts short-horizon weight toward cash. Cash is floored and
// bonds are recomputed last so the components sum to exactly 100.
//
// A zero horizon is accepted here and yields the most conservative start;
// only glide-path generation requires a horizon of at least one year.
func (as *AllocationSchedule) ComputeStartAllocation(timeHorizon int) domain.Allocation {
	a := as.Assumptions
	end := a.EndAllocation

	timeFactor := decimal.NewFromInt(int64(timeHorizon)).Div(ten)
	if timeFactor.GreaterThan(one) {
		timeFactor = one
	}

	stocks := end.Stocks.Add(a.MaxStartStocks.Sub(end.Stocks).Mul(timeFactor))
	if stocks.GreaterThan(a.MaxStartStocks) {
		stocks = a.MaxStartStocks
	}
	stocks = stocks.Round(2)

	bonds := end.Bonds.Add(a.MaxStartBonds.Sub(end.Bonds).Mul(timeFactor).Mul(bondRampShare))
	if bonds.GreaterThan(a.MaxStartBonds) {
		bonds = a.MaxStartBonds
	}

	cash := hundred.Sub(stocks).Sub(bonds)
	if cash.LessThan(a.MinStartCash) {
		cash = a.MinStartCash
	}
	cash = cash.Round(2)

	// Bonds absorb the rounding so the triple sums to exactly 100.
	bonds = hundred.Sub(stocks).Sub(cash)

	return domain.Allocation{Stocks: stocks, Bonds: bonds, Cash: cash}
}

// GenerateGlidePath builds the full allocation schedule for the horizon:
// one entry per year from 0 through timeHorizon inclusive, linearly
// interpolated between the computed starting allocation and the fixed
// ending allocation, each component rounded to two decimal places.
func (as *AllocationSchedule) GenerateGlidePath(timeHorizon int) (domain.GlidePath, error) {
	if timeHorizon < 1 {
		return nil, fmt.Errorf("cannot generate glide path for horizon %d: %w", timeHorizon, ErrInvalidHorizon)
	}

	start := as.ComputeStartAllocation(timeHorizon)
	end := as.Assumptions.EndAllocation
	horizon := decimal.NewFromInt(int64(timeHorizon))

	path := make(domain.GlidePath, 0, timeHorizon+1)
	for year := 0; year <= timeHorizon; year++ {
		fraction := decimal.NewFromInt(int64(year)).Div(horizon)
		path = append(path, domain.GlidePoint{
			Year: year,
			Allocation: domain.Allocation{
				Stocks: interpolate(start.Stocks, end.Stocks, fraction),
				Bonds:  interpolate(start.Bonds, end.Bonds, fraction),
				Cash:   interpolate(start.Cash, end.Cash, fraction),
			},
		})
	}
	return path, nil
}

func interpolate(start, end, fraction decimal.Decimal) decimal.Decimal {
	return start.Add(end.Sub(start).Mul(fraction)).Round(2)
}
