package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// allocationSumTolerance allows for the per-component rounding applied when
// allocations are generated (each of the three components is rounded to two
// decimal places independently).
var allocationSumTolerance = decimal.NewFromFloat(0.02)

var oneHundred = decimal.NewFromInt(100)

// Allocation is a portfolio split across the three asset classes, expressed
// in percentage points. A valid allocation sums to 100.
type Allocation struct {
	Stocks decimal.Decimal `json:"stocks"`
	Bonds  decimal.Decimal `json:"bonds"`
	Cash   decimal.Decimal `json:"cash"`
}

// Sum returns the total of the three components.
func (a Allocation) Sum() decimal.Decimal {
	return a.Stocks.Add(a.Bonds).Add(a.Cash)
}

// Weight returns the given percentage component as a fraction of 1.
func Weight(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(oneHundred)
}

// Validate checks that every component lies in [0, 100] and that the
// components sum to 100 within rounding tolerance.
func (a Allocation) Validate() error {
	for _, c := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"stocks", a.Stocks},
		{"bonds", a.Bonds},
		{"cash", a.Cash},
	} {
		if c.value.LessThan(decimal.Zero) || c.value.GreaterThan(oneHundred) {
			return fmt.Errorf("%s allocation must be between 0 and 100, got %s", c.name, c.value.String())
		}
	}
	if a.Sum().Sub(oneHundred).Abs().GreaterThan(allocationSumTolerance) {
		return fmt.Errorf("allocation components must sum to 100, got %s", a.Sum().String())
	}
	return nil
}

// GlidePoint is a single year's target allocation on the glide path.
type GlidePoint struct {
	Year       int        `json:"year"`
	Allocation Allocation `json:"allocation"`
}

// GlidePath is the full schedule of target allocations, ordered by year,
// from year 0 (the starting allocation) through the time horizon (the
// ending allocation). It is built once per planning run and never mutated.
type GlidePath []GlidePoint

// At returns the allocation for the given year index.
func (gp GlidePath) At(year int) (Allocation, error) {
	if year < 0 || year >= len(gp) {
		return Allocation{}, fmt.Errorf("glide path has no entry for year %d (length %d)", year, len(gp))
	}
	return gp[year].Allocation, nil
}

// Horizon returns the final year index covered by the path.
func (gp GlidePath) Horizon() int {
	return len(gp) - 1
}
