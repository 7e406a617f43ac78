package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Assumptions holds the fixed market and planning constants for a run. The
// value is threaded into the calculators rather than held as package state,
// so alternative assumption sets can be exercised side by side.
type Assumptions struct {
	// Annual return rates per asset class, as fractions (0.113 = 11.3%).
	StocksReturn decimal.Decimal `json:"stocks_return"`
	BondsReturn  decimal.Decimal `json:"bonds_return"`
	CashReturn   decimal.Decimal `json:"cash_return"`

	// Volatilities and the risk-free rate are carried for reporting; the
	// deterministic calculators do not consume them.
	RiskFreeRate     decimal.Decimal `json:"risk_free_rate"`
	StocksVolatility decimal.Decimal `json:"stocks_volatility"`
	BondsVolatility  decimal.Decimal `json:"bonds_volatility"`
	CashVolatility   decimal.Decimal `json:"cash_volatility"`

	// CushionPercent is the safety margin applied on top of total tuition,
	// as a fraction (0.15 = 15%).
	CushionPercent decimal.Decimal `json:"cushion_percent"`

	// EndAllocation is the fully conservative mix the glide path lands on
	// at the target date.
	EndAllocation Allocation `json:"end_allocation"`

	// Bounds for the computed starting allocation. A ten-year-plus horizon
	// starts at MaxStartStocks/MaxStartBonds with MinStartCash.
	MaxStartStocks decimal.Decimal `json:"max_start_stocks"`
	MaxStartBonds  decimal.Decimal `json:"max_start_bonds"`
	MinStartCash   decimal.Decimal `json:"min_start_cash"`
}

// DefaultAssumptions returns the standard assumption set.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		StocksReturn:     decimal.NewFromFloat(0.113),
		BondsReturn:      decimal.NewFromFloat(0.046),
		CashReturn:       decimal.NewFromFloat(0.041),
		RiskFreeRate:     decimal.NewFromFloat(0.02),
		StocksVolatility: decimal.NewFromFloat(0.15),
		BondsVolatility:  decimal.NewFromFloat(0.05),
		CashVolatility:   decimal.NewFromFloat(0.02),
		CushionPercent:   decimal.NewFromFloat(0.15),
		EndAllocation: Allocation{
			Stocks: decimal.NewFromInt(20),
			Bonds:  decimal.NewFromInt(43),
			Cash:   decimal.NewFromInt(37),
		},
		MaxStartStocks: decimal.NewFromInt(59),
		MaxStartBonds:  decimal.NewFromInt(41),
		MinStartCash:   decimal.Zero,
	}
}

// WithDefaults returns a copy of the assumptions with every unset (zero)
// field replaced by its default. Partial overrides from a config file pass
// through here before reaching the calculators.
func (a Assumptions) WithDefaults() Assumptions {
	def := DefaultAssumptions()
	if a.StocksReturn.IsZero() {
		a.StocksReturn = def.StocksReturn
	}
	if a.BondsReturn.IsZero() {
		a.BondsReturn = def.BondsReturn
	}
	if a.CashReturn.IsZero() {
		a.CashReturn = def.CashReturn
	}
	if a.RiskFreeRate.IsZero() {
		a.RiskFreeRate = def.RiskFreeRate
	}
	if a.StocksVolatility.IsZero() {
		a.StocksVolatility = def.StocksVolatility
	}
	if a.BondsVolatility.IsZero() {
		a.BondsVolatility = def.BondsVolatility
	}
	if a.CashVolatility.IsZero() {
		a.CashVolatility = def.CashVolatility
	}
	if a.CushionPercent.IsZero() {
		a.CushionPercent = def.CushionPercent
	}
	if a.EndAllocation.Sum().IsZero() {
		a.EndAllocation = def.EndAllocation
	}
	if a.MaxStartStocks.IsZero() {
		a.MaxStartStocks = def.MaxStartStocks
	}
	if a.MaxStartBonds.IsZero() {
		a.MaxStartBonds = def.MaxStartBonds
	}
	if a.MinStartCash.IsZero() {
		a.MinStartCash = def.MinStartCash
	}
	return a
}

// Validate checks the assumption set for internal consistency.
func (a Assumptions) Validate() error {
	negativeOne := decimal.NewFromInt(-1)
	for _, r := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"stocks_return", a.StocksReturn},
		{"bonds_return", a.BondsReturn},
		{"cash_return", a.CashReturn},
	} {
		if r.value.LessThan(negativeOne) {
			return fmt.Errorf("%s cannot be less than -100%%", r.name)
		}
	}
	if a.CushionPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("cushion percent cannot be negative")
	}
	if err := a.EndAllocation.Validate(); err != nil {
		return fmt.Errorf("end allocation invalid: %w", err)
	}
	if a.MaxStartStocks.LessThan(decimal.Zero) || a.MaxStartStocks.GreaterThan(oneHundred) {
		return fmt.Errorf("max start stocks must be between 0 and 100")
	}
	if a.MaxStartBonds.LessThan(decimal.Zero) || a.MaxStartBonds.GreaterThan(oneHundred) {
		return fmt.Errorf("max start bonds must be between 0 and 100")
	}
	if a.MinStartCash.LessThan(decimal.Zero) || a.MinStartCash.GreaterThan(oneHundred) {
		return fmt.Errorf("min start cash must be between 0 and 100")
	}
	return nil
}

// BlendedReturn computes the weighted annual return implied by applying each
// asset's return to its percentage share of the given allocation.
func (a Assumptions) BlendedReturn(alloc Allocation) decimal.Decimal {
	return a.StocksReturn.Mul(Weight(alloc.Stocks)).
		Add(a.BondsReturn.Mul(Weight(alloc.Bonds))).
		Add(a.CashReturn.Mul(Weight(alloc.Cash)))
}
