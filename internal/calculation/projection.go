package calculation

import (
	"fmt"

	"github.com/edusave/education-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectionEngine simulates year-by-year portfolio evolution under the
// glide path and fixed per-asset annual returns.
type ProjectionEngine struct {
	Assumptions domain.Assumptions
}

// NewProjectionEngine creates a projection engine using the given
// assumption set.
func NewProjectionEngine(assumptions domain.Assumptions) *ProjectionEngine {
	return &ProjectionEngine{Assumptions: assumptions}
}

// CalculatePortfolioProjections produces one ProjectionRecord per year from
// 1 through timeHorizon. Each year the annual deposit is added, the running
// balance is split by the glide path's allocation at index year-1, and each
// slice earns its asset's annual return.
//
// Year N applies the path entry at N-1: the previous period's target mix
// governs the current year's contribution and balance. That one-year lag is
// part of the model's definition and must not be shifted.
//
// Records are strictly sequential; each depends on its predecessor's ending
// value.
func (pe *ProjectionEngine) CalculatePortfolioProjections(annualDeposit decimal.Decimal, timeHorizon int, glidePath domain.GlidePath) ([]domain.ProjectionRecord, error) {
	if timeHorizon < 1 {
		return nil, fmt.Errorf("cannot project over horizon %d: %w", timeHorizon, ErrInvalidHorizon)
	}
	if len(glidePath) < timeHorizon {
		return nil, fmt.Errorf("glide path has %d entries, need at least %d", len(glidePath), timeHorizon)
	}

	a := pe.Assumptions
	projections := make([]domain.ProjectionRecord, 0, timeHorizon)
	portfolioValue := decimal.Zero

	for year := 1; year <= timeHorizon; year++ {
		portfolioValue = portfolioValue.Add(annualDeposit)

		allocation := glidePath[year-1].Allocation

		stocksValue := portfolioValue.Mul(domain.Weight(allocation.Stocks)).Mul(one.Add(a.StocksReturn))
		bondsValue := portfolioValue.Mul(domain.Weight(allocation.Bonds)).Mul(one.Add(a.BondsReturn))
		cashValue := portfolioValue.Mul(domain.Weight(allocation.Cash)).Mul(one.Add(a.CashReturn))

		portfolioValue = stocksValue.Add(bondsValue).Add(cashValue)

		projections = append(projections, domain.ProjectionRecord{
			Year:           year,
			Deposit:        annualDeposit,
			PortfolioValue: portfolioValue,
			StocksValue:    stocksValue,
			BondsValue:     bondsValue,
			CashValue:      cashValue,
		})
	}
	return projections, nil
}
