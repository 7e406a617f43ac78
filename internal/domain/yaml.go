package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// yaml.v3 does not decode scalars into decimal.Decimal, so the YAML-facing
// shapes of the input types use plain floats and convert on the boundary.

type allocationYAML struct {
	Stocks float64 `yaml:"stocks"`
	Bonds  float64 `yaml:"bonds"`
	Cash   float64 `yaml:"cash"`
}

func (ay allocationYAML) toAllocation() Allocation {
	return Allocation{
		Stocks: decimal.NewFromFloat(ay.Stocks),
		Bonds:  decimal.NewFromFloat(ay.Bonds),
		Cash:   decimal.NewFromFloat(ay.Cash),
	}
}

func fromAllocation(a Allocation) allocationYAML {
	return allocationYAML{
		Stocks: a.Stocks.InexactFloat64(),
		Bonds:  a.Bonds.InexactFloat64(),
		Cash:   a.Cash.InexactFloat64(),
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for Allocation.
func (a *Allocation) UnmarshalYAML(value *yaml.Node) error {
	var aux allocationYAML
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*a = aux.toAllocation()
	return nil
}

// MarshalYAML implements custom YAML marshaling for Allocation.
func (a Allocation) MarshalYAML() (interface{}, error) {
	return fromAllocation(a), nil
}

type planDetailsYAML struct {
	AnnualTuition       float64   `yaml:"annual_tuition"`
	YearsInUniversity   int       `yaml:"years_in_university"`
	StartDate           time.Time `yaml:"start_date"`
	UniversityStartDate time.Time `yaml:"university_start_date"`
	InflationRate       float64   `yaml:"inflation_rate"`
}

// UnmarshalYAML implements custom YAML unmarshaling for PlanDetails.
func (pd *PlanDetails) UnmarshalYAML(value *yaml.Node) error {
	var aux planDetailsYAML
	if err := value.Decode(&aux); err != nil {
		return err
	}
	pd.AnnualTuition = decimal.NewFromFloat(aux.AnnualTuition)
	pd.YearsInUniversity = aux.YearsInUniversity
	pd.StartDate = aux.StartDate
	pd.UniversityStartDate = aux.UniversityStartDate
	pd.InflationRate = decimal.NewFromFloat(aux.InflationRate)
	return nil
}

// MarshalYAML implements custom YAML marshaling for PlanDetails.
func (pd PlanDetails) MarshalYAML() (interface{}, error) {
	return planDetailsYAML{
		AnnualTuition:       pd.AnnualTuition.InexactFloat64(),
		YearsInUniversity:   pd.YearsInUniversity,
		StartDate:           pd.StartDate,
		UniversityStartDate: pd.UniversityStartDate,
		InflationRate:       pd.InflationRate.InexactFloat64(),
	}, nil
}

type assumptionsYAML struct {
	StocksReturn     float64        `yaml:"stocks_return"`
	BondsReturn      float64        `yaml:"bonds_return"`
	CashReturn       float64        `yaml:"cash_return"`
	RiskFreeRate     float64        `yaml:"risk_free_rate"`
	StocksVolatility float64        `yaml:"stocks_volatility"`
	BondsVolatility  float64        `yaml:"bonds_volatility"`
	CashVolatility   float64        `yaml:"cash_volatility"`
	CushionPercent   float64        `yaml:"cushion_percent"`
	EndAllocation    allocationYAML `yaml:"end_allocation"`
	MaxStartStocks   float64        `yaml:"max_start_stocks"`
	MaxStartBonds    float64        `yaml:"max_start_bonds"`
	MinStartCash     float64        `yaml:"min_start_cash"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Assumptions.
// Absent fields decode to zero and are filled in by WithDefaults.
func (a *Assumptions) UnmarshalYAML(value *yaml.Node) error {
	var aux assumptionsYAML
	if err := value.Decode(&aux); err != nil {
		return err
	}
	a.StocksReturn = decimal.NewFromFloat(aux.StocksReturn)
	a.BondsReturn = decimal.NewFromFloat(aux.BondsReturn)
	a.CashReturn = decimal.NewFromFloat(aux.CashReturn)
	a.RiskFreeRate = decimal.NewFromFloat(aux.RiskFreeRate)
	a.StocksVolatility = decimal.NewFromFloat(aux.StocksVolatility)
	a.BondsVolatility = decimal.NewFromFloat(aux.BondsVolatility)
	a.CashVolatility = decimal.NewFromFloat(aux.CashVolatility)
	a.CushionPercent = decimal.NewFromFloat(aux.CushionPercent)
	a.EndAllocation = aux.EndAllocation.toAllocation()
	a.MaxStartStocks = decimal.NewFromFloat(aux.MaxStartStocks)
	a.MaxStartBonds = decimal.NewFromFloat(aux.MaxStartBonds)
	a.MinStartCash = decimal.NewFromFloat(aux.MinStartCash)
	return nil
}

// MarshalYAML implements custom YAML marshaling for Assumptions.
func (a Assumptions) MarshalYAML() (interface{}, error) {
	return assumptionsYAML{
		StocksReturn:     a.StocksReturn.InexactFloat64(),
		BondsReturn:      a.BondsReturn.InexactFloat64(),
		CashReturn:       a.CashReturn.InexactFloat64(),
		RiskFreeRate:     a.RiskFreeRate.InexactFloat64(),
		StocksVolatility: a.StocksVolatility.InexactFloat64(),
		BondsVolatility:  a.BondsVolatility.InexactFloat64(),
		CashVolatility:   a.CashVolatility.InexactFloat64(),
		CushionPercent:   a.CushionPercent.InexactFloat64(),
		EndAllocation:    fromAllocation(a.EndAllocation),
		MaxStartStocks:   a.MaxStartStocks.InexactFloat64(),
		MaxStartBonds:    a.MaxStartBonds.InexactFloat64(),
		MinStartCash:     a.MinStartCash.InexactFloat64(),
	}, nil
}
