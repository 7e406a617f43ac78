package output

import (
	"bytes"
	"fmt"

	"github.com/edusave/education-calculator/internal/domain"
)

// ConsoleFormatter renders the plan as a human-readable text report: the
// headline metrics, the year-by-year projection table, and the glide path.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "EDUCATION SAVINGS PLAN")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Annual Deposit Needed: %s\n", FormatCurrency(summary.RecommendedDeposit))
	fmt.Fprintf(&buf, "Total Savings Goal:    %s\n", FormatCurrency(summary.TotalSavingsGoal))
	fmt.Fprintf(&buf, "  Tuition:             %s\n", FormatCurrency(summary.TotalTuition))
	fmt.Fprintf(&buf, "  Cushion:             %s\n", FormatCurrency(summary.CushionAmount))
	fmt.Fprintf(&buf, "Time Horizon:          %d years\n", summary.TimeHorizon)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Year-by-Year Projections")
	fmt.Fprintln(&buf, "--------------------------------")
	fmt.Fprintf(&buf, "%-4s %14s %16s %14s %14s %14s\n", "Year", "Deposit", "Portfolio", "Stocks", "Bonds", "Cash")
	for _, p := range summary.Projections {
		fmt.Fprintf(&buf, "%-4d %14s %16s %14s %14s %14s\n",
			p.Year,
			FormatCurrency(p.Deposit),
			FormatCurrency(p.PortfolioValue),
			FormatCurrency(p.StocksValue),
			FormatCurrency(p.BondsValue),
			FormatCurrency(p.CashValue),
		)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Investment Allocation Over Time")
	fmt.Fprintln(&buf, "--------------------------------")
	fmt.Fprintf(&buf, "%-4s %8s %8s %8s\n", "Year", "Stocks", "Bonds", "Cash")
	for _, g := range summary.GlidePath {
		fmt.Fprintf(&buf, "%-4d %8s %8s %8s\n",
			g.Year,
			FormatPercentage(g.Allocation.Stocks),
			FormatPercentage(g.Allocation.Bonds),
			FormatPercentage(g.Allocation.Cash),
		)
	}

	return buf.Bytes(), nil
}
