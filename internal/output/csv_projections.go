package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/edusave/education-calculator/internal/domain"
)

// CSVProjectionExporter writes one row per projected year.
type CSVProjectionExporter struct{}

func (c CSVProjectionExporter) Name() string { return "csv" }

func (c CSVProjectionExporter) Format(summary *domain.PlanSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Deposit", "PortfolioValue", "StocksValue", "BondsValue", "CashValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range summary.Projections {
		row := []string{
			strconv.Itoa(p.Year),
			p.Deposit.StringFixed(2),
			p.PortfolioValue.StringFixed(2),
			p.StocksValue.StringFixed(2),
			p.BondsValue.StringFixed(2),
			p.CashValue.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
