package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/edusave/education-calculator/internal/domain"
)

// CSVGlidePathExporter writes one row per glide-path year.
type CSVGlidePathExporter struct{}

func (c CSVGlidePathExporter) Name() string { return "glide-csv" }

func (c CSVGlidePathExporter) Format(summary *domain.PlanSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "StocksPct", "BondsPct", "CashPct"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, g := range summary.GlidePath {
		row := []string{
			strconv.Itoa(g.Year),
			g.Allocation.Stocks.StringFixed(2),
			g.Allocation.Bonds.StringFixed(2),
			g.Allocation.Cash.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
