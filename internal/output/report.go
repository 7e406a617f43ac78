package output

import (
	"fmt"
	"strings"

	"github.com/edusave/education-calculator/internal/domain"
)

// extensionFor maps a formatter name to a file extension.
func extensionFor(name string) string {
	switch {
	case strings.Contains(name, "csv"):
		return "csv"
	case name == "json":
		return "json"
	default:
		return "txt"
	}
}

// GenerateReport formats the plan with the named formatter and writes it to
// a timestamped file in the working directory.
func GenerateReport(summary *domain.PlanSummary, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unknown output format %q; available: %s (aliases: %s)",
			format,
			strings.Join(AvailableFormatterNames(), ", "),
			strings.Join(AvailableFormatAliases(), ", "))
	}
	_, err := WriteFormatted(f, summary, extensionFor(f.Name()))
	return err
}
