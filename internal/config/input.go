package config

import (
	"fmt"
	"os"
	"time"

	"github.com/edusave/education-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Bounds enforced on raw plan input before it reaches the calculators.
const (
	MinYearsInUniversity = 1
	MaxYearsInUniversity = 10
)

// InputParser handles parsing of plan configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan configuration from a YAML file, fills assumption
// defaults, and validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.Assumptions = config.Assumptions.WithDefaults()

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. The calculators
// assume numerically well-formed input, so every range check lives here.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validatePlan(&config.Plan); err != nil {
		return fmt.Errorf("plan validation failed: %w", err)
	}
	if err := config.Assumptions.Validate(); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}
	return nil
}

// validatePlan validates the user-supplied plan details.
func (ip *InputParser) validatePlan(plan *domain.PlanDetails) error {
	if plan.AnnualTuition.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("annual tuition must be positive")
	}
	if plan.YearsInUniversity < MinYearsInUniversity || plan.YearsInUniversity > MaxYearsInUniversity {
		return fmt.Errorf("years in university must be between %d and %d", MinYearsInUniversity, MaxYearsInUniversity)
	}
	if plan.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if plan.UniversityStartDate.IsZero() {
		return fmt.Errorf("university start date is required")
	}
	if !plan.StartDate.Before(plan.UniversityStartDate) {
		return fmt.Errorf("start date must be before university start date")
	}
	if plan.InflationRate.LessThan(decimal.Zero) || plan.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("inflation rate must be between 0 and 20%%")
	}
	return nil
}

// CreateExampleConfiguration creates a ready-to-run example configuration.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	startDate, _ := time.Parse("2006-01-02", "2026-09-01")
	universityStartDate, _ := time.Parse("2006-01-02", "2030-09-01")

	return &domain.Configuration{
		Plan: domain.PlanDetails{
			AnnualTuition:       decimal.NewFromInt(20000),
			YearsInUniversity:   4,
			StartDate:           startDate,
			UniversityStartDate: universityStartDate,
			InflationRate:       decimal.NewFromFloat(0.02),
		},
		Assumptions: domain.DefaultAssumptions(),
	}
}

// WriteExampleConfiguration writes the example configuration as YAML to the
// given path.
func (ip *InputParser) WriteExampleConfiguration(path string) error {
	config := ip.CreateExampleConfiguration()
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
