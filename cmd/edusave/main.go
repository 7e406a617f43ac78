package main

import (
	"fmt"
	"os"

	"github.com/edusave/education-calculator/internal/api"
	"github.com/edusave/education-calculator/internal/calculation"
	"github.com/edusave/education-calculator/internal/config"
	"github.com/edusave/education-calculator/internal/output"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile   string
	outputFormat string
	listenAddr   string
	verbose      bool
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "edusave",
		Short: "Education savings planner",
		Long: `edusave computes a savings-and-investment plan for a future education
expense: a glide path shifting from growth to capital preservation, the
constant annual deposit needed to reach the goal, and a year-by-year
projection of portfolio value.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute a savings plan from a YAML config",
		RunE:  runPlan,
	}
	planCmd.Flags().StringVarP(&configFile, "config", "c", "plan.yaml", "path to the plan configuration file")
	planCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "output format (console, csv, glide-csv, json)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning API over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "listen address (default $EDUSAVE_ADDR or :8080)")

	exampleCmd := &cobra.Command{
		Use:   "example-config [path]",
		Short: "Write an example plan configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExampleConfig,
	}

	rootCmd.AddCommand(planCmd, serveCmd, exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := newLogger()

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(configFile)
	if err != nil {
		return err
	}

	engine := calculation.NewPlanningEngineWithAssumptions(cfg.Assumptions)
	engine.SetLogger(calculation.NewLogrusLogger(log))

	summary, err := engine.BuildPlan(cfg)
	if err != nil {
		return err
	}

	format := output.NormalizeFormatName(outputFormat)
	if format == "console" {
		f := output.ConsoleFormatter{}
		data, err := f.Format(summary)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}
	return output.GenerateReport(summary, format)
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env is optional; env vars win when both are present.
	_ = godotenv.Load()

	log := newLogger()

	addr := listenAddr
	if addr == "" {
		addr = os.Getenv("EDUSAVE_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	engine := calculation.NewPlanningEngine()
	engine.SetLogger(calculation.NewLogrusLogger(log))

	return api.Serve(addr, engine, log)
}

func runExampleConfig(cmd *cobra.Command, args []string) error {
	path := "plan.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	parser := config.NewInputParser()
	if err := parser.WriteExampleConfiguration(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote example configuration to %s\n", path)
	return nil
}
