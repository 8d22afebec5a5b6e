package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spendmax/enjoyment-calculator/internal/calculation"
	"github.com/spendmax/enjoyment-calculator/internal/config"
	"github.com/spendmax/enjoyment-calculator/internal/domain"
	"github.com/spendmax/enjoyment-calculator/internal/output"
	"github.com/spendmax/enjoyment-calculator/pkg/logger"
)

var (
	configFile string
	formatName string
	outputFile string
	debug      bool

	ageMin    float64
	ageMax    float64
	spendMin  float64
	spendMax  float64
	spendStep float64
)

var rootCmd = &cobra.Command{
	Use:   "spendmax",
	Short: "Find the maximum sustainable monthly spending per retirement age",
	Long: `spendmax sweeps a range of candidate retirement ages and, for each one,
binary-searches a discretized spending grid for the highest constant monthly
spending that keeps final wealth non-negative at the horizon, scoring the
lifetime enjoyment of that spending path.`,
	SilenceUsage: true,
	RunE:         runSweep,
}

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write an example configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := configFile
		if len(args) == 1 {
			filename = args[0]
		}
		if _, err := os.Stat(filename); err == nil {
			return fmt.Errorf("refusing to overwrite existing file %s", filename)
		}
		example := config.NewInputParser().CreateExampleConfiguration()
		data, err := yaml.Marshal(example)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote example configuration to %s\n", filename)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format (console, csv, json)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", output.DefaultCSVFilename, "file the sweep CSV is saved to")
	rootCmd.Flags().Float64Var(&ageMin, "age-min", 0, "override lowest retirement age swept")
	rootCmd.Flags().Float64Var(&ageMax, "age-max", 0, "override highest retirement age swept")
	rootCmd.Flags().Float64Var(&spendMin, "spend-min", 0, "override spending grid minimum")
	rootCmd.Flags().Float64Var(&spendMax, "spend-max", 0, "override spending grid maximum")
	rootCmd.Flags().Float64Var(&spendStep, "spend-step", 0, "override spending grid step")

	rootCmd.AddCommand(initCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	level := "info"
	if debug {
		level = "debug"
	}
	log := logger.New(logger.Config{Level: level, Pretty: true})

	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(configFile)
	if err != nil {
		return err
	}

	applyOverrides(cmd, cfg)
	// Flag overrides can break invariants the file satisfied; validate again.
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.Debug = debug
	engine.SetLogger(logger.EngineAdapter{Log: log})

	report, err := engine.SweepRetirementAges(cfg.Parameters(), cfg.Sweep.Grid, cfg.Sweep.Ages())
	if err != nil {
		return err
	}

	f := output.GetFormatterByName(formatName)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %v)", formatName, output.AvailableFormatterNames())
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))

	if err := output.WriteFormatted(output.CSVFormatter{}, report, outputFile); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	log.Info().Str("file", outputFile).Msg("saved sweep results")
	return nil
}

// applyOverrides layers explicitly-set sweep flags over the file
// configuration. Only flags the user actually passed are applied.
func applyOverrides(cmd *cobra.Command, cfg *domain.Configuration) {
	if cmd.Flags().Changed("age-min") {
		cfg.Sweep.RetirementAgeMin = ageMin
	}
	if cmd.Flags().Changed("age-max") {
		cfg.Sweep.RetirementAgeMax = ageMax
	}
	if cmd.Flags().Changed("spend-min") {
		cfg.Sweep.Grid.Min = decimal.NewFromFloat(spendMin)
	}
	if cmd.Flags().Changed("spend-max") {
		cfg.Sweep.Grid.Max = decimal.NewFromFloat(spendMax)
	}
	if cmd.Flags().Changed("spend-step") {
		cfg.Sweep.Grid.Step = decimal.NewFromFloat(spendStep)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
