// Package main provides the CLI entry point for vortexy.
package main

import (
	"fmt"
	"os"

	"github.com/Skywalker144/Vortexy/pkg/vortexy"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/analysis"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	logLevel    string
	targetNoise float64
	precision   int
	pointOrder  string
	sheet       string
	compact     bool

	log = logrus.New()
	cfg *vortexy.Config
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vortexy",
		Short: "Convert and rank fan noise/temperature measurements",
		Long: `vortexy converts fan measurement spreadsheets into JSON for web display,
ranks fans by their temperature at a fixed noise level and builds the fan
specification database.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: info)")
	flags.Float64Var(&targetNoise, "target", analysis.DefaultTargetNoise, "Target noise level in dBA")
	flags.IntVar(&precision, "precision", -1, "Round JSON curve values to this many decimal places (-1: keep raw values)")
	flags.StringVar(&pointOrder, "point-order", string(output.NoiseFirst), "Two-column point order: noise-first, metric-first")
	flags.StringVar(&sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
	flags.BoolVar(&compact, "compact", false, "Write compact JSON instead of indented")

	rootCmd.AddCommand(
		newConvertCmd(),
		newProjectsCmd(),
		newSortCmd(),
		newFanDBCmd(),
		newNoiseCmd(),
		newPlotCmd(),
		newRunCmd(),
	)
	return rootCmd
}

// setup loads the config file and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level := "info"
	if configPath != "" {
		loaded, err := vortexy.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		level = cfg.LogLevel
	}
	if logLevel != "" {
		level = logLevel
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}
	log.SetLevel(parsed)
	return nil
}

// options builds processing options from the config file and flags.
// Flags given on the command line take precedence.
func options(cmd *cobra.Command) (vortexy.Options, error) {
	opts := vortexy.DefaultOptions()
	opts.Logger = log
	if cfg != nil {
		opts = cfg.Apply(opts)
	}

	flags := cmd.Flags()
	if flags.Changed("target") {
		target := targetNoise
		opts.TargetNoise = &target
	}
	if flags.Changed("precision") {
		if precision < 0 {
			opts.Precision = nil
		} else {
			p := precision
			opts.Precision = &p
		}
	}
	if flags.Changed("point-order") {
		order, err := output.ParsePointOrder(pointOrder)
		if err != nil {
			return opts, err
		}
		opts.PointOrder = order
	}
	if flags.Changed("compact") {
		opts.Pretty = !compact
	}
	opts.Sheet = sheet

	return opts, nil
}

// finish logs a batch report and returns its error.
func finish(report *vortexy.Report) error {
	report.Log(log)
	if err := report.Err(); err != nil {
		return fmt.Errorf("%d file(s) failed", len(report.Failed))
	}
	return nil
}
