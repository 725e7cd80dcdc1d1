// Package main provides the CLI entry point for evalreport.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/drivelab/evalreport/pkg/evalreport"
	"github.com/drivelab/evalreport/pkg/evalreport/output"
	"github.com/drivelab/evalreport/pkg/evalreport/parser"
)

var (
	outputPath     string
	colorTolerance float64
	verbose        bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "evalreport [workbook.xlsm]",
		Short: "Analyze evaluation data from a heatmap workbook",
		Long: `evalreport reads a macro-enabled evaluation workbook, extracts the
use-case table (P1 statuses and pasted vehicle data), and prints a summary
report with status distributions, per-vehicle statistics, completeness
metrics, and insights. With --output the report is written as JSON instead.`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		RunE:              run,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON file path (default: console report)")
	rootCmd.Flags().Float64Var(&colorTolerance, "tolerance", parser.DefaultColorTolerance, "Status fill color match tolerance (normalized RGB distance)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := evalreport.DefaultOptions()
	opts.ColorTolerance = colorTolerance
	opts.Logger = logger

	report, err := evalreport.Analyze(inputPath, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if outputPath != "" {
		if err := output.ExportJSON(report, outputPath); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		logger.Info("report exported", zap.String("path", outputPath))
		return nil
	}

	output.RenderConsole(os.Stdout, report)
	return nil
}
