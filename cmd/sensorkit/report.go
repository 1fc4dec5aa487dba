package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tisense/sensorkit/internal/analysis"
	"github.com/tisense/sensorkit/internal/cleaning"
	"github.com/tisense/sensorkit/internal/ingest"
	"github.com/tisense/sensorkit/internal/logging"
)

var (
	reportFormat    string
	reportOutput    string
	reportThreshold float64
	reportClean     bool
)

var reportCmd = &cobra.Command{
	Use:   "report <file.csv>",
	Short: "Generate a statistics and anomaly report from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		readings, rowErrors, err := ingest.ReadFile(args[0])
		if err != nil {
			return err
		}
		for _, re := range rowErrors {
			logging.Warn("skipping row", "index", re.Index, "reason", re.Message)
		}

		if reportClean {
			readings = cleaning.RemoveDuplicates(readings)
			readings = cleaning.ClampOutliers(readings, cleaning.FieldRanges{
				Temperature: cfg.Pipeline.Temperature,
				Pressure:    cfg.Pipeline.Pressure,
				Humidity:    cfg.Pipeline.Humidity,
			})
			readings, err = cleaning.FillMissingTimestamps(readings, cfg.Pipeline.Interval)
			if err != nil {
				return err
			}
		}

		threshold := cfg.Pipeline.ZThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = reportThreshold
		}

		report := analysis.GenerateReport(readings, threshold)
		logging.Info("report generated",
			"sensors", report.Summary.SensorCount,
			"anomalies", len(report.Anomalies))

		out := io.Writer(os.Stdout)
		if reportOutput != "" {
			f, err := os.Create(reportOutput)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", reportOutput, err)
			}
			defer f.Close()
			out = f
		}

		switch reportFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		case "yaml":
			enc := yaml.NewEncoder(out)
			defer enc.Close()
			return enc.Encode(report)
		default:
			return fmt.Errorf("unsupported --format: %s (use json|yaml)", reportFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "json", "output format: json or yaml")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file (default stdout)")
	reportCmd.Flags().Float64VarP(&reportThreshold, "threshold", "t", analysis.DefaultZThreshold, "z-score anomaly threshold")
	reportCmd.Flags().BoolVar(&reportClean, "clean", false, "run the cleaning transforms before analysis")
}
