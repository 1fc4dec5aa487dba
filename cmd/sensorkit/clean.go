package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tisense/sensorkit/internal/cleaning"
	"github.com/tisense/sensorkit/internal/ingest"
	"github.com/tisense/sensorkit/internal/logging"
	"github.com/tisense/sensorkit/internal/models"
)

var (
	cleanOutput   string
	cleanInterval time.Duration
	cleanNoGaps   bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file.csv>",
	Short: "Clean a CSV file: deduplicate, clamp outliers, fill timestamp gaps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		readings, rowErrors, err := ingest.ReadFile(args[0])
		if err != nil {
			return err
		}
		for _, re := range rowErrors {
			logging.Warn("skipping row", "index", re.Index, "reason", re.Message)
		}

		interval := cfg.Pipeline.Interval
		if cmd.Flags().Changed("interval") {
			interval = cleanInterval
		}

		cleaned := cleaning.RemoveDuplicates(readings)
		cleaned = cleaning.ClampOutliers(cleaned, cleaning.FieldRanges{
			Temperature: cfg.Pipeline.Temperature,
			Pressure:    cfg.Pipeline.Pressure,
			Humidity:    cfg.Pipeline.Humidity,
		})
		if !cleanNoGaps {
			cleaned, err = cleaning.FillMissingTimestamps(cleaned, interval)
			if err != nil {
				return err
			}
		}

		logging.Info("cleaned readings",
			"input", len(readings),
			"output", len(cleaned))

		out := io.Writer(os.Stdout)
		if cleanOutput != "" {
			f, err := os.Create(cleanOutput)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", cleanOutput, err)
			}
			defer f.Close()
			out = f
		}

		return writeCSV(out, cleaned)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "output file (default stdout)")
	cleanCmd.Flags().DurationVar(&cleanInterval, "interval", cleaning.DefaultInterval, "expected sampling interval for gap filling")
	cleanCmd.Flags().BoolVar(&cleanNoGaps, "no-gap-fill", false, "skip the gap filling step")
}

// writeCSV writes readings in the same column layout ingest reads.
// NaN measurements are written literally so placeholders round-trip.
func writeCSV(w io.Writer, readings []models.Reading) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"timestamp", "sensor_id", "temperature", "pressure", "humidity"}); err != nil {
		return err
	}

	for _, r := range readings {
		record := []string{
			r.Time.Format(time.RFC3339),
			r.SensorID,
			formatValue(r.Temperature),
			formatValue(r.Pressure),
			formatValue(r.Humidity),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
