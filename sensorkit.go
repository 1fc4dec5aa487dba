// Package sensorkit is the public surface of the sensor-data toolkit.
// It validates, cleans and analyzes batches of timestamped sensor
// readings (temperature, pressure, humidity) entirely in memory.
//
// The typical pipeline is:
//
//	readings = sensorkit.RemoveDuplicates(readings)
//	readings = sensorkit.ClampOutliers(readings, sensorkit.DefaultFieldRanges())
//	readings, err := sensorkit.FillMissingTimestamps(readings, time.Minute)
//	report := sensorkit.GenerateReport(readings, sensorkit.DefaultZThreshold)
//
// All functions are pure over their inputs: they return fresh slices and
// never mutate the readings they are given. NaN measurement values mean
// "measurement absent" and are excluded from every aggregate.
package sensorkit

import (
	"time"

	"github.com/tisense/sensorkit/internal/analysis"
	"github.com/tisense/sensorkit/internal/cleaning"
	"github.com/tisense/sensorkit/internal/models"
	"github.com/tisense/sensorkit/internal/validation"
)

// Re-exported core types.
type (
	Reading     = models.Reading
	Field       = models.Field
	Range       = models.Range
	FieldStats  = analysis.FieldStats
	StatsResult = analysis.StatsResult
	Anomaly     = analysis.Anomaly
	Report      = analysis.Report
	FieldRanges = cleaning.FieldRanges
	BatchResult = validation.BatchResult
)

// Measurement field identifiers, in canonical check order.
const (
	FieldTemperature = models.FieldTemperature
	FieldPressure    = models.FieldPressure
	FieldHumidity    = models.FieldHumidity
)

// DefaultZThreshold is the default z-score threshold for anomaly detection.
const DefaultZThreshold = analysis.DefaultZThreshold

// DefaultInterval is the default expected sampling cadence for gap filling.
const DefaultInterval = cleaning.DefaultInterval

// NewPlaceholder returns a synthetic reading with NaN measurement fields.
func NewPlaceholder(t time.Time, sensorID string) Reading {
	return models.NewPlaceholder(t, sensorID)
}

// DefaultFieldRanges returns the default valid ranges per field.
func DefaultFieldRanges() FieldRanges {
	return cleaning.DefaultFieldRanges()
}

// CalculateStatistics computes per-field statistics grouped by sensor id.
func CalculateStatistics(readings []Reading) map[string]StatsResult {
	return analysis.CalculateStatistics(readings)
}

// DetectAnomalies flags values whose z-score strictly exceeds threshold.
func DetectAnomalies(readings []Reading, threshold float64) []Anomaly {
	return analysis.DetectAnomalies(readings, threshold)
}

// GenerateReport composes statistics and anomalies into a serializable report.
func GenerateReport(readings []Reading, threshold float64) Report {
	return analysis.GenerateReport(readings, threshold)
}

// RemoveDuplicates drops readings sharing a (timestamp, sensor id) key with
// an earlier reading.
func RemoveDuplicates(readings []Reading) []Reading {
	return cleaning.RemoveDuplicates(readings)
}

// ClampOutliers limits measurement values to their field's closed range.
func ClampOutliers(readings []Reading, ranges FieldRanges) []Reading {
	return cleaning.ClampOutliers(readings, ranges)
}

// FillMissingTimestamps inserts NaN placeholders into sampling gaps larger
// than interval. A non-positive interval is rejected.
func FillMissingTimestamps(readings []Reading, interval time.Duration) ([]Reading, error) {
	return cleaning.FillMissingTimestamps(readings, interval)
}

// ValidateReading checks one reading against the sensor id format and
// field range rules, returning one message per violation.
func ValidateReading(r Reading) []string {
	return validation.ValidateReading(r)
}

// ValidateBatch validates every reading and summarizes the results.
func ValidateBatch(readings []Reading) BatchResult {
	return validation.ValidateBatch(readings)
}
