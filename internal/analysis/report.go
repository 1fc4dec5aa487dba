package analysis

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/tisense/sensorkit/internal/models"
)

// Report is the serializable summary of one analysis run. All numeric
// statistics are rounded to two decimals at this presentation boundary;
// NaN statistics become null. The report id and generation timestamp are
// run metadata and have no bearing on report content.
type Report struct {
	ReportID    string                  `json:"report_id" yaml:"report_id"`
	GeneratedAt time.Time               `json:"generated_at" yaml:"generated_at"`
	Summary     ReportSummary           `json:"summary" yaml:"summary"`
	Sensors     map[string]SensorReport `json:"sensors" yaml:"sensors"`
	Anomalies   []AnomalyReport         `json:"anomalies" yaml:"anomalies"`
}

// ReportSummary describes the whole input batch.
type ReportSummary struct {
	TotalReadings int        `json:"total_readings" yaml:"total_readings"`
	SensorCount   int        `json:"sensor_count" yaml:"sensor_count"`
	TimeRange     *TimeRange `json:"time_range" yaml:"time_range"`
}

// TimeRange is the global min/max timestamp across all input readings.
type TimeRange struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// SensorReport is the rendered per-sensor statistics block.
type SensorReport struct {
	ReadingCount int              `json:"reading_count" yaml:"reading_count"`
	Temperature  FieldStatsReport `json:"temperature" yaml:"temperature"`
	Pressure     FieldStatsReport `json:"pressure" yaml:"pressure"`
	Humidity     FieldStatsReport `json:"humidity" yaml:"humidity"`
}

// FieldStatsReport renders FieldStats with each value rounded to two
// decimals, or null when the underlying statistic is NaN.
type FieldStatsReport struct {
	Mean   *float64 `json:"mean" yaml:"mean"`
	Median *float64 `json:"median" yaml:"median"`
	Std    *float64 `json:"std" yaml:"std"`
	Min    *float64 `json:"min" yaml:"min"`
	Max    *float64 `json:"max" yaml:"max"`
}

// AnomalyReport is the rendered form of one detected anomaly.
type AnomalyReport struct {
	SensorID  string    `json:"sensor_id" yaml:"sensor_id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Field     string    `json:"field" yaml:"field"`
	Value     float64   `json:"value" yaml:"value"`
	ZScore    float64   `json:"z_score" yaml:"z_score"`
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// roundPtr returns v rounded to two decimals, or nil when v is NaN.
func roundPtr(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	r := round2(v)
	return &r
}

func renderFieldStats(fs FieldStats) FieldStatsReport {
	return FieldStatsReport{
		Mean:   roundPtr(fs.Mean),
		Median: roundPtr(fs.Median),
		Std:    roundPtr(fs.Std),
		Min:    roundPtr(fs.Min),
		Max:    roundPtr(fs.Max),
	}
}

// GenerateReport runs statistics and anomaly detection over the input and
// composes the results into a Report. Both passes see the same input;
// computation stays full precision and rounding happens only here.
// Empty input yields zero counts, an empty sensors map, no anomalies and
// a null time range.
func GenerateReport(readings []models.Reading, threshold float64) Report {
	stats := CalculateStatistics(readings)
	anomalies := DetectAnomalies(readings, threshold)

	var timeRange *TimeRange
	if len(readings) > 0 {
		start, end := readings[0].Time, readings[0].Time
		for _, r := range readings[1:] {
			if r.Time.Before(start) {
				start = r.Time
			}
			if r.Time.After(end) {
				end = r.Time
			}
		}
		timeRange = &TimeRange{Start: start, End: end}
	}

	sensors := make(map[string]SensorReport, len(stats))
	for sensorID, s := range stats {
		sensors[sensorID] = SensorReport{
			ReadingCount: s.ReadingCount,
			Temperature:  renderFieldStats(s.Temperature),
			Pressure:     renderFieldStats(s.Pressure),
			Humidity:     renderFieldStats(s.Humidity),
		}
	}

	rendered := make([]AnomalyReport, 0, len(anomalies))
	for _, a := range anomalies {
		rendered = append(rendered, AnomalyReport{
			SensorID:  a.Reading.SensorID,
			Timestamp: a.Reading.Time,
			Field:     string(a.Field),
			Value:     a.Value,
			ZScore:    round2(a.ZScore),
		})
	}

	return Report{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now(),
		Summary: ReportSummary{
			TotalReadings: len(readings),
			SensorCount:   len(stats),
			TimeRange:     timeRange,
		},
		Sensors:   sensors,
		Anomalies: rendered,
	}
}
