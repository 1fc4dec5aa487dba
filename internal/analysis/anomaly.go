package analysis

import (
	"math"

	"github.com/tisense/sensorkit/internal/models"
)

// DefaultZThreshold is the default z-score threshold for anomaly detection.
const DefaultZThreshold = 2.0

// Anomaly marks one measurement value that deviates from its sensor's
// field statistics by more than the z-score threshold.
type Anomaly struct {
	Reading models.Reading
	Field   models.Field
	Value   float64
	ZScore  float64
}

// ZScore computes |value - mean| / std. A zero standard deviation yields 0;
// uniform samples are never anomalous.
func ZScore(value, mean, std float64) float64 {
	if std == 0 {
		return 0
	}
	return math.Abs(value-mean) / std
}

// DetectAnomalies flags readings whose field values deviate from the mean
// by strictly more than threshold standard deviations. Statistics are
// computed once over the whole input, so every reading is scored against
// the population it belongs to. The result preserves input reading order;
// within one reading, fields are checked in canonical order (temperature,
// pressure, humidity).
//
// NaN values and fields with zero variance are skipped. A value whose
// z-score equals the threshold exactly is not an anomaly.
func DetectAnomalies(readings []models.Reading, threshold float64) []Anomaly {
	stats := CalculateStatistics(readings)

	var anomalies []Anomaly
	for _, r := range readings {
		s, ok := stats[r.SensorID]
		if !ok {
			continue
		}

		for _, f := range models.Fields {
			value := r.Value(f)
			fs := s.Field(f)
			if math.IsNaN(value) || fs.Std == 0 {
				continue
			}
			z := ZScore(value, fs.Mean, fs.Std)
			if z > threshold {
				anomalies = append(anomalies, Anomaly{
					Reading: r,
					Field:   f,
					Value:   value,
					ZScore:  z,
				})
			}
		}
	}

	return anomalies
}
