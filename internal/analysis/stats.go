// Package analysis computes per-sensor descriptive statistics, z-score
// anomaly detection and structured reports over batches of readings.
// All functions are pure: they take a finite slice of readings and return
// freshly allocated results, with NaN treated as "measurement absent".
package analysis

import (
	"math"
	"sort"

	"github.com/tisense/sensorkit/internal/models"
)

// FieldStats holds the aggregate statistics for a single measurement field.
// Std is the population standard deviation (divisor n, not n-1). When the
// underlying sample is empty, all five statistics are NaN.
type FieldStats struct {
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
}

// IsEmpty reports whether the stats were computed from an empty sample.
func (fs FieldStats) IsEmpty() bool {
	return math.IsNaN(fs.Mean)
}

// StatsResult bundles the statistics for one sensor.
// ReadingCount is the maximum non-NaN sample count among the three fields,
// not the number of Reading records for the sensor: a reading whose fields
// are all NaN contributes to no field sample and therefore to no count.
type StatsResult struct {
	SensorID     string
	ReadingCount int
	Temperature  FieldStats
	Pressure     FieldStats
	Humidity     FieldStats
}

// Field returns the stats for the given measurement field.
func (sr StatsResult) Field(f models.Field) FieldStats {
	switch f {
	case models.FieldTemperature:
		return sr.Temperature
	case models.FieldPressure:
		return sr.Pressure
	case models.FieldHumidity:
		return sr.Humidity
	default:
		return computeFieldStats(nil)
	}
}

// computeFieldStats computes mean, median, population standard deviation,
// min and max for a sample. An empty sample yields all-NaN stats rather
// than an error.
func computeFieldStats(values []float64) FieldStats {
	if len(values) == 0 {
		nan := math.NaN()
		return FieldStats{Mean: nan, Median: nan, Std: nan, Min: nan, Max: nan}
	}

	n := len(values)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		median = sorted[n/2]
	}

	var varianceSum float64
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}
	std := math.Sqrt(varianceSum / float64(n))

	return FieldStats{
		Mean:   mean,
		Median: median,
		Std:    std,
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}

// fieldSamples holds the non-NaN values per field for one sensor.
type fieldSamples map[models.Field][]float64

// CalculateStatistics groups readings by sensor id and computes per-field
// statistics for each sensor. NaN values are excluded from every sample;
// a sensor whose field has no non-NaN values gets all-NaN stats for that
// field. The result map has one entry per distinct sensor id in the input.
func CalculateStatistics(readings []models.Reading) map[string]StatsResult {
	bySensor := make(map[string]fieldSamples)

	for _, r := range readings {
		samples, ok := bySensor[r.SensorID]
		if !ok {
			samples = make(fieldSamples, len(models.Fields))
			bySensor[r.SensorID] = samples
		}
		for _, f := range models.Fields {
			if v := r.Value(f); !math.IsNaN(v) {
				samples[f] = append(samples[f], v)
			}
		}
	}

	results := make(map[string]StatsResult, len(bySensor))
	for sensorID, samples := range bySensor {
		count := 0
		for _, f := range models.Fields {
			if len(samples[f]) > count {
				count = len(samples[f])
			}
		}

		results[sensorID] = StatsResult{
			SensorID:     sensorID,
			ReadingCount: count,
			Temperature:  computeFieldStats(samples[models.FieldTemperature]),
			Pressure:     computeFieldStats(samples[models.FieldPressure]),
			Humidity:     computeFieldStats(samples[models.FieldHumidity]),
		}
	}

	return results
}
