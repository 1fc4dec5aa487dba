// Package cleaning provides the batch transforms applied to readings before
// analysis: deduplication, outlier clamping and timestamp-gap filling.
// Each transform takes a slice of readings and returns a new slice; inputs
// are never mutated.
package cleaning

import (
	"github.com/tisense/sensorkit/internal/models"
)

// dedupKey is the natural key of a reading. Two readings with the same
// instant and sensor id are duplicates regardless of their values.
// UnixNano is used so that equal instants compare equal independent of
// wall-clock representation.
type dedupKey struct {
	unixNano int64
	sensorID string
}

// RemoveDuplicates drops readings that share a (timestamp, sensor id) pair
// with an earlier reading. The first occurrence wins and the original
// relative order of kept readings is preserved.
func RemoveDuplicates(readings []models.Reading) []models.Reading {
	seen := make(map[dedupKey]struct{}, len(readings))
	result := make([]models.Reading, 0, len(readings))

	for _, r := range readings {
		key := dedupKey{unixNano: r.Time.UnixNano(), sensorID: r.SensorID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, r)
	}

	return result
}
