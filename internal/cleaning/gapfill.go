package cleaning

import (
	"fmt"
	"sort"
	"time"

	"github.com/tisense/sensorkit/internal/models"
)

// DefaultInterval is the expected sampling cadence used by gap filling
// when the caller does not configure one.
const DefaultInterval = 60 * time.Second

// FillMissingTimestamps inserts NaN placeholder readings wherever a
// sensor's consecutive readings are more than one interval apart.
//
// Readings are partitioned by sensor id and each partition is sorted by
// timestamp, so unordered input is tolerated. For every consecutive pair
// within a sensor, placeholders are synthesized at current+interval,
// current+2*interval, ... strictly before the next real reading; a gap of
// one interval or less produces none. The merged result is sorted
// ascending by timestamp with the sensor id as lexical tie-break.
//
// A non-positive interval is a caller error and is rejected immediately.
func FillMissingTimestamps(readings []models.Reading, interval time.Duration) ([]models.Reading, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("gap fill interval must be positive, got %s", interval)
	}

	if len(readings) == 0 {
		return []models.Reading{}, nil
	}

	bySensor := make(map[string][]models.Reading)
	for _, r := range readings {
		bySensor[r.SensorID] = append(bySensor[r.SensorID], r)
	}

	result := make([]models.Reading, 0, len(readings))
	for sensorID, sensorReadings := range bySensor {
		sort.SliceStable(sensorReadings, func(i, j int) bool {
			return sensorReadings[i].Time.Before(sensorReadings[j].Time)
		})

		for i, r := range sensorReadings {
			result = append(result, r)

			if i == len(sensorReadings)-1 {
				continue
			}
			next := sensorReadings[i+1]
			for expected := r.Time.Add(interval); expected.Before(next.Time); expected = expected.Add(interval) {
				result = append(result, models.NewPlaceholder(expected, sensorID))
			}
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Time.Equal(result[j].Time) {
			return result[i].Time.Before(result[j].Time)
		}
		return result[i].SensorID < result[j].SensorID
	})

	return result, nil
}
