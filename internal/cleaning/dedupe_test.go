package cleaning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tisense/sensorkit/internal/models"
)

var baseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func makeReading(t time.Time, sensorID string, temp, pressure, humidity float64) models.Reading {
	return models.Reading{
		Time:        t,
		SensorID:    sensorID,
		Temperature: temp,
		Pressure:    pressure,
		Humidity:    humidity,
	}
}

func TestRemoveDuplicates_FirstOccurrenceWins(t *testing.T) {
	readings := []models.Reading{
		makeReading(baseTime, "TI-A1B2-C3D4", 25.0, 500.0, 50.0),
		makeReading(baseTime, "TI-A1B2-C3D4", 26.0, 501.0, 51.0), // same key, different values
	}

	result := RemoveDuplicates(readings)

	require.Len(t, result, 1)
	assert.Equal(t, 25.0, result[0].Temperature)
}

func TestRemoveDuplicates_KeyIsTimestampAndSensor(t *testing.T) {
	readings := []models.Reading{
		makeReading(baseTime, "TI-A1B2-C3D4", 25.0, 500.0, 50.0),
		makeReading(baseTime, "TI-XXXX-0001", 25.0, 500.0, 50.0),               // same time, other sensor
		makeReading(baseTime.Add(time.Minute), "TI-A1B2-C3D4", 25.0, 500.0, 50.0), // same sensor, other time
	}

	result := RemoveDuplicates(readings)

	assert.Len(t, result, 3)
}

func TestRemoveDuplicates_PreservesOrder(t *testing.T) {
	readings := []models.Reading{
		makeReading(baseTime.Add(2*time.Minute), "TI-A1B2-C3D4", 3, 500, 50),
		makeReading(baseTime, "TI-A1B2-C3D4", 1, 500, 50),
		makeReading(baseTime.Add(2*time.Minute), "TI-A1B2-C3D4", 99, 500, 50),
		makeReading(baseTime.Add(time.Minute), "TI-A1B2-C3D4", 2, 500, 50),
	}

	result := RemoveDuplicates(readings)

	require.Len(t, result, 3)
	assert.Equal(t, 3.0, result[0].Temperature)
	assert.Equal(t, 1.0, result[1].Temperature)
	assert.Equal(t, 2.0, result[2].Temperature)
}

func TestRemoveDuplicates_EmptyInput(t *testing.T) {
	result := RemoveDuplicates(nil)

	assert.Empty(t, result)
}
