package cleaning

import "github.com/tisense/sensorkit/internal/models"

// FieldRanges holds the valid closed range per measurement field.
type FieldRanges struct {
	Temperature models.Range
	Pressure    models.Range
	Humidity    models.Range
}

// DefaultFieldRanges returns the default valid ranges: temperature
// [-40, 150] Celsius, pressure [0, 1000] hPa, humidity [0, 100] percent.
func DefaultFieldRanges() FieldRanges {
	return FieldRanges{
		Temperature: models.DefaultTemperatureRange,
		Pressure:    models.DefaultPressureRange,
		Humidity:    models.DefaultHumidityRange,
	}
}

// ClampOutliers limits every measurement value to its field's closed range
// instead of removing out-of-range readings. Values already in range,
// including values exactly at a bound, pass through unchanged; NaN stays
// NaN. The result has the same order and length as the input, and the
// transform is idempotent.
func ClampOutliers(readings []models.Reading, ranges FieldRanges) []models.Reading {
	result := make([]models.Reading, 0, len(readings))

	for _, r := range readings {
		result = append(result, models.Reading{
			Time:        r.Time,
			SensorID:    r.SensorID,
			Temperature: ranges.Temperature.Clamp(r.Temperature),
			Pressure:    ranges.Pressure.Clamp(r.Pressure),
			Humidity:    ranges.Humidity.Clamp(r.Humidity),
		})
	}

	return result
}
