// Package models defines the data types shared across the sensorkit
// pipeline: readings, measurement fields and field ranges.
package models

import (
	"math"
	"time"
)

// Field identifies one of the three measurement fields of a Reading.
type Field string

const (
	FieldTemperature Field = "temperature"
	FieldPressure    Field = "pressure"
	FieldHumidity    Field = "humidity"
)

// Fields lists the measurement fields in their canonical check order.
// Anomaly detection and statistics iterate fields in this order.
var Fields = []Field{FieldTemperature, FieldPressure, FieldHumidity}

// Reading represents a single timestamped measurement triple from one sensor.
// Temperature is in Celsius, pressure in hPa, humidity in percent.
// A NaN measurement value means "measurement absent"; the timestamp and
// sensor id are always present. Readings are treated as immutable values:
// every transform returns new Reading values and leaves its input untouched.
type Reading struct {
	Time        time.Time `json:"timestamp"`
	SensorID    string    `json:"sensor_id"`
	Temperature float64   `json:"temperature"`
	Pressure    float64   `json:"pressure"`
	Humidity    float64   `json:"humidity"`
}

// NewPlaceholder returns a synthetic reading with all measurement fields
// set to NaN, used to mark a gap in the expected sampling cadence.
func NewPlaceholder(t time.Time, sensorID string) Reading {
	nan := math.NaN()
	return Reading{
		Time:        t,
		SensorID:    sensorID,
		Temperature: nan,
		Pressure:    nan,
		Humidity:    nan,
	}
}

// Value returns the measurement for the given field.
func (r Reading) Value(f Field) float64 {
	switch f {
	case FieldTemperature:
		return r.Temperature
	case FieldPressure:
		return r.Pressure
	case FieldHumidity:
		return r.Humidity
	default:
		return math.NaN()
	}
}

// IsPlaceholder reports whether all three measurement fields are NaN.
func (r Reading) IsPlaceholder() bool {
	return math.IsNaN(r.Temperature) && math.IsNaN(r.Pressure) && math.IsNaN(r.Humidity)
}

// Range represents a closed numeric interval [Min, Max].
type Range struct {
	Min float64 `json:"min" mapstructure:"min"`
	Max float64 `json:"max" mapstructure:"max"`
}

// Contains reports whether v lies inside the closed range.
// NaN is never contained.
func (rg Range) Contains(v float64) bool {
	return v >= rg.Min && v <= rg.Max
}

// Clamp returns v limited to the closed range. NaN stays NaN: neither
// bound wins a NaN comparison, and callers rely on placeholders surviving
// the clamp unchanged.
func (rg Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Max(rg.Min, math.Min(rg.Max, v))
}

// Default valid ranges per measurement field.
var (
	DefaultTemperatureRange = Range{Min: -40.0, Max: 150.0}
	DefaultPressureRange    = Range{Min: 0.0, Max: 1000.0}
	DefaultHumidityRange    = Range{Min: 0.0, Max: 100.0}
)

// DefaultRange returns the default valid range for a field.
func DefaultRange(f Field) Range {
	switch f {
	case FieldTemperature:
		return DefaultTemperatureRange
	case FieldPressure:
		return DefaultPressureRange
	case FieldHumidity:
		return DefaultHumidityRange
	default:
		return Range{Min: math.Inf(-1), Max: math.Inf(1)}
	}
}
