package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPlaceholder(t *testing.T) {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewPlaceholder(ts, "TI-A1B2-C3D4")

	assert.Equal(t, ts, r.Time)
	assert.Equal(t, "TI-A1B2-C3D4", r.SensorID)
	assert.True(t, r.IsPlaceholder())
}

func TestReading_Value(t *testing.T) {
	r := Reading{Temperature: 1, Pressure: 2, Humidity: 3}

	assert.Equal(t, 1.0, r.Value(FieldTemperature))
	assert.Equal(t, 2.0, r.Value(FieldPressure))
	assert.Equal(t, 3.0, r.Value(FieldHumidity))
	assert.True(t, math.IsNaN(r.Value(Field("voltage"))))
}

func TestRange_Clamp(t *testing.T) {
	rg := Range{Min: 0, Max: 100}

	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"below min", -5, 0},
		{"above max", 150, 100},
		{"in range", 42, 42},
		{"at min", 0, 0},
		{"at max", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rg.Clamp(tt.value))
		})
	}

	// NaN must resolve to NaN, not to either bound.
	assert.True(t, math.IsNaN(rg.Clamp(math.NaN())))
}

func TestRange_Contains(t *testing.T) {
	rg := Range{Min: -40, Max: 150}

	assert.True(t, rg.Contains(-40))
	assert.True(t, rg.Contains(150))
	assert.True(t, rg.Contains(0))
	assert.False(t, rg.Contains(-40.1))
	assert.False(t, rg.Contains(150.1))
	assert.False(t, rg.Contains(math.NaN()))
}

func TestFields_CanonicalOrder(t *testing.T) {
	assert.Equal(t, []Field{FieldTemperature, FieldPressure, FieldHumidity}, Fields)
}
