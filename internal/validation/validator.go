// Package validation checks readings against the sensor domain rules:
// sensor id format and per-field physical ranges. Validation never rejects
// a reading on the toolkit's behalf; it reports error messages and leaves
// the decision to the caller.
package validation

import (
	"fmt"
	"regexp"

	"github.com/tisense/sensorkit/internal/logging"
	"github.com/tisense/sensorkit/internal/models"
)

// sensorIDPattern matches identifiers of the form TI-XXXX-YYYY where X and
// Y are uppercase alphanumeric characters.
var sensorIDPattern = regexp.MustCompile(`^TI-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

// rangeCheck pairs a display name with the field it validates.
type rangeCheck struct {
	name  string
	field models.Field
}

var rangeChecks = []rangeCheck{
	{"Temperature", models.FieldTemperature},
	{"Pressure", models.FieldPressure},
	{"Humidity", models.FieldHumidity},
}

// ReadingErrors holds the validation messages for one reading in a batch.
type ReadingErrors struct {
	Index    int      `json:"index"`
	Messages []string `json:"messages"`
}

// BatchResult summarizes validation of a batch of readings.
type BatchResult struct {
	Total   int             `json:"total"`
	Valid   int             `json:"valid"`
	Invalid int             `json:"invalid"`
	Errors  []ReadingErrors `json:"errors"`
}

// ValidateReading validates a single reading against the domain rules.
// It returns one message per violated rule; an empty slice means valid.
func ValidateReading(r models.Reading) []string {
	var errors []string

	if !sensorIDPattern.MatchString(r.SensorID) {
		errors = append(errors, fmt.Sprintf("Invalid sensor_id '%s': must match TI-XXXX-YYYY pattern", r.SensorID))
	}

	for _, check := range rangeChecks {
		value := r.Value(check.field)
		rng := models.DefaultRange(check.field)
		if !rng.Contains(value) {
			errors = append(errors, fmt.Sprintf("%s %v out of range [%v, %v]", check.name, value, rng.Min, rng.Max))
		}
	}

	return errors
}

// ValidateBatch validates every reading and returns a summary with
// per-reading error messages indexed by input position.
func ValidateBatch(readings []models.Reading) BatchResult {
	result := BatchResult{
		Total:  len(readings),
		Errors: []ReadingErrors{},
	}

	for index, r := range readings {
		messages := ValidateReading(r)
		if len(messages) > 0 {
			result.Invalid++
			result.Errors = append(result.Errors, ReadingErrors{Index: index, Messages: messages})
		} else {
			result.Valid++
		}
	}

	if result.Invalid > 0 {
		logging.Warn("readings failed validation",
			"invalid", result.Invalid,
			"total", result.Total)
	}

	return result
}
