// Package ingest turns raw CSV rows into readings. Parsing is tolerant:
// malformed rows become per-row error messages instead of aborting the
// batch, and the cleaning/analysis pipeline only ever sees fully parsed
// readings.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/tisense/sensorkit/internal/logging"
	"github.com/tisense/sensorkit/internal/models"
	"github.com/tisense/sensorkit/internal/validation"
)

// Required CSV columns.
var requiredColumns = []string{"timestamp", "sensor_id", "temperature", "pressure", "humidity"}

// Row is one parsed CSV record keyed by header name.
type Row map[string]string

// RowError describes why one row could not be parsed.
type RowError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Index, e.Message)
}

// ParseRow parses a single row into a Reading. The timestamp must be
// RFC 3339; the three measurement columns must parse as floats.
func ParseRow(row Row, index int) (models.Reading, error) {
	for _, col := range requiredColumns {
		if _, ok := row[col]; !ok {
			return models.Reading{}, RowError{Index: index, Message: fmt.Sprintf("missing column %q", col)}
		}
	}

	ts, err := time.Parse(time.RFC3339, row["timestamp"])
	if err != nil {
		return models.Reading{}, RowError{Index: index, Message: fmt.Sprintf("invalid timestamp %q", row["timestamp"])}
	}

	values := make(map[string]float64, 3)
	for _, col := range []string{"temperature", "pressure", "humidity"} {
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return models.Reading{}, RowError{Index: index, Message: fmt.Sprintf("invalid %s %q", col, row[col])}
		}
		values[col] = v
	}

	return models.Reading{
		Time:        ts,
		SensorID:    row["sensor_id"],
		Temperature: values["temperature"],
		Pressure:    values["pressure"],
		Humidity:    values["humidity"],
	}, nil
}

// ParseRows parses all rows, collecting readings and per-row errors.
func ParseRows(rows []Row) ([]models.Reading, []RowError) {
	readings := make([]models.Reading, 0, len(rows))
	var errors []RowError

	for index, row := range rows {
		r, err := ParseRow(row, index)
		if err != nil {
			if rowErr, ok := err.(RowError); ok {
				errors = append(errors, rowErr)
			} else {
				errors = append(errors, RowError{Index: index, Message: err.Error()})
			}
			continue
		}
		readings = append(readings, r)
	}

	if len(errors) > 0 {
		logging.Warn("rows failed to parse",
			"failed", len(errors),
			"total", len(rows))
	}

	return readings, errors
}

// readRows reads a CSV file with a header row into keyed rows.
func readRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(records) == 0 {
		return []Row{}, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ReadFile reads a CSV file with a header row and parses every record.
// Per-row parse failures are returned alongside the successfully parsed
// readings; only file-level problems (missing file, malformed CSV) are
// fatal.
func ReadFile(path string) ([]models.Reading, []RowError, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, nil, err
	}

	readings, rowErrors := ParseRows(rows)
	return readings, rowErrors, nil
}

// ValidateRows parses rows and validates the parsed readings, merging
// parse errors and validation errors into one index-sorted result.
// Indices refer to positions in the original rows slice.
func ValidateRows(rows []Row) validation.BatchResult {
	readings := make([]models.Reading, 0, len(rows))
	originalIndex := make([]int, 0, len(rows))
	var parseErrors []validation.ReadingErrors

	for index, row := range rows {
		r, err := ParseRow(row, index)
		if err != nil {
			parseErrors = append(parseErrors, validation.ReadingErrors{
				Index:    index,
				Messages: []string{err.Error()},
			})
			continue
		}
		readings = append(readings, r)
		originalIndex = append(originalIndex, index)
	}

	batch := validation.ValidateBatch(readings)

	// Remap validation error indices back to original row positions.
	allErrors := append([]validation.ReadingErrors{}, parseErrors...)
	for _, e := range batch.Errors {
		allErrors = append(allErrors, validation.ReadingErrors{
			Index:    originalIndex[e.Index],
			Messages: e.Messages,
		})
	}
	sort.Slice(allErrors, func(i, j int) bool {
		return allErrors[i].Index < allErrors[j].Index
	})

	invalid := len(parseErrors) + batch.Invalid
	return validation.BatchResult{
		Total:   len(rows),
		Valid:   len(rows) - invalid,
		Invalid: invalid,
		Errors:  allErrors,
	}
}

// ValidateFile reads a CSV file and validates all rows.
func ValidateFile(path string) (validation.BatchResult, error) {
	rows, err := readRows(path)
	if err != nil {
		return validation.BatchResult{}, err
	}

	return ValidateRows(rows), nil
}
