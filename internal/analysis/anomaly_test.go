package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/tisense/sensorkit/internal/models"
)

func TestDetectAnomalies_Spike(t *testing.T) {
	// Nine readings at 20.0 and one at 100.0: mean 28, population std 24,
	// z(100) = 3.0 and z(20) = 1/3.
	var readings []models.Reading
	for i := 0; i < 9; i++ {
		readings = append(readings, makeReading(baseTime.Add(time.Duration(i)*time.Minute), "TI-A1B2-C3D4", 20.0, 500, 50))
	}
	readings = append(readings, makeReading(baseTime.Add(9*time.Minute), "TI-A1B2-C3D4", 100.0, 500, 50))

	anomalies := DetectAnomalies(readings, 2.0)

	if len(anomalies) != 1 {
		t.Fatalf("Expected exactly one anomaly, got %d", len(anomalies))
	}

	a := anomalies[0]
	if a.Field != models.FieldTemperature {
		t.Errorf("Expected temperature anomaly, got %s", a.Field)
	}
	if a.Value != 100.0 {
		t.Errorf("Expected anomalous value 100, got %v", a.Value)
	}
	if a.ZScore != 3.0 {
		t.Errorf("Expected z-score exactly 3.0, got %v", a.ZScore)
	}
	if a.Reading.Time != baseTime.Add(9*time.Minute) {
		t.Errorf("Expected anomaly to reference the offending reading")
	}
}

func TestDetectAnomalies_ThresholdIsStrict(t *testing.T) {
	// Two temperatures 0 and 10: mean 5, population std 5, both z exactly 1.
	readings := []models.Reading{
		makeReading(baseTime, "TI-A1B2-C3D4", 0, 500, 50),
		makeReading(baseTime.Add(time.Minute), "TI-A1B2-C3D4", 10, 500, 50),
	}

	anomalies := DetectAnomalies(readings, 1.0)

	if len(anomalies) != 0 {
		t.Errorf("Expected no anomalies at exact threshold, got %d", len(anomalies))
	}
}

func TestDetectAnomalies_UniformSample(t *testing.T) {
	var readings []models.Reading
	for i := 0; i < 10; i++ {
		readings = append(readings, makeReading(baseTime.Add(time.Duration(i)*time.Minute), "TI-A1B2-C3D4", 20, 500, 50))
	}

	anomalies := DetectAnomalies(readings, 2.0)

	if len(anomalies) != 0 {
		t.Errorf("Expected no anomalies for uniform sample (std 0), got %d", len(anomalies))
	}
}

func TestDetectAnomalies_SkipsNaN(t *testing.T) {
	nan := math.NaN()
	readings := []models.Reading{
		makeReading(baseTime, "TI-A1B2-C3D4", 20, 500, 50),
		makeReading(baseTime.Add(time.Minute), "TI-A1B2-C3D4", nan, 501, 51),
		makeReading(baseTime.Add(2*time.Minute), "TI-A1B2-C3D4", 21, 502, 49),
	}

	anomalies := DetectAnomalies(readings, 2.0)

	for _, a := range anomalies {
		if math.IsNaN(a.Value) {
			t.Errorf("NaN value must never be flagged as anomaly")
		}
	}
}

func TestDetectAnomalies_Order(t *testing.T) {
	// One reading anomalous in both pressure and humidity, followed by one
	// anomalous in temperature. Output order: input order, then field order.
	var readings []models.Reading
	for i := 0; i < 8; i++ {
		readings = append(readings, makeReading(baseTime.Add(time.Duration(i)*time.Minute), "TI-A1B2-C3D4", 20, 500, 50))
	}
	readings = append(readings, makeReading(baseTime.Add(8*time.Minute), "TI-A1B2-C3D4", 20, 900, 99))
	readings = append(readings, makeReading(baseTime.Add(9*time.Minute), "TI-A1B2-C3D4", 90, 500, 50))

	anomalies := DetectAnomalies(readings, 2.0)

	if len(anomalies) != 3 {
		t.Fatalf("Expected 3 anomalies, got %d", len(anomalies))
	}
	if anomalies[0].Field != models.FieldPressure {
		t.Errorf("Expected first anomaly pressure, got %s", anomalies[0].Field)
	}
	if anomalies[1].Field != models.FieldHumidity {
		t.Errorf("Expected second anomaly humidity, got %s", anomalies[1].Field)
	}
	if anomalies[2].Field != models.FieldTemperature {
		t.Errorf("Expected third anomaly temperature, got %s", anomalies[2].Field)
	}
}

func TestDetectAnomalies_EmptyInput(t *testing.T) {
	anomalies := DetectAnomalies(nil, 2.0)

	if len(anomalies) != 0 {
		t.Errorf("Expected no anomalies for empty input, got %d", len(anomalies))
	}
}

func TestZScore_ZeroStd(t *testing.T) {
	if z := ZScore(10, 5, 0); z != 0 {
		t.Errorf("Expected z-score 0 for zero std, got %v", z)
	}
}
