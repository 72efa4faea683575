package ingestion

import (
	"os"
	"testing"
	"time"

	"fleet-monitor/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("test"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestParseTelemetry(t *testing.T) {
	payload := []byte(`{
		"vessel_imo": 9074729,
		"timestamp": "2026-03-01T12:00:00Z",
		"data": {"rpm": 82.5, "load": 0.71},
		"metadata": {"source": "engine-bus"}
	}`)

	msg, err := ParseTelemetry(payload)
	if err != nil {
		t.Fatalf("ParseTelemetry() error: %v", err)
	}

	if msg.VesselIMO != 9074729 {
		t.Errorf("VesselIMO = %d, want 9074729", msg.VesselIMO)
	}
	want := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if !msg.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", msg.Timestamp, want)
	}
	// the data payload must survive verbatim, not be re-marshaled
	if string(msg.Data) != `{"rpm": 82.5, "load": 0.71}` {
		t.Errorf("Data = %s, not preserved verbatim", msg.Data)
	}
	if string(msg.Metadata) != `{"source": "engine-bus"}` {
		t.Errorf("Metadata = %s, not preserved verbatim", msg.Metadata)
	}
}

func TestParseTelemetryDefaultsTimestamp(t *testing.T) {
	before := time.Now()
	msg, err := ParseTelemetry([]byte(`{"vessel_imo": 9074729, "data": {}}`))
	after := time.Now()

	if err != nil {
		t.Fatalf("ParseTelemetry() error: %v", err)
	}
	if msg.Timestamp.Before(before) || msg.Timestamp.After(after) {
		t.Errorf("defaulted timestamp %v outside call window [%v, %v]", msg.Timestamp, before, after)
	}
}

func TestParseTelemetryRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseTelemetry([]byte(`{"vessel_imo": `)); err == nil {
		t.Error("ParseTelemetry() accepted malformed JSON")
	}
}
