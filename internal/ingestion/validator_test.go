package ingestion

import (
	"encoding/json"
	"testing"
	"time"
)

func validMessage() *TelemetryMessage {
	return &TelemetryMessage{
		VesselIMO: 9074729,
		Timestamp: time.Now(),
		Data:      json.RawMessage(`{"speed": 13.4}`),
	}
}

func TestValidateTelemetry(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*TelemetryMessage)
		wantField string
	}{
		{"valid", func(m *TelemetryMessage) {}, ""},
		{"valid sequential imo", func(m *TelemetryMessage) { m.VesselIMO = 1234567 }, ""},
		{"missing imo", func(m *TelemetryMessage) { m.VesselIMO = 0 }, "vessel_imo"},
		{"imo too short", func(m *TelemetryMessage) { m.VesselIMO = 123456 }, "vessel_imo"},
		{"imo bad checksum", func(m *TelemetryMessage) { m.VesselIMO = 9999999 }, "vessel_imo"},
		{"missing timestamp", func(m *TelemetryMessage) { m.Timestamp = time.Time{} }, "timestamp"},
		{"future timestamp", func(m *TelemetryMessage) { m.Timestamp = time.Now().Add(time.Hour) }, "timestamp"},
		{"missing data", func(m *TelemetryMessage) { m.Data = nil }, "data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validMessage()
			tt.mutate(msg)

			err := ValidateTelemetry(msg)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("ValidateTelemetry() unexpected error: %v", err)
				}
				return
			}

			vErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("ValidateTelemetry() error = %v, want *ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}
