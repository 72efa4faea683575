package ingestion

import (
	"encoding/json"
	"time"
)

// TelemetryMessage is the wire format vessels publish on
// fleet/{imo}/telemetry. Data and Metadata are kept as raw JSON and
// stored verbatim; their schema belongs to the ML pipeline, not to us.
type TelemetryMessage struct {
	VesselIMO int64           `json:"vessel_imo"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// ParseTelemetry parses a JSON payload into a TelemetryMessage. A
// missing timestamp defaults to the receive time.
func ParseTelemetry(payload []byte) (*TelemetryMessage, error) {
	var msg TelemetryMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, err
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return &msg, nil
}
