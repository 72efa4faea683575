package ingestion

import (
	"fmt"
	"time"

	"fleet-monitor/pkg/utils"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Message)
}

// maxClockSkew bounds how far in the future an observation timestamp
// may sit before we treat it as a misconfigured vessel clock.
const maxClockSkew = 5 * time.Minute

// ValidateTelemetry validates a telemetry message before it is queued
// for persistence. The data payload itself stays opaque; only the
// envelope is checked.
func ValidateTelemetry(msg *TelemetryMessage) error {
	if msg.VesselIMO == 0 {
		return &ValidationError{Field: "vessel_imo", Message: "vessel_imo is required"}
	}
	if !utils.IsValidIMO(msg.VesselIMO) {
		return &ValidationError{Field: "vessel_imo", Message: "vessel_imo fails the IMO checksum"}
	}

	if msg.Timestamp.IsZero() {
		return &ValidationError{Field: "timestamp", Message: "timestamp is required"}
	}
	if msg.Timestamp.After(time.Now().Add(maxClockSkew)) {
		return &ValidationError{Field: "timestamp", Message: "timestamp is too far in the future"}
	}

	if len(msg.Data) == 0 {
		return &ValidationError{Field: "data", Message: "data payload is required"}
	}

	return nil
}
