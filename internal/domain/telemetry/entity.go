package telemetry

import "time"

// Observation is one opaque telemetry record captured for a vessel. The
// store keeps Data and Metadata as raw serialized text and never
// inspects them; schema is a concern of the ML pipeline that reads them.
type Observation struct {
	ID        int64
	VesselIMO int64
	Timestamp time.Time
	Data      string
	Metadata  *string
	CreatedAt time.Time
}
