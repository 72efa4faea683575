package telemetry

import (
	"encoding/json"
	"time"

	domainTelemetry "fleet-monitor/internal/domain/telemetry"
)

// Request DTOs

// IngestRequest mirrors the MQTT telemetry envelope for the HTTP write
// path. Data and metadata stay raw.
type IngestRequest struct {
	VesselIMO int64           `json:"vessel_imo" validate:"required,imo"`
	Timestamp *time.Time      `json:"timestamp" validate:"omitempty"`
	Data      json.RawMessage `json:"data" validate:"required"`
	Metadata  json.RawMessage `json:"metadata" validate:"omitempty"`
}

type QueryRequest struct {
	VesselIMO *int64     `form:"vessel_imo"`
	From      *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To        *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
}

// Response DTOs

type ObservationResponse struct {
	ID        int64     `json:"id"`
	VesselIMO int64     `json:"vessel_imo"`
	Timestamp time.Time `json:"timestamp"`
	Data      string    `json:"data"`
	Metadata  *string   `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ObservationListResponse struct {
	Observations []*ObservationResponse `json:"observations"`
	Total        int64                  `json:"total"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
}

func ToObservationResponse(obs *domainTelemetry.Observation) *ObservationResponse {
	return &ObservationResponse{
		ID:        obs.ID,
		VesselIMO: obs.VesselIMO,
		Timestamp: obs.Timestamp,
		Data:      obs.Data,
		Metadata:  obs.Metadata,
		CreatedAt: obs.CreatedAt,
	}
}
