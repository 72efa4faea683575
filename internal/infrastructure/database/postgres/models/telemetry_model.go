package models

import "time"

// TelemetryModel represents the database model for opaque per-vessel ML
// telemetry. data and metadata stay raw text: the store guarantees
// durability and retrieval, never payload structure.
type TelemetryModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	VesselIMO int64     `gorm:"column:vessel_imo;not null;index:idx_ml_data_vessel_time,priority:1"`
	Timestamp time.Time `gorm:"column:timestamp;type:timestamptz;not null;index:idx_ml_data_vessel_time,priority:2"`
	Data      string    `gorm:"column:data;type:text;not null"`
	Metadata  *string   `gorm:"column:metadata;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (TelemetryModel) TableName() string {
	return "ml_data"
}
