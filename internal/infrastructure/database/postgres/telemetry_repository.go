package postgres

import (
	"context"
	"time"

	"fleet-monitor/internal/domain/telemetry"
	"fleet-monitor/internal/infrastructure/database/postgres/models"
)

type TelemetryRepository struct {
	db *DB
}

func NewTelemetryRepository(db *DB) *TelemetryRepository {
	return &TelemetryRepository{db: db}
}

func (r *TelemetryRepository) Insert(ctx context.Context, obs *telemetry.Observation) error {
	if obs.CreatedAt.IsZero() {
		obs.CreatedAt = time.Now()
	}

	dbModel := toTelemetryModel(obs)
	dbModel.ID = 0
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return translateError("insert observation", err)
	}

	obs.ID = dbModel.ID
	obs.CreatedAt = dbModel.CreatedAt

	return nil
}

func (r *TelemetryRepository) InsertBatch(ctx context.Context, obs []*telemetry.Observation) error {
	if len(obs) == 0 {
		return nil
	}

	now := time.Now()
	dbModels := make([]models.TelemetryModel, len(obs))
	for i, o := range obs {
		if o.CreatedAt.IsZero() {
			o.CreatedAt = now
		}
		dbModels[i] = *toTelemetryModel(o)
		dbModels[i].ID = 0
	}

	if err := r.db.DB.WithContext(ctx).CreateInBatches(dbModels, 500).Error; err != nil {
		return translateError("insert observation batch", err)
	}

	return nil
}

// Query returns observations matching the filter ordered by timestamp
// ascending. The time bounds are inclusive on both ends.
func (r *TelemetryRepository) Query(ctx context.Context, filter *telemetry.Filter) ([]*telemetry.Observation, int64, error) {
	var dbModels []models.TelemetryModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.TelemetryModel{})

	if filter.VesselIMO != nil {
		db = db.Where("vessel_imo = ?", *filter.VesselIMO)
	}
	if filter.From != nil {
		db = db.Where("timestamp >= ?", filter.From)
	}
	if filter.To != nil {
		db = db.Where("timestamp <= ?", filter.To)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, translateError("count observations", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}

	err := db.Order("timestamp ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, translateError("query observations", err)
	}

	observations := make([]*telemetry.Observation, len(dbModels))
	for i := range dbModels {
		observations[i] = toTelemetryEntity(&dbModels[i])
	}

	return observations, total, nil
}

func toTelemetryModel(obs *telemetry.Observation) *models.TelemetryModel {
	return &models.TelemetryModel{
		ID:        obs.ID,
		VesselIMO: obs.VesselIMO,
		Timestamp: obs.Timestamp,
		Data:      obs.Data,
		Metadata:  obs.Metadata,
		CreatedAt: obs.CreatedAt,
	}
}

func toTelemetryEntity(m *models.TelemetryModel) *telemetry.Observation {
	return &telemetry.Observation{
		ID:        m.ID,
		VesselIMO: m.VesselIMO,
		Timestamp: m.Timestamp,
		Data:      m.Data,
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt,
	}
}
