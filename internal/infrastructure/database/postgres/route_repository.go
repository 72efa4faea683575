package postgres

import (
	"context"
	"errors"
	"time"

	"fleet-monitor/internal/domain/route"
	"fleet-monitor/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type RouteRepository struct {
	db *DB
}

func NewRouteRepository(db *DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) Create(ctx context.Context, rt *route.Route) error {
	if rt.Status == "" {
		rt.Status = route.StatusPlanned
	}
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = time.Now()
	}

	dbModel := toRouteModel(rt)
	dbModel.ID = 0
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return translateError("create route", err)
	}

	rt.ID = dbModel.ID
	rt.CreatedAt = dbModel.CreatedAt

	return nil
}

func (r *RouteRepository) GetByID(ctx context.Context, routeID int64) (*route.Route, error) {
	var dbModel models.RouteModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", routeID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, route.ErrRouteNotFound
	}
	if err != nil {
		return nil, translateError("get route", err)
	}

	return toRouteEntity(&dbModel), nil
}

// Update applies a completion or status update. Only the fields present
// in the update are written; everything else on the row stays as it is.
func (r *RouteRepository) Update(ctx context.Context, routeID int64, update *route.CompletionUpdate) error {
	changes := map[string]interface{}{}
	if update.ActualTime != nil {
		changes["actual_time"] = *update.ActualTime
	}
	if update.ActualFuelConsumption != nil {
		changes["actual_fuel_consumption"] = *update.ActualFuelConsumption
	}
	if update.Status != nil {
		changes["status"] = string(*update.Status)
	}
	if len(changes) == 0 {
		return route.ErrEmptyUpdate
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.RouteModel{}).
		Where("id = ?", routeID).
		Updates(changes)

	if result.Error != nil {
		return translateError("update route", result.Error)
	}
	if result.RowsAffected == 0 {
		return route.ErrRouteNotFound
	}

	return nil
}

func (r *RouteRepository) List(ctx context.Context, filter *route.Filter) ([]*route.Route, int64, error) {
	var dbModels []models.RouteModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.RouteModel{})

	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", filter.CreatedBefore)
	}
	if filter.Origin != "" {
		db = db.Where("origin = ?", filter.Origin)
	}
	if filter.Destination != "" {
		db = db.Where("destination = ?", filter.Destination)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, translateError("count routes", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	err := db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, translateError("list routes", err)
	}

	routes := make([]*route.Route, len(dbModels))
	for i := range dbModels {
		routes[i] = toRouteEntity(&dbModels[i])
	}

	return routes, total, nil
}

// CreateOptimization appends one audit row. The schema permits a null
// route_id but this boundary does not: orphan audit rows are rejected
// so the trail always resolves to a route.
func (r *RouteRepository) CreateOptimization(ctx context.Context, record *route.OptimizationRecord) error {
	if record.RouteID == nil {
		return route.ErrRouteRequired
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	dbModel := toOptimizationModel(record)
	dbModel.ID = 0
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isForeignKeyViolation(err) {
			return route.ErrRouteNotFound
		}
		return translateError("create optimization record", err)
	}

	record.ID = dbModel.ID
	record.CreatedAt = dbModel.CreatedAt

	return nil
}

func (r *RouteRepository) ListOptimizationsByRoute(ctx context.Context, routeID int64) ([]*route.OptimizationRecord, error) {
	var dbModels []models.OptimizationModel

	err := r.db.DB.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("created_at ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, translateError("list optimization history", err)
	}

	records := make([]*route.OptimizationRecord, len(dbModels))
	for i := range dbModels {
		records[i] = toOptimizationEntity(&dbModels[i])
	}

	return records, nil
}

func toRouteModel(rt *route.Route) *models.RouteModel {
	return &models.RouteModel{
		ID:                    rt.ID,
		Origin:                rt.Origin,
		Destination:           rt.Destination,
		Distance:              rt.Distance,
		EstimatedTime:         rt.EstimatedTime,
		FuelConsumption:       rt.FuelConsumption,
		WeatherConditions:     rt.WeatherConditions,
		CreatedAt:             rt.CreatedAt,
		ActualTime:            rt.ActualTime,
		ActualFuelConsumption: rt.ActualFuelConsumption,
		Status:                string(rt.Status),
	}
}

func toRouteEntity(m *models.RouteModel) *route.Route {
	return &route.Route{
		ID:                    m.ID,
		Origin:                m.Origin,
		Destination:           m.Destination,
		Distance:              m.Distance,
		EstimatedTime:         m.EstimatedTime,
		FuelConsumption:       m.FuelConsumption,
		WeatherConditions:     m.WeatherConditions,
		CreatedAt:             m.CreatedAt,
		ActualTime:            m.ActualTime,
		ActualFuelConsumption: m.ActualFuelConsumption,
		Status:                route.Status(m.Status),
	}
}

func toOptimizationModel(rec *route.OptimizationRecord) *models.OptimizationModel {
	return &models.OptimizationModel{
		ID:                rec.ID,
		RouteID:           rec.RouteID,
		OptimizationType:  rec.OptimizationType,
		OriginalCost:      rec.OriginalCost,
		OptimizedCost:     rec.OptimizedCost,
		SavingsPercentage: rec.SavingsPercentage,
		CreatedAt:         rec.CreatedAt,
	}
}

func toOptimizationEntity(m *models.OptimizationModel) *route.OptimizationRecord {
	return &route.OptimizationRecord{
		ID:                m.ID,
		RouteID:           m.RouteID,
		OptimizationType:  m.OptimizationType,
		OriginalCost:      m.OriginalCost,
		OptimizedCost:     m.OptimizedCost,
		SavingsPercentage: m.SavingsPercentage,
		CreatedAt:         m.CreatedAt,
	}
}
