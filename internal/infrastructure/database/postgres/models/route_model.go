package models

import (
	"time"
)

// RouteModel represents the database model for routes. Column names
// match the legacy fleet_monitor schema so existing data stays readable.
type RouteModel struct {
	ID                    int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Origin                string     `gorm:"column:origin;type:text;not null"`
	Destination           string     `gorm:"column:destination;type:text;not null"`
	Distance              float64    `gorm:"column:distance;not null"`
	EstimatedTime         float64    `gorm:"column:estimated_time;not null"`
	FuelConsumption       float64    `gorm:"column:fuel_consumption;not null"`
	WeatherConditions     *string    `gorm:"column:weather_conditions;type:text"`
	CreatedAt             time.Time  `gorm:"column:created_at;type:timestamptz;not null;index"`
	ActualTime            *float64   `gorm:"column:actual_time"`
	ActualFuelConsumption *float64   `gorm:"column:actual_fuel_consumption"`
	Status                string     `gorm:"column:status;type:text;not null;default:'planned';index"`
}

func (RouteModel) TableName() string {
	return "routes"
}

// OptimizationModel represents the database model for the append-only
// route optimization audit trail. route_id is nullable in the schema;
// the repository rejects nil before it gets here.
type OptimizationModel struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RouteID           *int64    `gorm:"column:route_id;index"`
	OptimizationType  string    `gorm:"column:optimization_type;type:text;not null"`
	OriginalCost      *float64  `gorm:"column:original_cost"`
	OptimizedCost     *float64  `gorm:"column:optimized_cost"`
	SavingsPercentage *float64  `gorm:"column:savings_percentage"`
	CreatedAt         time.Time `gorm:"column:created_at;type:timestamptz;not null"`

	Route *RouteModel `gorm:"foreignKey:RouteID"`
}

func (OptimizationModel) TableName() string {
	return "route_optimization_history"
}
