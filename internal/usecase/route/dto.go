package route

import (
	"time"

	domainRoute "fleet-monitor/internal/domain/route"
)

// Request DTOs

type PlanRouteRequest struct {
	Origin          string  `json:"origin" validate:"required,min=2,max=120"`
	Destination     string  `json:"destination" validate:"required,min=2,max=120"`
	Distance        float64 `json:"distance" validate:"required,gt=0"`
	EstimatedTime   float64 `json:"estimated_time" validate:"required,gt=0"`
	FuelConsumption float64 `json:"fuel_consumption" validate:"required,gt=0"`

	// Optional departure position; when present the weather service
	// supplies the weather_conditions label.
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`

	WeatherConditions *string `json:"weather_conditions" validate:"omitempty,max=120"`
}

type CompleteRouteRequest struct {
	ActualTime            float64 `json:"actual_time" validate:"required,gt=0"`
	ActualFuelConsumption float64 `json:"actual_fuel_consumption" validate:"required,gt=0"`
}

type UpdateRouteRequest struct {
	ActualTime            *float64 `json:"actual_time" validate:"omitempty,gt=0"`
	ActualFuelConsumption *float64 `json:"actual_fuel_consumption" validate:"omitempty,gt=0"`
	Status                *string  `json:"status" validate:"omitempty,min=1,max=60"`
}

type EvaluateOptimizationRequest struct {
	OptimizationType string `json:"optimization_type" validate:"required,oneof=time fuel cost weather"`
}

// RecordOptimizationRequest is the write path for external evaluators
// that bring their own cost figures.
type RecordOptimizationRequest struct {
	OptimizationType  string   `json:"optimization_type" validate:"required,min=2,max=60"`
	OriginalCost      *float64 `json:"original_cost" validate:"omitempty,gt=0"`
	OptimizedCost     *float64 `json:"optimized_cost" validate:"omitempty,min=0"`
	SavingsPercentage *float64 `json:"savings_percentage" validate:"omitempty"`
}

type ListRoutesRequest struct {
	Status        *string    `form:"status"`
	CreatedAfter  *time.Time `form:"created_after" time_format:"2006-01-02T15:04:05Z07:00"`
	CreatedBefore *time.Time `form:"created_before" time_format:"2006-01-02T15:04:05Z07:00"`
	Origin        string     `form:"origin"`
	Destination   string     `form:"destination"`
	Page          int        `form:"page"`
	PageSize      int        `form:"page_size"`
}

// Response DTOs

type RouteResponse struct {
	ID                    int64     `json:"id"`
	Origin                string    `json:"origin"`
	Destination           string    `json:"destination"`
	Distance              float64   `json:"distance"`
	EstimatedTime         float64   `json:"estimated_time"`
	FuelConsumption       float64   `json:"fuel_consumption"`
	WeatherConditions     *string   `json:"weather_conditions,omitempty"`
	ActualTime            *float64  `json:"actual_time,omitempty"`
	ActualFuelConsumption *float64  `json:"actual_fuel_consumption,omitempty"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
}

type RouteListResponse struct {
	Routes   []*RouteResponse `json:"routes"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type OptimizationResponse struct {
	ID                int64     `json:"id"`
	RouteID           *int64    `json:"route_id,omitempty"`
	OptimizationType  string    `json:"optimization_type"`
	OriginalCost      *float64  `json:"original_cost,omitempty"`
	OptimizedCost     *float64  `json:"optimized_cost,omitempty"`
	SavingsPercentage *float64  `json:"savings_percentage,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// EvaluationResponse carries the optimized estimate alongside the
// persisted audit record.
type EvaluationResponse struct {
	Record          *OptimizationResponse `json:"record"`
	Distance        float64               `json:"distance"`
	EstimatedTime   float64               `json:"estimated_time"`
	FuelConsumption float64               `json:"fuel_consumption"`
	TotalCost       float64               `json:"total_cost"`
	WeatherRisk     string                `json:"weather_risk"`
}

func ToRouteResponse(rt *domainRoute.Route) *RouteResponse {
	return &RouteResponse{
		ID:                    rt.ID,
		Origin:                rt.Origin,
		Destination:           rt.Destination,
		Distance:              rt.Distance,
		EstimatedTime:         rt.EstimatedTime,
		FuelConsumption:       rt.FuelConsumption,
		WeatherConditions:     rt.WeatherConditions,
		ActualTime:            rt.ActualTime,
		ActualFuelConsumption: rt.ActualFuelConsumption,
		Status:                string(rt.Status),
		CreatedAt:             rt.CreatedAt,
	}
}

func ToOptimizationResponse(rec *domainRoute.OptimizationRecord) *OptimizationResponse {
	return &OptimizationResponse{
		ID:                rec.ID,
		RouteID:           rec.RouteID,
		OptimizationType:  rec.OptimizationType,
		OriginalCost:      rec.OriginalCost,
		OptimizedCost:     rec.OptimizedCost,
		SavingsPercentage: rec.SavingsPercentage,
		CreatedAt:         rec.CreatedAt,
	}
}
