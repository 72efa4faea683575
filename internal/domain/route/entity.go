package route

import (
	"time"
)

// Status labels the lifecycle position of a route. The column is
// free-text on purpose: other writers may introduce labels this service
// does not know about, so unknown values round-trip untouched.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Route represents one planned or completed voyage leg between two ports.
type Route struct {
	ID int64

	Origin      string
	Destination string

	// Planning estimates
	Distance        float64 // nautical miles
	EstimatedTime   float64 // hours
	FuelConsumption float64 // tons

	WeatherConditions *string

	// Filled when the voyage completes
	ActualTime            *float64
	ActualFuelConsumption *float64

	Status    Status
	CreatedAt time.Time
}

// Completed reports whether the actual figures have been recorded.
func (r *Route) Completed() bool {
	return r.Status == StatusCompleted && r.ActualTime != nil && r.ActualFuelConsumption != nil
}

// OptimizationRecord is one append-only audit entry for a cost
// optimization evaluated against a route.
type OptimizationRecord struct {
	ID      int64
	RouteID *int64

	OptimizationType  string
	OriginalCost      *float64
	OptimizedCost     *float64
	SavingsPercentage *float64

	CreatedAt time.Time
}

// SavingsPercentage derives the savings of optimized over original cost.
// Returns false when either cost is missing or original is zero.
func SavingsPercentage(originalCost, optimizedCost *float64) (float64, bool) {
	if originalCost == nil || optimizedCost == nil || *originalCost == 0 {
		return 0, false
	}
	return (*originalCost - *optimizedCost) / *originalCost * 100, true
}

// CompletionUpdate carries the fields a completion or status update may
// touch. Nil fields are left as they are.
type CompletionUpdate struct {
	ActualTime            *float64
	ActualFuelConsumption *float64
	Status                *Status
}
