package route

import (
	"context"
	"time"
)

// Repository defines the persistence operations for routes and their
// optimization history.
type Repository interface {
	Create(ctx context.Context, route *Route) error
	GetByID(ctx context.Context, routeID int64) (*Route, error)
	Update(ctx context.Context, routeID int64, update *CompletionUpdate) error
	List(ctx context.Context, filter *Filter) ([]*Route, int64, error)

	CreateOptimization(ctx context.Context, record *OptimizationRecord) error
	ListOptimizationsByRoute(ctx context.Context, routeID int64) ([]*OptimizationRecord, error)
}

// Filter represents filtering options for listing routes
type Filter struct {
	Status *Status

	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	Origin      string
	Destination string

	Page     int
	PageSize int
}
