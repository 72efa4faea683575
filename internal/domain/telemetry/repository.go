package telemetry

import (
	"context"
	"time"
)

// Repository defines the persistence operations for telemetry
// observations. The record set is append-only: there is no update or
// delete path.
type Repository interface {
	Insert(ctx context.Context, obs *Observation) error
	InsertBatch(ctx context.Context, obs []*Observation) error
	Query(ctx context.Context, filter *Filter) ([]*Observation, int64, error)
}

// Filter narrows an observation query. The timestamp bounds are
// inclusive on both ends.
type Filter struct {
	VesselIMO *int64
	From      *time.Time
	To        *time.Time

	Page     int
	PageSize int
}
