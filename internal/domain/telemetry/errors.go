package telemetry

import "errors"

var (
	ErrInvalidIMO       = errors.New("invalid IMO number")
	ErrEmptyPayload     = errors.New("telemetry payload is empty")
	ErrInvalidTimeRange = errors.New("time range end precedes start")
)
