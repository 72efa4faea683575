package route

import "errors"

var (
	ErrRouteNotFound       = errors.New("route not found")
	ErrRouteRequired       = errors.New("optimization record requires a route")
	ErrEmptyUpdate         = errors.New("update contains no fields")
	ErrSavingsMismatch     = errors.New("savings percentage does not match costs")
	ErrSamePorts           = errors.New("origin and destination are the same port")
	ErrInvalidOptimization = errors.New("unknown optimization type")
)
