package route

import (
	"context"
	"math"
	"time"

	domainRoute "fleet-monitor/internal/domain/route"
	"fleet-monitor/internal/logger"
	"fleet-monitor/internal/optimizer"
	"fleet-monitor/internal/weather"
	appErrors "fleet-monitor/pkg/errors"
	"fleet-monitor/pkg/utils"

	"go.uber.org/zap"
)

// savingsTolerance is the float slack allowed between a caller-supplied
// savings percentage and the one derived from the costs.
const savingsTolerance = 1e-6

// WeatherService supplies a weather report for a position. Satisfied by
// weather.Client.
type WeatherService interface {
	VesselWeather(ctx context.Context, lat, lon float64, hours int) *weather.Report
}

// Service implements route use cases
type Service struct {
	routeRepo domainRoute.Repository
	weather   WeatherService
	evaluator *optimizer.Evaluator
}

// NewService creates a new route service. The weather service may be
// nil when no API key is configured.
func NewService(routeRepo domainRoute.Repository, weatherSvc WeatherService) *Service {
	return &Service{
		routeRepo: routeRepo,
		weather:   weatherSvc,
		evaluator: optimizer.NewEvaluator(),
	}
}

// PlanRoute records a new planned voyage leg. When a departure position
// is given and the weather service is available, the current condition
// label is attached to the route.
func (s *Service) PlanRoute(ctx context.Context, req *PlanRouteRequest) (*RouteResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if req.Origin == req.Destination {
		return nil, domainRoute.ErrSamePorts
	}

	conditions := req.WeatherConditions
	if conditions == nil && s.weather != nil && req.Latitude != nil && req.Longitude != nil {
		report := s.weather.VesselWeather(ctx, *req.Latitude, *req.Longitude, 24)
		label := string(report.Current)
		conditions = &label
	}

	rt := &domainRoute.Route{
		Origin:            req.Origin,
		Destination:       req.Destination,
		Distance:          req.Distance,
		EstimatedTime:     req.EstimatedTime,
		FuelConsumption:   req.FuelConsumption,
		WeatherConditions: conditions,
		Status:            domainRoute.StatusPlanned,
		CreatedAt:         time.Now(),
	}

	if err := s.routeRepo.Create(ctx, rt); err != nil {
		return nil, err
	}

	logger.Info("Route planned",
		zap.Int64("route_id", rt.ID),
		zap.String("origin", rt.Origin),
		zap.String("destination", rt.Destination),
		zap.Float64("distance", rt.Distance),
	)

	return ToRouteResponse(rt), nil
}

func (s *Service) GetRoute(ctx context.Context, routeID int64) (*RouteResponse, error) {
	rt, err := s.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	return ToRouteResponse(rt), nil
}

func (s *Service) ListRoutes(ctx context.Context, req *ListRoutesRequest) (*RouteListResponse, error) {
	filter := &domainRoute.Filter{
		CreatedAfter:  req.CreatedAfter,
		CreatedBefore: req.CreatedBefore,
		Origin:        req.Origin,
		Destination:   req.Destination,
		Page:          req.Page,
		PageSize:      req.PageSize,
	}
	if req.Status != nil {
		status := domainRoute.Status(*req.Status)
		filter.Status = &status
	}

	routes, total, err := s.routeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*RouteResponse, len(routes))
	for i, rt := range routes {
		responses[i] = ToRouteResponse(rt)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &RouteListResponse{
		Routes:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// CompleteRoute records the actual voyage figures and moves the route
// to completed. Other columns are left untouched.
func (s *Service) CompleteRoute(ctx context.Context, routeID int64, req *CompleteRouteRequest) (*RouteResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	status := domainRoute.StatusCompleted
	update := &domainRoute.CompletionUpdate{
		ActualTime:            &req.ActualTime,
		ActualFuelConsumption: &req.ActualFuelConsumption,
		Status:                &status,
	}

	if err := s.routeRepo.Update(ctx, routeID, update); err != nil {
		return nil, err
	}

	logger.Info("Route completed",
		zap.Int64("route_id", routeID),
		zap.Float64("actual_time", req.ActualTime),
		zap.Float64("actual_fuel_consumption", req.ActualFuelConsumption),
	)

	return s.GetRoute(ctx, routeID)
}

// UpdateRoute applies a partial update. Status is an open label set, so
// any non-empty value passes through.
func (s *Service) UpdateRoute(ctx context.Context, routeID int64, req *UpdateRouteRequest) (*RouteResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	update := &domainRoute.CompletionUpdate{
		ActualTime:            req.ActualTime,
		ActualFuelConsumption: req.ActualFuelConsumption,
	}
	if req.Status != nil {
		status := domainRoute.Status(*req.Status)
		update.Status = &status
	}

	if err := s.routeRepo.Update(ctx, routeID, update); err != nil {
		return nil, err
	}

	return s.GetRoute(ctx, routeID)
}

// EvaluateOptimization runs the built-in evaluator against a stored
// route and appends the outcome to the audit trail.
func (s *Service) EvaluateOptimization(ctx context.Context, routeID int64, req *EvaluateOptimizationRequest) (*EvaluationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	priority, err := optimizer.ParsePriority(req.OptimizationType)
	if err != nil {
		return nil, err
	}

	rt, err := s.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		return nil, err
	}

	condition := weather.ConditionCalm
	if rt.WeatherConditions != nil {
		condition = weather.ConditionFromLabel(*rt.WeatherConditions)
	}

	baseline := s.evaluator.Baseline(rt.Distance, condition)
	optimized := s.evaluator.Optimize(rt.Distance, condition, priority)

	originalCost := baseline.TotalCost
	optimizedCost := optimized.TotalCost
	savings, _ := domainRoute.SavingsPercentage(&originalCost, &optimizedCost)

	record := &domainRoute.OptimizationRecord{
		RouteID:           &rt.ID,
		OptimizationType:  string(priority),
		OriginalCost:      &originalCost,
		OptimizedCost:     &optimizedCost,
		SavingsPercentage: &savings,
	}

	if err := s.routeRepo.CreateOptimization(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("Optimization evaluated",
		zap.Int64("route_id", rt.ID),
		zap.String("optimization_type", string(priority)),
		zap.Float64("savings_percentage", savings),
	)

	return &EvaluationResponse{
		Record:          ToOptimizationResponse(record),
		Distance:        optimized.Distance,
		EstimatedTime:   optimized.EstimatedTime,
		FuelConsumption: optimized.FuelConsumption,
		TotalCost:       optimized.TotalCost,
		WeatherRisk:     optimized.WeatherRisk,
	}, nil
}

// RecordOptimization appends an audit row supplied by an external
// evaluator. When both costs are present the savings percentage must
// agree with them; a missing savings value is derived.
func (s *Service) RecordOptimization(ctx context.Context, routeID int64, req *RecordOptimizationRequest) (*OptimizationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	savings := req.SavingsPercentage
	if derived, ok := domainRoute.SavingsPercentage(req.OriginalCost, req.OptimizedCost); ok {
		if savings == nil {
			savings = &derived
		} else if math.Abs(*savings-derived) > savingsTolerance {
			return nil, domainRoute.ErrSavingsMismatch
		}
	}

	record := &domainRoute.OptimizationRecord{
		RouteID:           &routeID,
		OptimizationType:  req.OptimizationType,
		OriginalCost:      req.OriginalCost,
		OptimizedCost:     req.OptimizedCost,
		SavingsPercentage: savings,
	}

	if err := s.routeRepo.CreateOptimization(ctx, record); err != nil {
		return nil, err
	}

	return ToOptimizationResponse(record), nil
}

// GetOptimizationHistory returns the audit trail for a route in
// chronological order.
func (s *Service) GetOptimizationHistory(ctx context.Context, routeID int64) ([]*OptimizationResponse, error) {
	if _, err := s.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, err
	}

	records, err := s.routeRepo.ListOptimizationsByRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	responses := make([]*OptimizationResponse, len(records))
	for i, rec := range records {
		responses[i] = ToOptimizationResponse(rec)
	}
	return responses, nil
}
