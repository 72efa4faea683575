package telemetry

import (
	"context"
	"time"

	domainTelemetry "fleet-monitor/internal/domain/telemetry"
	"fleet-monitor/internal/logger"
	appErrors "fleet-monitor/pkg/errors"
	"fleet-monitor/pkg/utils"

	"go.uber.org/zap"
)

// Service implements telemetry use cases
type Service struct {
	telemetryRepo domainTelemetry.Repository
}

func NewService(telemetryRepo domainTelemetry.Repository) *Service {
	return &Service{telemetryRepo: telemetryRepo}
}

// Ingest stores one observation from the HTTP write path. A missing
// timestamp defaults to the receive time.
func (s *Service) Ingest(ctx context.Context, req *IngestRequest) (*ObservationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	ts := time.Now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	obs := &domainTelemetry.Observation{
		VesselIMO: req.VesselIMO,
		Timestamp: ts,
		Data:      string(req.Data),
	}
	if len(req.Metadata) > 0 {
		meta := string(req.Metadata)
		obs.Metadata = &meta
	}

	if err := s.telemetryRepo.Insert(ctx, obs); err != nil {
		return nil, err
	}

	logger.Debug("Observation ingested",
		zap.Int64("vessel_imo", obs.VesselIMO),
		zap.Time("timestamp", obs.Timestamp),
	)

	return ToObservationResponse(obs), nil
}

// Query returns observations ordered by timestamp ascending. The time
// bounds are inclusive.
func (s *Service) Query(ctx context.Context, req *QueryRequest) (*ObservationListResponse, error) {
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return nil, domainTelemetry.ErrInvalidTimeRange
	}
	if req.VesselIMO != nil && !utils.IsValidIMO(*req.VesselIMO) {
		return nil, domainTelemetry.ErrInvalidIMO
	}

	filter := &domainTelemetry.Filter{
		VesselIMO: req.VesselIMO,
		From:      req.From,
		To:        req.To,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}

	observations, total, err := s.telemetryRepo.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*ObservationResponse, len(observations))
	for i, obs := range observations {
		responses[i] = ToObservationResponse(obs)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}

	return &ObservationListResponse{
		Observations: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}
