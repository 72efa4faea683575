package handler

import (
	"errors"
	"net/http"

	domainTelemetry "fleet-monitor/internal/domain/telemetry"
	"fleet-monitor/internal/ingestion"
	"fleet-monitor/internal/usecase/telemetry"
	appErrors "fleet-monitor/pkg/errors"
	"fleet-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MetricsProvider exposes ingestion pipeline counters.
type MetricsProvider interface {
	GetMetrics() ingestion.IngestMetrics
}

type TelemetryHandler struct {
	service *telemetry.Service
	metrics MetricsProvider
}

// NewTelemetryHandler builds the handler. metrics may be nil when no
// ingestion pipeline is running.
func NewTelemetryHandler(service *telemetry.Service, metrics MetricsProvider) *TelemetryHandler {
	return &TelemetryHandler{service: service, metrics: metrics}
}

func (h *TelemetryHandler) RegisterRoutes(router *gin.RouterGroup) {
	tel := router.Group("/telemetry")
	{
		tel.GET("", h.Query)
		tel.GET("/metrics", h.Metrics)
	}
}

func (h *TelemetryHandler) RegisterWriteRoutes(router *gin.RouterGroup) {
	tel := router.Group("/telemetry")
	{
		tel.POST("", h.Ingest)
	}
}

func (h *TelemetryHandler) Ingest(c *gin.Context) {
	var req telemetry.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Ingest(c.Request.Context(), &req)
	if err != nil {
		respondTelemetryError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Observation stored", result)
}

func (h *TelemetryHandler) Query(c *gin.Context) {
	var req telemetry.QueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.Query(c.Request.Context(), &req)
	if err != nil {
		respondTelemetryError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Observations retrieved", result)
}

func (h *TelemetryHandler) Metrics(c *gin.Context) {
	if h.metrics == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "ingestion pipeline not running")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ingestion metrics", h.metrics.GetMetrics())
}

func respondTelemetryError(c *gin.Context, err error) {
	var appErr *appErrors.AppError

	switch {
	case errors.Is(err, domainTelemetry.ErrInvalidIMO),
		errors.Is(err, domainTelemetry.ErrEmptyPayload),
		errors.Is(err, domainTelemetry.ErrInvalidTimeRange):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrStorageUnavailable):
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "storage unavailable")
	case errors.Is(err, appErrors.ErrConstraintViolation):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.As(err, &appErr):
		utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	}
}
