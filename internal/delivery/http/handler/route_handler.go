package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainRoute "fleet-monitor/internal/domain/route"
	"fleet-monitor/internal/usecase/route"
	appErrors "fleet-monitor/pkg/errors"
	"fleet-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service *route.Service
}

func NewRouteHandler(service *route.Service) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) RegisterRoutes(router *gin.RouterGroup) {
	routes := router.Group("/routes")
	{
		routes.GET("", h.ListRoutes)
		routes.GET("/:id", h.GetRoute)
		routes.GET("/:id/optimizations", h.GetOptimizationHistory)
	}
}

// RegisterWriteRoutes mounts the mutating endpoints; the router guards
// the group with the API key middleware.
func (h *RouteHandler) RegisterWriteRoutes(router *gin.RouterGroup) {
	routes := router.Group("/routes")
	{
		routes.POST("", h.PlanRoute)
		routes.PUT("/:id", h.UpdateRoute)
		routes.POST("/:id/complete", h.CompleteRoute)
		routes.POST("/:id/optimize", h.EvaluateOptimization)
		routes.POST("/:id/optimizations", h.RecordOptimization)
	}
}

func (h *RouteHandler) PlanRoute(c *gin.Context) {
	var req route.PlanRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.PlanRoute(c.Request.Context(), &req)
	if err != nil {
		respondRouteError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Route planned", result)
}

func (h *RouteHandler) GetRoute(c *gin.Context) {
	routeID, ok := parseRouteID(c)
	if !ok {
		return
	}

	result, err := h.service.GetRoute(c.Request.Context(), routeID)
	if err != nil {
		respondRouteError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Route retrieved", result)
}

func (h *RouteHandler) ListRoutes(c *gin.Context) {
	var req route.ListRoutesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.ListRoutes(c.Request.Context(), &req)
	if err != nil {
		respondRouteError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Routes retrieved", result)
}

func (h *RouteHandler) CompleteRoute(c *gin.Context) {
	routeID, ok := parseRouteID(c)
	if !ok {
		return
	}

	var req route.CompleteRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CompleteRoute(c.Request.Context(), routeID, &req)
	if err != nil {
		respondRouteError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Route completed", result)
}

func (h *RouteHandler) UpdateRoute(c *gin.Context) {
	routeID, ok := parseRouteID(c)
	if !ok {
		return
	}

	var req route.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateRoute(c.Request.Context(), routeID, &req)
	if err != nil {
		respondRouteError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Route updated", result)
}

func (h *RouteHandler) EvaluateOptimization(c *gin.Context) {
	routeID, ok := parseRouteID(c)
	if !ok {
		return
	}

	var req route.EvaluateOptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.EvaluateOptimization(c.Request.Context(), routeID, &req)
	if err != nil {
		respondRouteError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Optimization evaluated", result)
}

func (h *RouteHandler) RecordOptimization(c *gin.Context) {
	routeID, ok := parseRouteID(c)
	if !ok {
		return
	}

	var req route.RecordOptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RecordOptimization(c.Request.Context(), routeID, &req)
	if err != nil {
		respondRouteError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Optimization recorded", result)
}

func (h *RouteHandler) GetOptimizationHistory(c *gin.Context) {
	routeID, ok := parseRouteID(c)
	if !ok {
		return
	}

	result, err := h.service.GetOptimizationHistory(c.Request.Context(), routeID)
	if err != nil {
		respondRouteError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Optimization history retrieved", result)
}

func parseRouteID(c *gin.Context) (int64, bool) {
	routeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || routeID < 1 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid route ID")
		return 0, false
	}
	return routeID, true
}

func respondRouteError(c *gin.Context, err error) {
	var appErr *appErrors.AppError

	switch {
	case errors.Is(err, domainRoute.ErrRouteNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
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
