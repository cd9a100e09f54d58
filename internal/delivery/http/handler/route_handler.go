package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/navigation-microservice/internal/pkg/utils"
	"github.com/navigation-microservice/internal/pkg/validator"
	"github.com/navigation-microservice/internal/usecase"
	"github.com/navigation-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler serves route planning endpoints.
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// SearchRoute plans an accessible single-line route between two stations.
// @Summary Search an accessible subway route
// @Description Plans a route between two stations on the same line: picks the best exits for the rider's mobility profile, the optimal boarding cars, and returns the checkpoint sequence used for live navigation.
// @Tags Route
// @Accept json
// @Produce json
// @Param request body dto.RouteSearchRequest true "Start/end stations, rider location and mobility profile"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/route/search [post]
func (h *RouteHandler) SearchRoute(c *fiber.Ctx) error {
	var req dto.RouteSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.SearchRoute(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Checkpoints),
	})
}

// ListStations returns every station known to the service.
// @Summary List supported stations
// @Description Returns all stations available for route planning with their line and coordinates.
// @Tags Route
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.StationListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/route/stations [get]
func (h *RouteHandler) ListStations(c *fiber.Ctx) error {
	result, err := h.routeUC.ListStations(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Count,
	})
}
