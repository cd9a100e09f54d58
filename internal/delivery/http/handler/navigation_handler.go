package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/navigation-microservice/internal/pkg/utils"
	"github.com/navigation-microservice/internal/pkg/validator"
	"github.com/navigation-microservice/internal/usecase"
	"github.com/navigation-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// NavigationHandler serves live position-based guidance.
type NavigationHandler struct {
	navigationUC *usecase.NavigationUseCase
	logger       *zap.Logger
}

// NewNavigationHandler creates a new NavigationHandler.
func NewNavigationHandler(navigationUC *usecase.NavigationUseCase, logger *zap.Logger) *NavigationHandler {
	return &NavigationHandler{
		navigationUC: navigationUC,
		logger:       logger,
	}
}

// Guide returns guidance for the rider's current position on a cached route.
// @Summary Get live navigation guidance
// @Description Clients post their GPS position every few seconds. The response says how far the next checkpoint is, which compass direction to walk, and whether the current checkpoint has been reached.
// @Tags Navigation
// @Accept json
// @Produce json
// @Param request body dto.NavigationGuideRequest true "Route ID, current position and current checkpoint"
// @Success 200 {object} utils.SuccessResponse{data=dto.NavigationGuideResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/navigation/guide [post]
func (h *NavigationHandler) Guide(c *fiber.Ctx) error {
	var req dto.NavigationGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.navigationUC.Guide(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
