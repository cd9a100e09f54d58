package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/navigation-microservice/internal/pkg/utils"
	"github.com/navigation-microservice/internal/pkg/validator"
	"github.com/navigation-microservice/internal/usecase"
	"github.com/navigation-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// CheckpointHandler serves per-checkpoint guide generation and the realtime
// station snapshot.
type CheckpointHandler struct {
	checkpointUC *usecase.CheckpointUseCase
	logger       *zap.Logger
}

// NewCheckpointHandler creates a new CheckpointHandler.
func NewCheckpointHandler(checkpointUC *usecase.CheckpointUseCase, logger *zap.Logger) *CheckpointHandler {
	return &CheckpointHandler{
		checkpointUC: checkpointUC,
		logger:       logger,
	}
}

// Guide generates the guide text for one checkpoint on arrival.
// @Summary Generate checkpoint guide text
// @Description Builds Korean guide text for the given checkpoint, merging survey data with live elevator status, exit closures and train arrivals. Escalates to caution/warning when the planned path is degraded.
// @Tags Checkpoint
// @Accept json
// @Produce json
// @Param request body dto.CheckpointGuideRequest true "Checkpoint ID, station and rider context"
// @Success 200 {object} utils.SuccessResponse{data=dto.CheckpointGuideResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/checkpoint/guide [post]
func (h *CheckpointHandler) Guide(c *fiber.Ctx) error {
	var req dto.CheckpointGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.checkpointUC.Guide(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// RealtimeStation returns every live feed for one station.
// @Summary Get realtime station snapshot
// @Description Returns elevator status, train arrivals and wheelchair charger info for a station in a single call.
// @Tags Checkpoint
// @Produce json
// @Param station path string true "Station name (with or without the 역 suffix)"
// @Success 200 {object} utils.SuccessResponse{data=dto.RealtimeStationResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/checkpoint/realtime/{station} [get]
func (h *CheckpointHandler) RealtimeStation(c *fiber.Ctx) error {
	station, err := utils.DecodeParam(c, "station")
	if err != nil || station == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid station name"})
	}

	result, err := h.checkpointUC.RealtimeStation(c.Context(), station)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
