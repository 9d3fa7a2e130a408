package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/directory-microservice/internal/pkg/errors"
	"github.com/directory-microservice/internal/pkg/utils"
	"github.com/directory-microservice/internal/pkg/validator"
	"github.com/directory-microservice/internal/usecase"
	"github.com/directory-microservice/internal/usecase/dto"
)

// SignalHandler - HTTP handlers for the trust signal ledger.
type SignalHandler struct {
	signalUC *usecase.SignalUseCase
	logger   *zap.Logger
}

func NewSignalHandler(signalUC *usecase.SignalUseCase, logger *zap.Logger) *SignalHandler {
	return &SignalHandler{
		signalUC: signalUC,
		logger:   logger,
	}
}

// Add godoc
// @Summary Record a trust signal
// @Description Appends the signal to the ledger. A confirm signal additionally bumps the referenced entity's confirmation timestamp; a signal for an unknown entity is still recorded.
// @Tags Signals
// @Accept json
// @Produce json
// @Param request body dto.AddSignalRequest true "Signal fields"
// @Success 200 {object} utils.SuccessResponse{data=domain.Signal}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/signals [post]
func (h *SignalHandler) Add(c *fiber.Ctx) error {
	var req dto.AddSignalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	signal, err := h.signalUC.Add(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, signal, nil)
}

// List godoc
// @Summary List trust signals
// @Tags Signals
// @Produce json
// @Param entity_id query string false "Restrict to signals for one entity"
// @Success 200 {object} utils.SuccessResponse{data=dto.SignalListResponse}
// @Router /api/v1/signals [get]
func (h *SignalHandler) List(c *fiber.Ctx) error {
	result, err := h.signalUC.List(c.Context(), c.Query("entity_id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}
