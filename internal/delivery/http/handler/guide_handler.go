package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/directory-microservice/internal/pkg/utils"
	"github.com/directory-microservice/internal/usecase"
)

// GuideHandler - HTTP handlers for the read-only guide table.
type GuideHandler struct {
	guideUC *usecase.GuideUseCase
	logger  *zap.Logger
}

func NewGuideHandler(guideUC *usecase.GuideUseCase, logger *zap.Logger) *GuideHandler {
	return &GuideHandler{
		guideUC: guideUC,
		logger:  logger,
	}
}

// List godoc
// @Summary List guides
// @Tags Guides
// @Produce json
// @Param category query string false "Category filter (exact match)"
// @Success 200 {object} utils.SuccessResponse{data=dto.GuideListResponse}
// @Router /api/v1/guides [get]
func (h *GuideHandler) List(c *fiber.Ctx) error {
	result, err := h.guideUC.List(c.Context(), c.Query("category"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Get godoc
// @Summary Get a guide by id
// @Tags Guides
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Guide}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/guides/{id} [get]
func (h *GuideHandler) Get(c *fiber.Ctx) error {
	guide, err := h.guideUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, guide, nil)
}
