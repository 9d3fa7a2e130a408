package handler

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/directory-microservice/internal/pkg/errors"
	"github.com/directory-microservice/internal/pkg/utils"
	"github.com/directory-microservice/internal/pkg/validator"
	"github.com/directory-microservice/internal/usecase"
	"github.com/directory-microservice/internal/usecase/dto"
)

// EntityHandler - HTTP handlers for the entity resource.
type EntityHandler struct {
	entityUC *usecase.EntityUseCase
	queryUC  *usecase.QueryUseCase
	logger   *zap.Logger
}

func NewEntityHandler(entityUC *usecase.EntityUseCase, queryUC *usecase.QueryUseCase, logger *zap.Logger) *EntityHandler {
	return &EntityHandler{
		entityUC: entityUC,
		queryUC:  queryUC,
		logger:   logger,
	}
}

// List godoc
// @Summary List directory entities
// @Description Returns entities filtered by type, area, tags (OR semantics), free text and status, sorted by rating descending. Archived entities are excluded unless requested explicitly via status. With popular=true only active entities are returned and all other filters are ignored.
// @Tags Entities
// @Produce json
// @Param type query string false "Entity type filter (exact match)"
// @Param area query string false "Area filter (exact match)"
// @Param tags query string false "Comma-separated tag list, entity matches on any shared tag"
// @Param search query string false "Case-insensitive substring over title, description and tags"
// @Param status query string false "Explicit status filter (active, unverified, flagged, archived)"
// @Param limit query int false "Maximum number of results" default(100)
// @Param popular query bool false "Popular view: active only, rating descending" default(false)
// @Success 200 {object} utils.SuccessResponse{data=dto.EntityListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/entities [get]
func (h *EntityHandler) List(c *fiber.Ctx) error {
	req := dto.QueryRequest{
		Type:    c.Query("type"),
		Area:    c.Query("area"),
		Tags:    splitCSV(c.Query("tags")),
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Limit:   c.QueryInt("limit", 0),
		Popular: c.QueryBool("popular", false),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.queryUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Create godoc
// @Summary Create a directory entity
// @Tags Entities
// @Accept json
// @Produce json
// @Param request body dto.CreateEntityRequest true "Entity fields without id and timestamps"
// @Success 200 {object} utils.SuccessResponse{data=domain.Entity}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/entities [post]
func (h *EntityHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEntityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	entity, err := h.entityUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, entity, nil)
}

// Get godoc
// @Summary Get an entity by id
// @Tags Entities
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Entity}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/entities/{id} [get]
func (h *EntityHandler) Get(c *fiber.Ctx) error {
	entity, err := h.entityUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, entity, nil)
}

// Update godoc
// @Summary Partially update an entity
// @Description Merges only the supplied fields. Unknown JSON keys are rejected instead of being silently dropped.
// @Tags Entities
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param request body dto.UpdateEntityRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=domain.Entity}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/entities/{id} [patch]
func (h *EntityHandler) Update(c *fiber.Ctx) error {
	// Strict decode: unknown or mistyped fields are a client error,
	// never a silent merge.
	var req dto.UpdateEntityRequest
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"decode": err.Error(),
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	entity, err := h.entityUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, entity, nil)
}

// SoftDelete godoc
// @Summary Archive an entity
// @Description Soft delete: forces status to archived. Entities are never physically removed.
// @Tags Entities
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Entity}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/entities/{id} [delete]
func (h *EntityHandler) SoftDelete(c *fiber.Ctx) error {
	entity, err := h.entityUC.SoftDelete(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, entity, nil)
}

// WorkHours godoc
// @Summary Open/closed status of an entity
// @Description Evaluates the entity's weekly schedule at the current instant in the configured timezone. Status is unknown when the entity carries no schedule.
// @Tags Entities
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.WorkHoursResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/entities/{id}/hours [get]
func (h *EntityHandler) WorkHours(c *fiber.Ctx) error {
	result, err := h.entityUC.WorkHours(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Areas godoc
// @Summary Distinct area values
// @Tags Lookups
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DistinctValuesResponse}
// @Router /api/v1/areas [get]
func (h *EntityHandler) Areas(c *fiber.Ctx) error {
	areas, err := h.queryUC.Areas(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DistinctValuesResponse{
		Values: areas,
		Total:  len(areas),
	}, nil)
}

// Tags godoc
// @Summary Distinct tag values
// @Tags Lookups
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DistinctValuesResponse}
// @Router /api/v1/tags [get]
func (h *EntityHandler) Tags(c *fiber.Ctx) error {
	tags, err := h.queryUC.Tags(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DistinctValuesResponse{
		Values: tags,
		Total:  len(tags),
	}, nil)
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
