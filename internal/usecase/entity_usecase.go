package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/directory-microservice/internal/domain"
	"github.com/directory-microservice/internal/domain/repository"
	"github.com/directory-microservice/internal/pkg/clock"
	"github.com/directory-microservice/internal/usecase/dto"
	"github.com/directory-microservice/internal/workhours"
)

// EntityUseCase - entity lifecycle: create, read, partial update, soft
// delete, and the open/closed projection of the weekly schedule.
type EntityUseCase struct {
	entityRepo repository.EntityRepository
	clk        clock.Clock
	location   *time.Location
	logger     *zap.Logger
}

func NewEntityUseCase(
	entityRepo repository.EntityRepository,
	clk clock.Clock,
	location *time.Location,
	logger *zap.Logger,
) *EntityUseCase {
	return &EntityUseCase{
		entityRepo: entityRepo,
		clk:        clk,
		location:   location,
		logger:     logger,
	}
}

// Create validates nothing beyond what the DTO already guarantees and
// delegates id/timestamp assignment to the store.
func (uc *EntityUseCase) Create(ctx context.Context, req dto.CreateEntityRequest) (*domain.Entity, error) {
	entity, err := uc.entityRepo.Create(ctx, req.ToEntity())
	if err != nil {
		uc.logger.Error("Failed to create entity", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Entity created",
		zap.String("id", entity.ID),
		zap.String("title", entity.Title))
	return entity, nil
}

// Get returns the entity or ErrEntityNotFound.
func (uc *EntityUseCase) Get(ctx context.Context, id string) (*domain.Entity, error) {
	return uc.entityRepo.GetByID(ctx, id)
}

// Update merges the supplied fields into the entity.
func (uc *EntityUseCase) Update(ctx context.Context, id string, req dto.UpdateEntityRequest) (*domain.Entity, error) {
	entity, err := uc.entityRepo.Update(ctx, id, req.ToUpdate())
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Entity updated", zap.String("id", entity.ID))
	return entity, nil
}

// SoftDelete archives the entity. Idempotent: archiving an archived
// entity succeeds and only bumps updated_at again.
func (uc *EntityUseCase) SoftDelete(ctx context.Context, id string) (*domain.Entity, error) {
	entity, err := uc.entityRepo.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Entity archived", zap.String("id", entity.ID))
	return entity, nil
}

// WorkHours evaluates the entity's schedule at the current instant in
// the configured zone and renders the week for display.
func (uc *EntityUseCase) WorkHours(ctx context.Context, id string) (*dto.WorkHoursResponse, error) {
	entity, err := uc.entityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	verdict := workhours.Evaluate(entity.WorkHours, uc.clk.Now(), uc.location)
	return &dto.WorkHoursResponse{
		Status: string(verdict),
		Week:   workhours.FormatWeek(entity.WorkHours),
	}, nil
}
