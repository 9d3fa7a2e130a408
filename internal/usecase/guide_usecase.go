package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/directory-microservice/internal/domain"
	"github.com/directory-microservice/internal/domain/repository"
	"github.com/directory-microservice/internal/usecase/dto"
)

// GuideUseCase - read-only guide lookups.
type GuideUseCase struct {
	guideRepo repository.GuideRepository
	logger    *zap.Logger
}

func NewGuideUseCase(guideRepo repository.GuideRepository, logger *zap.Logger) *GuideUseCase {
	return &GuideUseCase{
		guideRepo: guideRepo,
		logger:    logger,
	}
}

// List returns guides, optionally filtered by category.
func (uc *GuideUseCase) List(ctx context.Context, category string) (*dto.GuideListResponse, error) {
	guides, err := uc.guideRepo.List(ctx, category)
	if err != nil {
		uc.logger.Error("Failed to list guides", zap.Error(err))
		return nil, err
	}

	return &dto.GuideListResponse{
		Guides: guides,
		Total:  len(guides),
	}, nil
}

// Get returns the guide or ErrGuideNotFound.
func (uc *GuideUseCase) Get(ctx context.Context, id string) (*domain.Guide, error) {
	return uc.guideRepo.GetByID(ctx, id)
}
