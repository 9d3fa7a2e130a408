package repository

import (
	"context"

	"github.com/directory-microservice/internal/domain"
)

// GuideRepository is a read-only lookup table of editorial guides.
type GuideRepository interface {
	// List returns guides, optionally filtered by category. An empty
	// category returns everything.
	List(ctx context.Context, category string) ([]domain.Guide, error)

	// GetByID returns the guide or errors.ErrGuideNotFound.
	GetByID(ctx context.Context, id string) (*domain.Guide, error)
}
