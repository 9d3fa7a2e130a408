package memory

import (
	"context"
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/directory-microservice/internal/domain"
	"github.com/directory-microservice/internal/domain/repository"
	"github.com/directory-microservice/internal/pkg/errors"
)

// GuideRepository is a read-only lookup table seeded once at startup.
// There is no mutation path, so no locking is needed after construction.
type GuideRepository struct {
	guides []domain.Guide
	index  map[string]int
	logger *zap.Logger
}

func NewGuideRepository(logger *zap.Logger) *GuideRepository {
	return &GuideRepository{
		guides: make([]domain.Guide, 0),
		index:  make(map[string]int),
		logger: logger,
	}
}

var _ repository.GuideRepository = (*GuideRepository)(nil)

// LoadSeed reads a JSON array of guides from path. Must be called before
// the repository is shared.
func (r *GuideRepository) LoadSeed(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var seed []domain.Guide
	if err := json.Unmarshal(data, &seed); err != nil {
		return 0, err
	}

	for _, guide := range seed {
		if guide.ID == "" {
			guide.ID = uuid.NewString()
		}
		r.index[guide.ID] = len(r.guides)
		r.guides = append(r.guides, guide)
	}

	r.logger.Info("Guide seed loaded",
		zap.String("path", path),
		zap.Int("count", len(seed)))
	return len(seed), nil
}

// List returns guides, optionally filtered by category.
func (r *GuideRepository) List(_ context.Context, category string) ([]domain.Guide, error) {
	out := make([]domain.Guide, 0, len(r.guides))
	for _, g := range r.guides {
		if category != "" && g.Category != category {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// GetByID returns the guide or ErrGuideNotFound.
func (r *GuideRepository) GetByID(_ context.Context, id string) (*domain.Guide, error) {
	pos, ok := r.index[id]
	if !ok {
		return nil, errors.ErrGuideNotFound
	}

	guide := r.guides[pos]
	return &guide, nil
}
