package usecase

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/directory-microservice/internal/domain"
	"github.com/directory-microservice/internal/domain/repository"
	"github.com/directory-microservice/internal/usecase/dto"
)

// QueryUseCase - stateless filter/search/sort pipeline over store
// snapshots. Holds no state of its own beyond configured limits.
type QueryUseCase struct {
	entityRepo   repository.EntityRepository
	defaultLimit int
	maxLimit     int
	popularLimit int
	logger       *zap.Logger
}

func NewQueryUseCase(
	entityRepo repository.EntityRepository,
	defaultLimit int,
	maxLimit int,
	popularLimit int,
	logger *zap.Logger,
) *QueryUseCase {
	return &QueryUseCase{
		entityRepo:   entityRepo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		popularLimit: popularLimit,
		logger:       logger,
	}
}

// List runs the filter pipeline over a fresh snapshot and returns the
// sorted, truncated result. Pipeline order: archived exclusion, type,
// area, tags (OR), free text, explicit status, sort by rating
// descending, truncate.
func (uc *QueryUseCase) List(ctx context.Context, req dto.QueryRequest) (*dto.EntityListResponse, error) {
	if req.Popular {
		return uc.Popular(ctx, req.Limit)
	}

	snapshot, err := uc.entityRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to snapshot entities", zap.Error(err))
		return nil, err
	}

	result := applyFilters(snapshot, req)
	sortByRatingDesc(result)
	result = truncate(result, uc.resolveLimit(req.Limit, uc.defaultLimit))

	return &dto.EntityListResponse{
		Entities: result,
		Total:    len(result),
	}, nil
}

// Popular is the restricted view: active entities only, rating
// descending, truncated. All other filters are ignored.
func (uc *QueryUseCase) Popular(ctx context.Context, limit int) (*dto.EntityListResponse, error) {
	snapshot, err := uc.entityRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to snapshot entities", zap.Error(err))
		return nil, err
	}

	result := make([]domain.Entity, 0, len(snapshot))
	for _, e := range snapshot {
		if e.Status == domain.StatusActive {
			result = append(result, e)
		}
	}
	sortByRatingDesc(result)
	result = truncate(result, uc.resolveLimit(limit, uc.popularLimit))

	return &dto.EntityListResponse{
		Entities: result,
		Total:    len(result),
	}, nil
}

// Areas returns the sorted distinct area values across the live
// collection. Recomputed per call, never cached.
func (uc *QueryUseCase) Areas(ctx context.Context) ([]string, error) {
	snapshot, err := uc.entityRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, e := range snapshot {
		if e.Area != "" {
			seen[e.Area] = struct{}{}
		}
	}
	return sortedKeys(seen), nil
}

// Tags returns the sorted distinct tag values across the live
// collection. Recomputed per call, never cached.
func (uc *QueryUseCase) Tags(ctx context.Context) ([]string, error) {
	snapshot, err := uc.entityRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, e := range snapshot {
		for _, tag := range e.Tags {
			if tag != "" {
				seen[tag] = struct{}{}
			}
		}
	}
	return sortedKeys(seen), nil
}

func (uc *QueryUseCase) resolveLimit(requested, fallback int) int {
	if requested <= 0 {
		return fallback
	}
	if requested > uc.maxLimit {
		return uc.maxLimit
	}
	return requested
}

// applyFilters narrows the snapshot stage by stage. Filters are
// permissive: an unrecognized value yields an empty result, not an error.
func applyFilters(entities []domain.Entity, req dto.QueryRequest) []domain.Entity {
	search := strings.ToLower(req.Search)
	explicitStatus := domain.EntityStatus(req.Status)

	result := make([]domain.Entity, 0, len(entities))
	for _, e := range entities {
		// Archived records are invisible unless the caller asks for a
		// status explicitly; the explicit filter wins.
		if req.Status == "" {
			if e.Status == domain.StatusArchived {
				continue
			}
		} else if e.Status != explicitStatus {
			continue
		}
		if req.Type != "" && e.Type != req.Type {
			continue
		}
		if req.Area != "" && e.Area != req.Area {
			continue
		}
		if len(req.Tags) > 0 && !matchesAnyTag(&e, req.Tags) {
			continue
		}
		if search != "" && !matchesSearch(&e, search) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// matchesAnyTag - OR semantics: one shared tag is enough.
func matchesAnyTag(e *domain.Entity, tags []string) bool {
	for _, tag := range tags {
		if e.HasTag(tag) {
			return true
		}
	}
	return false
}

// matchesSearch - case-insensitive substring over title, description
// and tags; a hit on any one field includes the entity.
func matchesSearch(e *domain.Entity, loweredTerm string) bool {
	if strings.Contains(strings.ToLower(e.Title), loweredTerm) {
		return true
	}
	if strings.Contains(strings.ToLower(e.ShortDescription), loweredTerm) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), loweredTerm) {
			return true
		}
	}
	return false
}

// sortByRatingDesc sorts by rating descending, preserving source order
// for equal ratings so results stay deterministic.
func sortByRatingDesc(entities []domain.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Rating > entities[j].Rating
	})
}

func truncate(entities []domain.Entity, limit int) []domain.Entity {
	if limit > 0 && len(entities) > limit {
		return entities[:limit]
	}
	return entities
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
