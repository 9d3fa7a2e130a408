package memory

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/directory-microservice/internal/domain"
	"github.com/directory-microservice/internal/domain/repository"
	"github.com/directory-microservice/internal/pkg/clock"
	"github.com/directory-microservice/internal/pkg/errors"
)

// EntityRepository is the in-process entity store. A single RWMutex
// guards the collection: writers take it exclusively, readers share it,
// and the lock is held per operation only, never across a query pipeline
// and a later mutation.
type EntityRepository struct {
	mu       sync.RWMutex
	entities []domain.Entity
	index    map[string]int
	clk      clock.Clock
	logger   *zap.Logger
}

// NewEntityRepository creates an empty entity store.
func NewEntityRepository(clk clock.Clock, logger *zap.Logger) *EntityRepository {
	return &EntityRepository{
		entities: make([]domain.Entity, 0),
		index:    make(map[string]int),
		clk:      clk,
		logger:   logger,
	}
}

var _ repository.EntityRepository = (*EntityRepository)(nil)

// Create assigns a fresh id plus creation timestamps and appends the
// record. Field-level validation is the caller's job.
func (r *EntityRepository) Create(_ context.Context, entity domain.Entity) (*domain.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clk.Now()
	entity.ID = uuid.NewString()
	entity.CreatedAt = now
	entity.UpdatedAt = now
	entity.LastConfirmedAt = nil
	if entity.Status == "" {
		entity.Status = domain.StatusActive
	}

	r.index[entity.ID] = len(r.entities)
	r.entities = append(r.entities, entity)

	created := entity.Clone()
	return &created, nil
}

// GetByID returns a copy of the entity or ErrEntityNotFound.
func (r *EntityRepository) GetByID(_ context.Context, id string) (*domain.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, errors.ErrEntityNotFound
	}

	entity := r.entities[pos].Clone()
	return &entity, nil
}

// List returns a snapshot copy of the whole collection in insertion
// order. Concurrent mutation after the call cannot corrupt the snapshot.
func (r *EntityRepository) List(_ context.Context) ([]domain.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]domain.Entity, len(r.entities))
	for i := range r.entities {
		snapshot[i] = r.entities[i].Clone()
	}
	return snapshot, nil
}

// Update merges only the populated fields into the record and bumps
// updated_at to now.
func (r *EntityRepository) Update(_ context.Context, id string, update domain.EntityUpdate) (*domain.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, errors.ErrEntityNotFound
	}

	update.ApplyTo(&r.entities[pos])
	r.entities[pos].UpdatedAt = r.clk.Now()

	updated := r.entities[pos].Clone()
	return &updated, nil
}

// SoftDelete forces the status to archived. Re-archiving an already
// archived entity is a no-op update that still bumps updated_at.
func (r *EntityRepository) SoftDelete(ctx context.Context, id string) (*domain.Entity, error) {
	archived := domain.StatusArchived
	return r.Update(ctx, id, domain.EntityUpdate{Status: &archived})
}

// Confirm sets last_confirmed_at and bumps updated_at. A missing entity
// is not an error: the caller records the signal regardless.
func (r *EntityRepository) Confirm(_ context.Context, id string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return false, nil
	}

	confirmedAt := at
	r.entities[pos].LastConfirmedAt = &confirmedAt
	r.entities[pos].UpdatedAt = at
	return true, nil
}

// LoadSeed reads a JSON array of entities from path and appends them.
// Missing ids and timestamps are assigned on the way in. Returns the
// number of loaded records.
func (r *EntityRepository) LoadSeed(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var seed []domain.Entity
	if err := json.Unmarshal(data, &seed); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clk.Now()
	for _, entity := range seed {
		if entity.ID == "" {
			entity.ID = uuid.NewString()
		}
		if entity.Status == "" {
			entity.Status = domain.StatusActive
		}
		if entity.CreatedAt.IsZero() {
			entity.CreatedAt = now
		}
		if entity.UpdatedAt.IsZero() {
			entity.UpdatedAt = entity.CreatedAt
		}
		r.index[entity.ID] = len(r.entities)
		r.entities = append(r.entities, entity)
	}

	r.logger.Info("Entity seed loaded",
		zap.String("path", path),
		zap.Int("count", len(seed)))
	return len(seed), nil
}
