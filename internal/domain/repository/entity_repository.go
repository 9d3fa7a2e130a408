package repository

import (
	"context"
	"time"

	"github.com/directory-microservice/internal/domain"
)

// EntityRepository owns the entity collection. All reads and writes to
// entities funnel through it.
type EntityRepository interface {
	// Create assigns id and timestamps and appends the record.
	Create(ctx context.Context, entity domain.Entity) (*domain.Entity, error)

	// GetByID returns the entity or errors.ErrEntityNotFound.
	GetByID(ctx context.Context, id string) (*domain.Entity, error)

	// List returns a snapshot copy of the whole collection. Mutations
	// after the call never affect the returned slice.
	List(ctx context.Context) ([]domain.Entity, error)

	// Update merges the populated fields and bumps updated_at.
	Update(ctx context.Context, id string, update domain.EntityUpdate) (*domain.Entity, error)

	// SoftDelete forces status to archived. The only delete path.
	SoftDelete(ctx context.Context, id string) (*domain.Entity, error)

	// Confirm sets last_confirmed_at and bumps updated_at. Returns
	// false without error when the entity does not exist.
	Confirm(ctx context.Context, id string, at time.Time) (bool, error)
}
