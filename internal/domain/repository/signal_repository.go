package repository

import (
	"context"

	"github.com/directory-microservice/internal/domain"
)

// SignalRepository is the append-only trust signal ledger. Signals are
// never edited or deleted once appended.
type SignalRepository interface {
	// Append assigns id and created_at and appends the signal.
	Append(ctx context.Context, signal domain.Signal) (*domain.Signal, error)

	// ListByEntity returns all signals referencing the entity.
	ListByEntity(ctx context.Context, entityID string) ([]domain.Signal, error)

	// ListAll returns the full ledger in append order.
	ListAll(ctx context.Context) ([]domain.Signal, error)
}
