package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/directory-microservice/internal/domain"
	"github.com/directory-microservice/internal/domain/repository"
	"github.com/directory-microservice/internal/pkg/clock"
)

// SignalRepository is the append-only in-process signal ledger. Appended
// signals are never edited or removed.
type SignalRepository struct {
	mu      sync.RWMutex
	signals []domain.Signal
	clk     clock.Clock
}

func NewSignalRepository(clk clock.Clock) *SignalRepository {
	return &SignalRepository{
		signals: make([]domain.Signal, 0),
		clk:     clk,
	}
}

var _ repository.SignalRepository = (*SignalRepository)(nil)

// Append assigns id and created_at and appends the signal to the log.
func (r *SignalRepository) Append(_ context.Context, signal domain.Signal) (*domain.Signal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	signal.ID = uuid.NewString()
	signal.CreatedAt = r.clk.Now()
	r.signals = append(r.signals, signal)

	appended := signal
	return &appended, nil
}

// ListByEntity returns all signals referencing the entity, in append order.
func (r *SignalRepository) ListByEntity(_ context.Context, entityID string) ([]domain.Signal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Signal, 0)
	for _, s := range r.signals {
		if s.EntityID == entityID {
			out = append(out, s)
		}
	}
	return out, nil
}

// ListAll returns a copy of the full ledger in append order.
func (r *SignalRepository) ListAll(_ context.Context) ([]domain.Signal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Signal, len(r.signals))
	copy(out, r.signals)
	return out, nil
}
