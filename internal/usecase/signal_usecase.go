package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/directory-microservice/internal/domain"
	"github.com/directory-microservice/internal/domain/repository"
	"github.com/directory-microservice/internal/usecase/dto"
)

// SignalUseCase - appends trust signals and applies their side effects.
// A confirm signal bumps the referenced entity's confirmation timestamp;
// a signal for a missing entity is still recorded (fire and forget).
type SignalUseCase struct {
	signalRepo repository.SignalRepository
	entityRepo repository.EntityRepository
	streamRepo repository.StreamRepository // optional, may be nil
	logger     *zap.Logger
}

func NewSignalUseCase(
	signalRepo repository.SignalRepository,
	entityRepo repository.EntityRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *SignalUseCase {
	return &SignalUseCase{
		signalRepo: signalRepo,
		entityRepo: entityRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Add appends the signal to the ledger and, for confirm signals, sets
// the entity's last_confirmed_at to the signal's own timestamp. The
// recorded event is published downstream best-effort.
func (uc *SignalUseCase) Add(ctx context.Context, req dto.AddSignalRequest) (*domain.Signal, error) {
	signal, err := uc.signalRepo.Append(ctx, domain.Signal{
		EntityID: req.EntityID,
		Type:     req.Type,
		Note:     req.Note,
	})
	if err != nil {
		uc.logger.Error("Failed to append signal", zap.Error(err))
		return nil, err
	}

	entityUpdated := false
	if signal.IsConfirm() {
		entityUpdated, err = uc.entityRepo.Confirm(ctx, signal.EntityID, signal.CreatedAt)
		if err != nil {
			uc.logger.Error("Failed to confirm entity",
				zap.String("entity_id", signal.EntityID),
				zap.Error(err))
			return nil, err
		}
		if !entityUpdated {
			// No entity to update: the signal stays recorded anyway.
			uc.logger.Debug("Confirm signal for unknown entity",
				zap.String("entity_id", signal.EntityID))
		}
	}

	uc.publishRecorded(ctx, signal, entityUpdated)

	uc.logger.Info("Signal recorded",
		zap.String("id", signal.ID),
		zap.String("entity_id", signal.EntityID),
		zap.String("type", signal.Type),
		zap.Bool("entity_updated", entityUpdated))
	return signal, nil
}

// List returns signals for one entity, or the whole ledger when
// entityID is empty.
func (uc *SignalUseCase) List(ctx context.Context, entityID string) (*dto.SignalListResponse, error) {
	var (
		signals []domain.Signal
		err     error
	)
	if entityID == "" {
		signals, err = uc.signalRepo.ListAll(ctx)
	} else {
		signals, err = uc.signalRepo.ListByEntity(ctx, entityID)
	}
	if err != nil {
		uc.logger.Error("Failed to list signals", zap.Error(err))
		return nil, err
	}

	return &dto.SignalListResponse{
		Signals: signals,
		Total:   len(signals),
	}, nil
}

// publishRecorded notifies downstream consumers. Stream failures never
// fail the core operation.
func (uc *SignalUseCase) publishRecorded(ctx context.Context, signal *domain.Signal, entityUpdated bool) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.SignalRecordedEvent{
		SignalID:      signal.ID,
		EntityID:      signal.EntityID,
		Type:          signal.Type,
		EntityUpdated: entityUpdated,
		RecordedAt:    signal.CreatedAt,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamSignalsRecorded, event); err != nil {
		uc.logger.Warn("Failed to publish recorded signal event",
			zap.String("signal_id", signal.ID),
			zap.Error(err))
	}
}
