package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/directory-microservice/internal/domain"
	"github.com/directory-microservice/internal/domain/repository"
	"github.com/directory-microservice/internal/usecase"
	"github.com/directory-microservice/internal/usecase/dto"
	"github.com/directory-microservice/internal/worker"
)

// IngestionWorker consumes raw signal events from the incoming stream
// and records them through the signal use case. Malformed payloads are
// acked and logged so they never wedge the consumer group.
type IngestionWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	signalUC     *usecase.SignalUseCase
	consumerName string
	batchSize    int
	idleSleep    time.Duration
}

func NewIngestionWorker(
	streamRepo repository.StreamRepository,
	signalUC *usecase.SignalUseCase,
	consumerGroup string,
	batchSize int,
	idleSleep time.Duration,
	logger *zap.Logger,
) *IngestionWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &IngestionWorker{
		BaseWorker:   worker.NewBaseWorker("signal-ingestion", consumerGroup, logger),
		streamRepo:   streamRepo,
		signalUC:     signalUC,
		consumerName: consumerName,
		batchSize:    batchSize,
		idleSleep:    idleSleep,
	}
}

// Start runs the consume loop until Stop or ctx cancellation.
func (w *IngestionWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting IngestionWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamSignalsIncoming, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(w.idleSleep)
			}
		}
	}
}

// processBatch reads and records one batch. Returns the number of
// messages consumed from the stream.
func (w *IngestionWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamSignalsIncoming,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ack the broken message so it does not get stuck
			_ = w.streamRepo.AckMessage(ctx, domain.StreamSignalsIncoming, w.ConsumerGroup(), msg.ID)
			continue
		}

		req := dto.AddSignalRequest{
			EntityID: event.EntityID,
			Type:     event.Type,
			Note:     event.Note,
		}
		if _, err := w.signalUC.Add(ctx, req); err != nil {
			logger.Error("Failed to record signal from stream",
				zap.String("message_id", msg.ID),
				zap.String("entity_id", event.EntityID),
				zap.Error(err))
			// leave unacked for redelivery
			continue
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamSignalsIncoming, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

func (w *IngestionWorker) parseMessage(msg domain.StreamMessage) (*domain.SignalIncomingEvent, error) {
	var event domain.SignalIncomingEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.EntityID == "" || event.Type == "" {
		return nil, fmt.Errorf("event missing entity_id or type")
	}
	return &event, nil
}
