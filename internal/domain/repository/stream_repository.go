package repository

import (
	"context"

	"github.com/directory-microservice/internal/domain"
)

// StreamRepository abstracts the Redis Streams transport used for signal
// ingestion and egress.
type StreamRepository interface {
	// CreateConsumerGroup creates the consumer group for a stream,
	// creating the stream itself if needed.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages for the consumer.
	// Returns an empty slice when the stream has nothing new.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream serializes data as JSON and appends it to the stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
