package repository

import (
	"context"

	"github.com/foodspot-service/internal/domain"
)

// StreamRepository defines Redis-stream access for review events.
type StreamRepository interface {
	// CreateConsumerGroup creates the group for a stream, tolerating an
	// existing one.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream reads messages via the consumer group until ctx is
	// cancelled.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream publishes data as a JSON payload.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
