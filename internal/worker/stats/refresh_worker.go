package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/foodspot-service/internal/domain"
	"github.com/foodspot-service/internal/domain/repository"
	"github.com/foodspot-service/internal/usecase"
	"github.com/foodspot-service/internal/worker"
)

// RefreshWorker consumes review-created events and refreshes the cached
// statistics snapshot so the next read serves fresh numbers.
type RefreshWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	statsUC      *usecase.StatsUsecase
	consumerName string
	maxRetries   int
}

func NewRefreshWorker(
	streamRepo repository.StreamRepository,
	statsUC *usecase.StatsUsecase,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *RefreshWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &RefreshWorker{
		BaseWorker:   worker.NewBaseWorker("stats-refresh", consumerGroup, logger),
		streamRepo:   streamRepo,
		statsUC:      statsUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

func (w *RefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting stats refresh worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamReviewCreated, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamReviewCreated, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *RefreshWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.ReviewCreatedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse review event, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// Ack the broken message so it does not get stuck in the group
		_ = w.streamRepo.AckMessage(ctx, domain.StreamReviewCreated, w.ConsumerGroup(), msg.ID)
		return
	}

	logger.Debug("Processing review event",
		zap.String("event_id", event.EventID.String()),
		zap.Int64("foodspot_id", event.FoodSpotID))

	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if lastErr = w.statsUC.RefreshStatistics(ctx); lastErr == nil {
			break
		}
		logger.Warn("Stats refresh failed",
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
	}

	if lastErr != nil {
		// Leave the message unacked so another consumer can retry it later
		logger.Error("Giving up on review event",
			zap.String("message_id", msg.ID),
			zap.Error(lastErr))
		return
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamReviewCreated, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Warn("Failed to ack message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}
}
