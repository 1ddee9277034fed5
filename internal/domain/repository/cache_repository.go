package repository

import (
	"context"
	"time"

	"github.com/foodspot-service/internal/domain"
)

// CacheRepository defines the cache operations used by the service.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// GetStats returns the cached statistics snapshot, or nil on miss.
	GetStats(ctx context.Context) (*domain.Statistics, error)

	// SetStats caches the statistics snapshot.
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error
}
