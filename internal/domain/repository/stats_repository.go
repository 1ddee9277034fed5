package repository

import (
	"context"

	"github.com/foodspot-service/internal/domain"
)

// StatsRepository computes the aggregate snapshot over active spots.
type StatsRepository interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
