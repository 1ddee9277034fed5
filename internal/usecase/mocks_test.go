package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/foodspot-service/internal/domain"
)

// MockFoodSpotRepository is a mock of FoodSpotRepository
type MockFoodSpotRepository struct {
	mock.Mock
}

func (m *MockFoodSpotRepository) GetByID(ctx context.Context, id int64) (*domain.FoodSpot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FoodSpot), args.Error(1)
}

func (m *MockFoodSpotRepository) List(ctx context.Context, cuisineType string) ([]*domain.FoodSpot, error) {
	args := m.Called(ctx, cuisineType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FoodSpot), args.Error(1)
}

func (m *MockFoodSpotRepository) Create(ctx context.Context, spot *domain.FoodSpot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockFoodSpotRepository) Update(ctx context.Context, spot *domain.FoodSpot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockFoodSpotRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFoodSpotRepository) Nearest(ctx context.Context, lat, lon float64, limit int) ([]*domain.SpotWithDistance, error) {
	args := m.Called(ctx, lat, lon, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SpotWithDistance), args.Error(1)
}

func (m *MockFoodSpotRepository) WithinRadius(ctx context.Context, lat, lon, radiusMeters float64, cuisineType string) ([]*domain.SpotWithDistance, error) {
	args := m.Called(ctx, lat, lon, radiusMeters, cuisineType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SpotWithDistance), args.Error(1)
}

func (m *MockFoodSpotRepository) WithinBounds(ctx context.Context, ring []domain.LatLon) ([]*domain.FoodSpot, error) {
	args := m.Called(ctx, ring)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FoodSpot), args.Error(1)
}

func (m *MockFoodSpotRepository) Search(ctx context.Context, query string, filter domain.SearchFilter) ([]*domain.FoodSpot, error) {
	args := m.Called(ctx, query, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FoodSpot), args.Error(1)
}

func (m *MockFoodSpotRepository) GetReviewAggregates(ctx context.Context, ids []int64) (map[int64]domain.ReviewAggregate, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.ReviewAggregate), args.Error(1)
}

// MockReviewRepository is a mock of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListApproved(ctx context.Context) ([]*domain.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByFoodSpot(ctx context.Context, foodspotID int64) ([]*domain.Review, error) {
	args := m.Called(ctx, foodspotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func ptrFloat64(v float64) *float64 {
	return &v
}
