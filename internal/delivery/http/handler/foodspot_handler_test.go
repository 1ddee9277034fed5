package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foodspot-service/internal/config"
	httpDelivery "github.com/foodspot-service/internal/delivery/http"
	"github.com/foodspot-service/internal/delivery/http/handler"
	"github.com/foodspot-service/internal/domain"
	"github.com/foodspot-service/internal/pkg/errors"
	"github.com/foodspot-service/internal/usecase"
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

type testEnv struct {
	app        *fiber.App
	spotRepo   *MockFoodSpotRepository
	reviewRepo *MockReviewRepository
	statsRepo  *MockStatsRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()

	spotRepo := &MockFoodSpotRepository{}
	reviewRepo := &MockReviewRepository{}
	statsRepo := &MockStatsRepository{}

	spotUC := usecase.NewFoodSpotUsecase(spotRepo, logger)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, spotRepo, nil, logger)
	statsUC := usecase.NewStatsUsecase(statsRepo, nil, 5*time.Minute, logger)

	server := httpDelivery.NewServer(
		&config.Config{},
		logger,
		handler.NewFoodSpotHandler(spotUC, logger),
		handler.NewReviewHandler(reviewUC, logger),
		handler.NewStatsHandler(statsUC, logger),
	)

	return &testEnv{
		app:        server.App(),
		spotRepo:   spotRepo,
		reviewRepo: reviewRepo,
		statsRepo:  statsRepo,
	}
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var out struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Error.Code
}

func TestNearestEndpoint(t *testing.T) {
	t.Run("accepts POST with a JSON body", func(t *testing.T) {
		env := newTestEnv(t)

		env.spotRepo.On("Nearest", mock.Anything, 53.35, -6.26, 5).
			Return([]*domain.SpotWithDistance{}, nil)
		env.spotRepo.On("GetReviewAggregates", mock.Anything, []int64{}).
			Return(map[int64]domain.ReviewAggregate{}, nil)

		body := map[string]interface{}{"latitude": 53.35, "longitude": -6.26, "limit": 5}
		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/foodspots/nearest", body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		env.spotRepo.AssertExpectations(t)
	})

	t.Run("400 without coordinates", func(t *testing.T) {
		env := newTestEnv(t)

		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/foodspots/nearest", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_COORDINATES", decodeError(t, resp))
	})

	t.Run("400 for out-of-range latitude", func(t *testing.T) {
		env := newTestEnv(t)

		body := map[string]interface{}{"latitude": 95.0, "longitude": 0.0}
		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/foodspots/nearest", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("200 with distances", func(t *testing.T) {
		env := newTestEnv(t)

		spots := []*domain.SpotWithDistance{
			{
				FoodSpot: domain.FoodSpot{
					ID: 1, Name: "Luigi", CuisineType: "italian",
					Rating: 4.0, PriceRange: "€€", IsActive: true,
				},
				DistanceMeters: 250.0,
			},
		}
		env.spotRepo.On("Nearest", mock.Anything, 53.35, -6.26, 10).Return(spots, nil)
		env.spotRepo.On("GetReviewAggregates", mock.Anything, []int64{1}).
			Return(map[int64]domain.ReviewAggregate{}, nil)

		body := map[string]interface{}{"latitude": 53.35, "longitude": -6.26}
		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/foodspots/nearest", body)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data []struct {
				Name           string   `json:"name"`
				DistanceMeters *float64 `json:"distance_meters"`
				ReviewCount    int      `json:"review_count"`
				AverageRating  float64  `json:"average_rating"`
			} `json:"data"`
			Meta struct {
				Total int `json:"total"`
			} `json:"meta"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Len(t, out.Data, 1)
		assert.Equal(t, "Luigi", out.Data[0].Name)
		require.NotNil(t, out.Data[0].DistanceMeters)
		assert.Equal(t, 250.0, *out.Data[0].DistanceMeters)
		assert.Equal(t, 0, out.Data[0].ReviewCount)
		assert.Equal(t, 4.0, out.Data[0].AverageRating)
		assert.Equal(t, 1, out.Meta.Total)
	})
}

func TestWithinRadiusEndpoint(t *testing.T) {
	t.Run("accepts POST and passes radius_meters through", func(t *testing.T) {
		env := newTestEnv(t)

		env.spotRepo.On("WithinRadius", mock.Anything, 53.35, -6.26, 500.0, "thai").
			Return([]*domain.SpotWithDistance{}, nil)
		env.spotRepo.On("GetReviewAggregates", mock.Anything, []int64{}).
			Return(map[int64]domain.ReviewAggregate{}, nil)

		body := map[string]interface{}{
			"latitude":      53.35,
			"longitude":     -6.26,
			"radius_meters": 500,
			"cuisine_type":  "thai",
		}
		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/foodspots/within_radius", body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		env.spotRepo.AssertExpectations(t)
	})

	t.Run("400 without coordinates", func(t *testing.T) {
		env := newTestEnv(t)

		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/foodspots/within_radius", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_COORDINATES", decodeError(t, resp))
	})
}

func TestWithinBoundsEndpoint(t *testing.T) {
	t.Run("400 for fewer than four points", func(t *testing.T) {
		env := newTestEnv(t)

		body := map[string]interface{}{
			"bounds": [][]float64{{0, 0}, {0, 1}, {1, 1}},
		}
		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/foodspots/within_bounds", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_POLYGON", decodeError(t, resp))
	})

	t.Run("200 for a valid ring", func(t *testing.T) {
		env := newTestEnv(t)

		env.spotRepo.On("WithinBounds", mock.Anything, mock.Anything).
			Return([]*domain.FoodSpot{}, nil)
		env.spotRepo.On("GetReviewAggregates", mock.Anything, []int64{}).
			Return(map[int64]domain.ReviewAggregate{}, nil)

		body := map[string]interface{}{
			"bounds": [][]float64{{-6.3, 53.33}, {-6.3, 53.36}, {-6.24, 53.36}, {-6.24, 53.33}},
		}
		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/foodspots/within_bounds", body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestSearchEndpoint(t *testing.T) {
	t.Run("400 for a blank query", func(t *testing.T) {
		env := newTestEnv(t)

		resp := doJSON(t, env.app, http.MethodGet, "/api/v1/foodspots/search", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_QUERY", decodeError(t, resp))
	})

	t.Run("200 with results", func(t *testing.T) {
		env := newTestEnv(t)

		env.spotRepo.On("Search", mock.Anything, "pizza", mock.Anything).
			Return([]*domain.FoodSpot{
				{ID: 2, Name: "Pizza Place", CuisineType: "pizza", Rating: 4.5, PriceRange: "€"},
			}, nil)
		env.spotRepo.On("GetReviewAggregates", mock.Anything, []int64{2}).
			Return(map[int64]domain.ReviewAggregate{}, nil)

		resp := doJSON(t, env.app, http.MethodGet, "/api/v1/foodspots/search?q=pizza", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestGetFoodSpotEndpoint(t *testing.T) {
	t.Run("404 for a missing spot", func(t *testing.T) {
		env := newTestEnv(t)

		env.spotRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, errors.ErrSpotNotFound)

		resp := doJSON(t, env.app, http.MethodGet, "/api/v1/foodspots/99", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "SPOT_NOT_FOUND", decodeError(t, resp))
	})

	t.Run("400 for a non-numeric id", func(t *testing.T) {
		env := newTestEnv(t)

		resp := doJSON(t, env.app, http.MethodGet, "/api/v1/foodspots/abc", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("categories route is not swallowed by the id route", func(t *testing.T) {
		env := newTestEnv(t)

		resp := doJSON(t, env.app, http.MethodGet, "/api/v1/foodspots/categories", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data []domain.CuisineCategory `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Len(t, out.Data, 15)
	})
}

func TestDeleteFoodSpotEndpoint(t *testing.T) {
	t.Run("204 on success", func(t *testing.T) {
		env := newTestEnv(t)

		env.spotRepo.On("Deactivate", mock.Anything, int64(1)).Return(nil)

		resp := doJSON(t, env.app, http.MethodDelete, "/api/v1/foodspots/1", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("404 when already gone", func(t *testing.T) {
		env := newTestEnv(t)

		env.spotRepo.On("Deactivate", mock.Anything, int64(7)).Return(errors.ErrSpotNotFound)

		resp := doJSON(t, env.app, http.MethodDelete, "/api/v1/foodspots/7", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCreateReviewEndpoint(t *testing.T) {
	t.Run("400 for a rating above five, nothing persisted", func(t *testing.T) {
		env := newTestEnv(t)

		body := map[string]interface{}{
			"foodspot_id":   1,
			"reviewer_name": "Ana",
			"rating":        6.0,
			"comment":       "Too good",
		}
		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/reviews", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, resp))
		env.reviewRepo.AssertNotCalled(t, "Create")
	})

	t.Run("404 when the spot does not exist", func(t *testing.T) {
		env := newTestEnv(t)

		env.spotRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, errors.ErrSpotNotFound)

		body := map[string]interface{}{
			"foodspot_id":   5,
			"reviewer_name": "Ana",
			"rating":        4.0,
			"comment":       "Lovely",
		}
		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/reviews", body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		env.reviewRepo.AssertNotCalled(t, "Create")
	})

	t.Run("201 on success", func(t *testing.T) {
		env := newTestEnv(t)

		env.spotRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.FoodSpot{
			ID: 1, Name: "Luigi", CuisineType: "italian", IsActive: true,
		}, nil)
		env.reviewRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		body := map[string]interface{}{
			"foodspot_id":   1,
			"reviewer_name": "Ana",
			"rating":        4.5,
			"comment":       "Great pasta",
		}
		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/reviews", body)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}

func TestCreateReviewForSpotEndpoint(t *testing.T) {
	reviewBody := map[string]interface{}{
		"reviewer_name": "Ana",
		"rating":        4.5,
		"comment":       "Great pasta",
	}

	t.Run("201 with the id taken from the path", func(t *testing.T) {
		env := newTestEnv(t)

		env.spotRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.FoodSpot{
			ID: 3, Name: "Luigi", CuisineType: "italian", IsActive: true,
		}, nil)
		env.reviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
			return r.FoodSpotID == 3
		})).Return(nil)

		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/foodspots/3/reviews", reviewBody)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		env.reviewRepo.AssertExpectations(t)
	})

	t.Run("404 for a missing spot", func(t *testing.T) {
		env := newTestEnv(t)

		env.spotRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, errors.ErrSpotNotFound)

		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/foodspots/99/reviews", reviewBody)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		env.reviewRepo.AssertNotCalled(t, "Create")
	})

	t.Run("400 for an invalid rating", func(t *testing.T) {
		env := newTestEnv(t)

		body := map[string]interface{}{
			"reviewer_name": "Ana",
			"rating":        6.0,
			"comment":       "Too good",
		}
		resp := doJSON(t, env.app, http.MethodPost, "/api/v1/foodspots/3/reviews", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env.reviewRepo.AssertNotCalled(t, "Create")
	})
}

func TestReviewsByFoodSpotEndpoint(t *testing.T) {
	t.Run("400 without foodspot_id", func(t *testing.T) {
		env := newTestEnv(t)

		resp := doJSON(t, env.app, http.MethodGet, "/api/v1/reviews/by_foodspot", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_FOODSPOT_ID", decodeError(t, resp))
	})

	t.Run("200 with an empty list for an unknown spot", func(t *testing.T) {
		env := newTestEnv(t)

		env.reviewRepo.On("ListByFoodSpot", mock.Anything, int64(99)).
			Return([]*domain.Review{}, nil)
		env.spotRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, errors.ErrSpotNotFound)

		resp := doJSON(t, env.app, http.MethodGet, "/api/v1/reviews/by_foodspot?foodspot_id=99", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data []interface{} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Empty(t, out.Data)
	})
}

func TestStatisticsEndpoint(t *testing.T) {
	t.Run("200 with the snapshot", func(t *testing.T) {
		env := newTestEnv(t)

		env.statsRepo.On("GetStatistics", mock.Anything).Return(&domain.Statistics{
			TotalSpots:    3,
			AverageRating: 4.2,
			ByCuisine:     map[string]int{"thai": 3},
			ByPriceRange:  map[string]int{"€€": 3},
		}, nil)

		resp := doJSON(t, env.app, http.MethodGet, "/api/v1/foodspots/statistics", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data struct {
				TotalSpots    int            `json:"total_spots"`
				AverageRating float64        `json:"average_rating"`
				ByCuisine     map[string]int `json:"by_cuisine"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, 3, out.Data.TotalSpots)
		assert.Equal(t, 4.2, out.Data.AverageRating)
		assert.Equal(t, 3, out.Data.ByCuisine["thai"])
	})
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
