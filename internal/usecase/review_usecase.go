package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/foodspot-service/internal/domain"
	"github.com/foodspot-service/internal/domain/repository"
	"github.com/foodspot-service/internal/pkg/validator"
	"github.com/foodspot-service/internal/usecase/dto"
)

// ReviewUsecase handles review creation and listings. Creation verifies the
// target spot exists and publishes an event for the stats worker.
type ReviewUsecase struct {
	reviewRepo repository.ReviewRepository
	spotRepo   repository.FoodSpotRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewReviewUsecase(
	reviewRepo repository.ReviewRepository,
	spotRepo repository.FoodSpotRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo: reviewRepo,
		spotRepo:   spotRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Create validates the payload, checks the spot exists and persists the
// review. The created event is published best-effort: a stream failure is
// logged but does not fail the request.
func (u *ReviewUsecase) Create(ctx context.Context, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	spot, err := u.spotRepo.GetByID(ctx, req.FoodSpotID)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		FoodSpotID:    req.FoodSpotID,
		ReviewerName:  req.ReviewerName,
		ReviewerEmail: req.ReviewerEmail,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	u.logger.Info("Review created",
		zap.Int64("id", review.ID),
		zap.Int64("foodspot_id", review.FoodSpotID),
		zap.Float64("rating", review.Rating))

	if u.streamRepo != nil {
		event := domain.NewReviewCreatedEvent(review)
		if err := u.streamRepo.PublishToStream(ctx, domain.StreamReviewCreated, event); err != nil {
			u.logger.Warn("Failed to publish review created event",
				zap.Int64("review_id", review.ID),
				zap.Error(err))
		}
	}

	resp := dto.NewReviewResponse(review, spot.Name)
	return &resp, nil
}

// ListApproved returns all approved reviews, newest first.
func (u *ReviewUsecase) ListApproved(ctx context.Context) ([]dto.ReviewResponse, error) {
	reviews, err := u.reviewRepo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReviewResponse, len(reviews))
	for i, rev := range reviews {
		out[i] = dto.NewReviewResponse(rev, "")
	}
	return out, nil
}

// FilterByFoodSpot returns approved reviews for one spot, newest first. A
// missing or inactive spot is not an error here: the result is simply empty.
// The spot name is attached when the spot can be resolved.
func (u *ReviewUsecase) FilterByFoodSpot(ctx context.Context, foodspotID int64) ([]dto.ReviewResponse, error) {
	reviews, err := u.reviewRepo.ListByFoodSpot(ctx, foodspotID)
	if err != nil {
		return nil, err
	}

	var spotName string
	if spot, err := u.spotRepo.GetByID(ctx, foodspotID); err == nil {
		spotName = spot.Name
	}

	out := make([]dto.ReviewResponse, len(reviews))
	for i, rev := range reviews {
		out[i] = dto.NewReviewResponse(rev, spotName)
	}
	return out, nil
}

// ListByFoodSpot returns approved reviews for one spot, newest first. The
// spot must exist and be active.
func (u *ReviewUsecase) ListByFoodSpot(ctx context.Context, foodspotID int64) ([]dto.ReviewResponse, error) {
	spot, err := u.spotRepo.GetByID(ctx, foodspotID)
	if err != nil {
		return nil, err
	}

	reviews, err := u.reviewRepo.ListByFoodSpot(ctx, foodspotID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReviewResponse, len(reviews))
	for i, rev := range reviews {
		out[i] = dto.NewReviewResponse(rev, spot.Name)
	}
	return out, nil
}
