package postgres

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/foodspot-service/internal/domain"
	"github.com/foodspot-service/internal/domain/repository"
	"github.com/foodspot-service/internal/pkg/errors"
)

const reviewColumns = `
	id, foodspot_id, reviewer_name, reviewer_email,
	rating, comment, is_approved, created_at, updated_at`

type reviewRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewReviewRepository(db *DB) repository.ReviewRepository {
	return &reviewRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *reviewRepository) ListApproved(ctx context.Context) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
		FROM reviews
		WHERE is_approved = TRUE
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list approved reviews", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *reviewRepository) ListByFoodSpot(ctx context.Context, foodspotID int64) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + `
		FROM reviews
		WHERE is_approved = TRUE AND foodspot_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, foodspotID)
	if err != nil {
		r.logger.Error("Failed to list reviews for food spot",
			zap.Int64("foodspot_id", foodspotID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	// Reviews are auto-approved; there is no moderation queue.
	query := `
		INSERT INTO reviews (
			foodspot_id, reviewer_name, reviewer_email, rating, comment, is_approved
		)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		review.FoodSpotID, review.ReviewerName, review.ReviewerEmail,
		review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create review",
			zap.Int64("foodspot_id", review.FoodSpotID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	review.IsApproved = true
	return nil
}

func (r *reviewRepository) collect(rows *sql.Rows) ([]*domain.Review, error) {
	var reviews []*domain.Review
	for rows.Next() {
		var rev domain.Review
		err := rows.Scan(
			&rev.ID, &rev.FoodSpotID, &rev.ReviewerName, &rev.ReviewerEmail,
			&rev.Rating, &rev.Comment, &rev.IsApproved, &rev.CreatedAt, &rev.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan review", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		reviews = append(reviews, &rev)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Review rows error", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return reviews, nil
}
