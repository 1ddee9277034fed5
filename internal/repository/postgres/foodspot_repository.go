package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/foodspot-service/internal/domain"
	"github.com/foodspot-service/internal/domain/repository"
	"github.com/foodspot-service/internal/pkg/errors"
)

// spotColumns is the shared projection; lat/lon are read back from the point
// geometry.
const spotColumns = `
	id, name, cuisine_type, description, address, phone, website,
	rating, price_range, opening_hours,
	ST_Y(location) AS lat, ST_X(location) AS lon,
	is_active, created_at, updated_at`

type foodSpotRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewFoodSpotRepository(db *DB) repository.FoodSpotRepository {
	return &foodSpotRepository{
		db:     db,
		logger: db.logger,
	}
}

func scanSpot(row interface{ Scan(...interface{}) error }, s *domain.FoodSpot) error {
	return row.Scan(
		&s.ID, &s.Name, &s.CuisineType, &s.Description, &s.Address,
		&s.Phone, &s.Website, &s.Rating, &s.PriceRange, &s.OpeningHours,
		&s.Lat, &s.Lon, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
}

func (r *foodSpotRepository) GetByID(ctx context.Context, id int64) (*domain.FoodSpot, error) {
	query := `SELECT ` + spotColumns + `
		FROM food_spots
		WHERE id = $1 AND is_active = TRUE`

	var spot domain.FoodSpot
	err := scanSpot(r.db.QueryRowContext(ctx, query, id), &spot)
	if err == sql.ErrNoRows {
		return nil, errors.ErrSpotNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get food spot by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &spot, nil
}

func (r *foodSpotRepository) List(ctx context.Context, cuisineType string) ([]*domain.FoodSpot, error) {
	query := `SELECT ` + spotColumns + `
		FROM food_spots
		WHERE is_active = TRUE`

	args := []interface{}{}
	if cuisineType != "" {
		query += ` AND cuisine_type = $1`
		args = append(args, cuisineType)
	}
	query += ` ORDER BY rating DESC, name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list food spots",
			zap.String("cuisine_type", cuisineType),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return collectSpots(rows)
}

func (r *foodSpotRepository) Create(ctx context.Context, spot *domain.FoodSpot) error {
	query := `
		INSERT INTO food_spots (
			name, cuisine_type, description, address, phone, website,
			rating, price_range, opening_hours, location, is_active
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			ST_SetSRID(ST_MakePoint($10, $11), 4326), TRUE
		)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		spot.Name, spot.CuisineType, spot.Description, spot.Address,
		spot.Phone, spot.Website, spot.Rating, spot.PriceRange,
		spot.OpeningHours, spot.Lon, spot.Lat,
	).Scan(&spot.ID, &spot.CreatedAt, &spot.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create food spot", zap.String("name", spot.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	spot.IsActive = true
	return nil
}

func (r *foodSpotRepository) Update(ctx context.Context, spot *domain.FoodSpot) error {
	query := `
		UPDATE food_spots SET
			name = $1, cuisine_type = $2, description = $3, address = $4,
			phone = $5, website = $6, rating = $7, price_range = $8,
			opening_hours = $9,
			location = ST_SetSRID(ST_MakePoint($10, $11), 4326),
			updated_at = NOW()
		WHERE id = $12 AND is_active = TRUE
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		spot.Name, spot.CuisineType, spot.Description, spot.Address,
		spot.Phone, spot.Website, spot.Rating, spot.PriceRange,
		spot.OpeningHours, spot.Lon, spot.Lat, spot.ID,
	).Scan(&spot.CreatedAt, &spot.UpdatedAt)
	if err == sql.ErrNoRows {
		return errors.ErrSpotNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update food spot", zap.Int64("id", spot.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	spot.IsActive = true
	return nil
}

func (r *foodSpotRepository) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE food_spots SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to deactivate food spot", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read rows affected", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrSpotNotFound
	}

	return nil
}

func (r *foodSpotRepository) Nearest(ctx context.Context, lat, lon float64, limit int) ([]*domain.SpotWithDistance, error) {
	query := `
		WITH origin AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geom
		)
		SELECT ` + spotColumns + `,
			ST_Distance(location::geography, origin.geom) AS distance
		FROM food_spots, origin
		WHERE is_active = TRUE
		ORDER BY distance, id
		LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, lon, lat, limit)
	if err != nil {
		r.logger.Error("Failed to query nearest food spots",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Int("limit", limit),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return collectSpotsWithDistance(rows)
}

func (r *foodSpotRepository) WithinRadius(ctx context.Context, lat, lon, radiusMeters float64, cuisineType string) ([]*domain.SpotWithDistance, error) {
	query := `
		WITH origin AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geom
		)
		SELECT ` + spotColumns + `,
			ST_Distance(location::geography, origin.geom) AS distance
		FROM food_spots, origin
		WHERE is_active = TRUE
		  AND ST_DWithin(location::geography, origin.geom, $3)`

	args := []interface{}{lon, lat, radiusMeters}
	if cuisineType != "" {
		query += ` AND cuisine_type = $4`
		args = append(args, cuisineType)
	}
	query += ` ORDER BY distance, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query food spots within radius",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Float64("radius_meters", radiusMeters),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return collectSpotsWithDistance(rows)
}

func (r *foodSpotRepository) WithinBounds(ctx context.Context, ring []domain.LatLon) ([]*domain.FoodSpot, error) {
	// ST_Covers includes spots sitting exactly on the polygon boundary.
	query := `SELECT ` + spotColumns + `
		FROM food_spots
		WHERE is_active = TRUE
		  AND ST_Covers(ST_GeomFromText($1, 4326), location)
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, polygonWKT(ring))
	if err != nil {
		r.logger.Error("Failed to query food spots within bounds",
			zap.Int("ring_points", len(ring)),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return collectSpots(rows)
}

func (r *foodSpotRepository) Search(ctx context.Context, query string, filter domain.SearchFilter) ([]*domain.FoodSpot, error) {
	sqlQuery := `SELECT ` + spotColumns + `
		FROM food_spots
		WHERE is_active = TRUE
		  AND (name ILIKE $1 OR description ILIKE $1 OR address ILIKE $1)`

	args := []interface{}{"%" + query + "%"}
	argIdx := 2

	if filter.CuisineType != "" {
		sqlQuery += fmt.Sprintf(" AND cuisine_type = $%d", argIdx)
		args = append(args, filter.CuisineType)
		argIdx++
	}
	if filter.MinRating != nil {
		sqlQuery += fmt.Sprintf(" AND rating >= $%d", argIdx)
		args = append(args, *filter.MinRating)
		argIdx++
	}
	if filter.PriceRange != "" {
		sqlQuery += fmt.Sprintf(" AND price_range = $%d", argIdx)
		args = append(args, filter.PriceRange)
	}

	sqlQuery += ` ORDER BY rating DESC, name`

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		r.logger.Error("Failed to search food spots",
			zap.String("query", query),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return collectSpots(rows)
}

func (r *foodSpotRepository) GetReviewAggregates(ctx context.Context, ids []int64) (map[int64]domain.ReviewAggregate, error) {
	aggregates := make(map[int64]domain.ReviewAggregate, len(ids))
	if len(ids) == 0 {
		return aggregates, nil
	}

	query := `
		SELECT foodspot_id, COUNT(*) AS review_count, AVG(rating) AS average_rating
		FROM reviews
		WHERE is_approved = TRUE AND foodspot_id = ANY($1)
		GROUP BY foodspot_id`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to query review aggregates",
			zap.Int("spot_count", len(ids)),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var agg domain.ReviewAggregate
		if err := rows.Scan(&id, &agg.ReviewCount, &agg.AverageRating); err != nil {
			r.logger.Error("Failed to scan review aggregate", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		aggregates[id] = agg
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Review aggregate rows error", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return aggregates, nil
}

func collectSpots(rows *sql.Rows) ([]*domain.FoodSpot, error) {
	var spots []*domain.FoodSpot
	for rows.Next() {
		var s domain.FoodSpot
		if err := scanSpot(rows, &s); err != nil {
			return nil, errors.ErrDatabaseError
		}
		spots = append(spots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return spots, nil
}

func collectSpotsWithDistance(rows *sql.Rows) ([]*domain.SpotWithDistance, error) {
	var spots []*domain.SpotWithDistance
	for rows.Next() {
		var s domain.SpotWithDistance
		err := rows.Scan(
			&s.ID, &s.Name, &s.CuisineType, &s.Description, &s.Address,
			&s.Phone, &s.Website, &s.Rating, &s.PriceRange, &s.OpeningHours,
			&s.Lat, &s.Lon, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&s.DistanceMeters,
		)
		if err != nil {
			return nil, errors.ErrDatabaseError
		}
		spots = append(spots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return spots, nil
}

// polygonWKT renders a closed internal ring as WKT. WKT axis order is
// "lon lat", the reverse of the internal tuple.
func polygonWKT(ring []domain.LatLon) string {
	var b strings.Builder
	b.WriteString("POLYGON((")
	for i, p := range ring {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(p.Lon, 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p.Lat, 'f', -1, 64))
	}
	b.WriteString("))")
	return b.String()
}
