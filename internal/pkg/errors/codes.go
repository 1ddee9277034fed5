package errors

import "net/http"

var (
	ErrSpotNotFound = New(
		"SPOT_NOT_FOUND",
		"Food spot not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid latitude or longitude",
		http.StatusBadRequest,
	)

	ErrInvalidPolygon = New(
		"INVALID_POLYGON",
		"Need at least 4 points",
		http.StatusBadRequest,
	)

	ErrInvalidQuery = New(
		"INVALID_QUERY",
		"Search query required",
		http.StatusBadRequest,
	)

	ErrMissingFoodSpotID = New(
		"MISSING_FOODSPOT_ID",
		"foodspot_id parameter required",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
