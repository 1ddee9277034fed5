package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names.
const (
	StreamReviewCreated = "stream:reviews:created"
)

// ReviewCreatedEvent is published after a review is persisted so that the
// stats worker can refresh the cached statistics.
type ReviewCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	FoodSpotID int64     `json:"foodspot_id"`
	ReviewID   int64     `json:"review_id"`
	Rating     float64   `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewReviewCreatedEvent builds the event for a persisted review.
func NewReviewCreatedEvent(r *Review) ReviewCreatedEvent {
	return ReviewCreatedEvent{
		EventID:    uuid.New(),
		FoodSpotID: r.FoodSpotID,
		ReviewID:   r.ID,
		Rating:     r.Rating,
		CreatedAt:  r.CreatedAt,
	}
}

// StreamMessage is a raw message read from a Redis stream.
type StreamMessage struct {
	ID   string
	Data string
}
