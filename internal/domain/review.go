package domain

import "time"

// Review belongs to a FoodSpot and is deleted with it. Reviews are
// auto-approved on creation; only approved reviews are ever served or
// aggregated.
type Review struct {
	ID            int64     `json:"id" db:"id"`
	FoodSpotID    int64     `json:"foodspot_id" db:"foodspot_id"`
	ReviewerName  string    `json:"reviewer_name" db:"reviewer_name"`
	ReviewerEmail *string   `json:"reviewer_email,omitempty" db:"reviewer_email"`
	Rating        float64   `json:"rating" db:"rating"`
	Comment       string    `json:"comment" db:"comment"`
	IsApproved    bool      `json:"is_approved" db:"is_approved"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
