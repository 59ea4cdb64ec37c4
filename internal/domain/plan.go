package domain

import "time"

// Plan defines how long a membership assigned from it lasts.
type Plan struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DurationDays int       `json:"duration_days"`
	PriceCents   int       `json:"price_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreatePlanInput struct {
	Name         string
	DurationDays int
	PriceCents   int
}
