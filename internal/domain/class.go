package domain

import "time"

// ClassTemplate is a weekly recurring class: it runs every week on the
// same weekday at the same time. Dated occurrences are derived, never
// stored.
type ClassTemplate struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Weekday   time.Weekday `json:"weekday"`
	StartTime string       `json:"start_time"` // HH:MM
	EndTime   string       `json:"end_time"`   // HH:MM
	Capacity  int          `json:"capacity"`
	IsActive  bool         `json:"is_active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ClassSchedule pairs a class with its next dated occurrence and the
// seats still open for it.
type ClassSchedule struct {
	Class          ClassTemplate `json:"class"`
	NextDate       time.Time     `json:"next_date"`
	BookedSpots    int           `json:"booked_spots"`
	AvailableSpots int           `json:"available_spots"`
}

type CreateClassInput struct {
	Title     string
	Weekday   int
	StartTime string
	EndTime   string
	Capacity  int
	IsActive  *bool
}
