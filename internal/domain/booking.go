package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is one member's claim on one dated occurrence of a class.
// There is at most one row per (class, member, date): cancelling and
// rebooking flips the same row, rows are never deleted.
type Booking struct {
	ID          string        `json:"id"`
	ClassID     string        `json:"class_id"`
	MemberID    string        `json:"member_id"`
	Date        time.Time     `json:"date"` // occurrence date, UTC midnight
	Status      BookingStatus `json:"status"`
	CheckedInAt *time.Time    `json:"checked_in_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
