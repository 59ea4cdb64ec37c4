package dto

import (
	"time"

	"github.com/oclawesteban/gymflow/internal/domain"
)

const dateLayout = "2006-01-02"

type PlanResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DurationDays int    `json:"duration_days"`
	PriceCents   int    `json:"price_cents"`
	CreatedAt    string `json:"created_at"`
}

type MemberResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type FreezeResponse struct {
	At            string `json:"at"`
	PlannedResume string `json:"planned_resume"`
}

type MembershipResponse struct {
	ID        string          `json:"id"`
	MemberID  string          `json:"member_id"`
	PlanID    string          `json:"plan_id"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Status    string          `json:"status"`
	Freeze    *FreezeResponse `json:"freeze,omitempty"`
}

type ClassResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Capacity  int    `json:"capacity"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type ClassScheduleResponse struct {
	Class          ClassResponse `json:"class"`
	NextDate       string        `json:"next_date"`
	BookedSpots    int           `json:"booked_spots"`
	AvailableSpots int           `json:"available_spots"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	ClassID     string `json:"class_id"`
	MemberID    string `json:"member_id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	CheckedInAt string `json:"checked_in_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type SyncExpiredResponse struct {
	UpdatedCount int `json:"updated_count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPlanResponse(p *domain.Plan) PlanResponse {
	return PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		DurationDays: p.DurationDays,
		PriceCents:   p.PriceCents,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		FullName:       m.FullName,
		TelegramChatID: m.TelegramChatID,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}

func ToMembershipResponse(m *domain.Membership) MembershipResponse {
	resp := MembershipResponse{
		ID:        m.ID,
		MemberID:  m.MemberID,
		PlanID:    m.PlanID,
		StartDate: m.StartDate.Format(dateLayout),
		EndDate:   m.EndDate.Format(dateLayout),
		Status:    string(m.Status),
	}
	if m.Freeze != nil {
		resp.Freeze = &FreezeResponse{
			At:            m.Freeze.At.Format(time.RFC3339),
			PlannedResume: m.Freeze.PlannedResume.Format(dateLayout),
		}
	}
	return resp
}

func ToClassResponse(c *domain.ClassTemplate) ClassResponse {
	return ClassResponse{
		ID:        c.ID,
		Title:     c.Title,
		Weekday:   int(c.Weekday),
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Capacity:  c.Capacity,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func ToClassScheduleResponse(s *domain.ClassSchedule) ClassScheduleResponse {
	return ClassScheduleResponse{
		Class:          ToClassResponse(&s.Class),
		NextDate:       s.NextDate.Format(dateLayout),
		BookedSpots:    s.BookedSpots,
		AvailableSpots: s.AvailableSpots,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        b.ID,
		ClassID:   b.ClassID,
		MemberID:  b.MemberID,
		Date:      b.Date.Format(dateLayout),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if b.CheckedInAt != nil {
		resp.CheckedInAt = b.CheckedInAt.Format(time.RFC3339)
	}
	return resp
}
