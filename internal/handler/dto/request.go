package dto

type CreatePlanRequest struct {
	Name         string `json:"name" binding:"required"`
	DurationDays int    `json:"duration_days" binding:"required,gt=0"`
	PriceCents   int    `json:"price_cents" binding:"gte=0"`
}

type CreateMemberRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type AssignMembershipRequest struct {
	PlanID    string `json:"plan_id" binding:"required,uuid"`
	StartDate string `json:"start_date"` // YYYY-MM-DD, defaults to today
}

type FreezeRequest struct {
	ResumeDate string `json:"resume_date" binding:"required"` // YYYY-MM-DD
}

type CreateClassRequest struct {
	Title     string `json:"title" binding:"required"`
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required,gt=0"`
	IsActive  *bool  `json:"is_active"`
}

type BookRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
	Date     string `json:"date"` // YYYY-MM-DD, defaults to the next occurrence
}

type CancelRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
	Date     string `json:"date"`
}

type CheckInRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
}
