package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/oclawesteban/gymflow/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type MembershipSvc interface {
	CreatePlan(ctx context.Context, input domain.CreatePlanInput) (*domain.Plan, error)
	ListPlans(ctx context.Context) ([]*domain.Plan, error)
	Assign(ctx context.Context, input domain.AssignMembershipInput) (*domain.Membership, error)
	Freeze(ctx context.Context, id string, plannedResume time.Time) error
	Unfreeze(ctx context.Context, id string) (*domain.Membership, error)
	SyncExpired(ctx context.Context) (int, error)
}

type BookingSvc interface {
	Book(ctx context.Context, classID, memberID string, date time.Time) (*domain.Booking, error)
	Cancel(ctx context.Context, classID, memberID string, date time.Time) error
	CheckIn(ctx context.Context, classID, memberID string) error
	ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error)
}

type ClassSvc interface {
	Create(ctx context.Context, input domain.CreateClassInput) (*domain.ClassTemplate, error)
	Schedule(ctx context.Context) ([]*domain.ClassSchedule, error)
}

type MemberSvc interface {
	Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
}

type Handler struct {
	membershipService MembershipSvc
	bookingService    BookingSvc
	classService      ClassSvc
	memberService     MemberSvc
}

func NewHandler(
	membershipService MembershipSvc,
	bookingService BookingSvc,
	classService ClassSvc,
	memberService MemberSvc,
) *Handler {
	return &Handler{
		membershipService: membershipService,
		bookingService:    bookingService,
		classService:      classService,
		memberService:     memberService,
	}
}

// Plans

func (h *Handler) CreatePlan(c *ginext.Context) {
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	plan, err := h.membershipService.CreatePlan(c.Request.Context(), domain.CreatePlanInput{
		Name:         req.Name,
		DurationDays: req.DurationDays,
		PriceCents:   req.PriceCents,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPlanResponse(plan))
}

func (h *Handler) ListPlans(c *ginext.Context) {
	plans, err := h.membershipService.ListPlans(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		resp = append(resp, dto.ToPlanResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Members

func (h *Handler) CreateMember(c *ginext.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), domain.CreateMemberInput{
		FullName:       req.FullName,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *Handler) ListMembers(c *ginext.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMemberBookings(c *ginext.Context) {
	memberID := c.Param("id")
	if _, err := uuid.Parse(memberID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid member id"})
		return
	}

	bookings, err := h.bookingService.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Memberships

func (h *Handler) AssignMembership(c *ginext.Context) {
	memberID := c.Param("id")
	if _, err := uuid.Parse(memberID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid member id"})
		return
	}

	var req dto.AssignMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.AssignMembershipInput{
		MemberID: memberID,
		PlanID:   req.PlanID,
	}
	if req.StartDate != "" {
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid start_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = start
	}

	membership, err := h.membershipService.Assign(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMembershipResponse(membership))
}

func (h *Handler) FreezeMembership(c *ginext.Context) {
	membershipID := c.Param("id")
	if _, err := uuid.Parse(membershipID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid membership id"})
		return
	}

	var req dto.FreezeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resume, err := time.Parse(dateLayout, req.ResumeDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid resume_date format, expected YYYY-MM-DD",
		})
		return
	}

	if err := h.membershipService.Freeze(c.Request.Context(), membershipID, resume); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "frozen"})
}

func (h *Handler) UnfreezeMembership(c *ginext.Context) {
	membershipID := c.Param("id")
	if _, err := uuid.Parse(membershipID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid membership id"})
		return
	}

	membership, err := h.membershipService.Unfreeze(c.Request.Context(), membershipID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMembershipResponse(membership))
}

func (h *Handler) SyncExpired(c *ginext.Context) {
	count, err := h.membershipService.SyncExpired(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SyncExpiredResponse{UpdatedCount: count})
}

// Classes

func (h *Handler) CreateClass(c *ginext.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	class, err := h.classService.Create(c.Request.Context(), domain.CreateClassInput{
		Title:     req.Title,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Capacity:  req.Capacity,
		IsActive:  req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClassResponse(class))
}

func (h *Handler) ListClasses(c *ginext.Context) {
	schedules, err := h.classService.Schedule(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ClassScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		resp = append(resp, dto.ToClassScheduleResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) BookClass(c *ginext.Context) {
	classID := c.Param("id")
	if _, err := uuid.Parse(classID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, ok := h.parseOptionalDate(c, req.Date)
	if !ok {
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), classID, req.MemberID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	classID := c.Param("id")
	if _, err := uuid.Parse(classID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, ok := h.parseOptionalDate(c, req.Date)
	if !ok {
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), classID, req.MemberID, date); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) CheckIn(c *ginext.Context) {
	classID := c.Param("id")
	if _, err := uuid.Parse(classID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.CheckIn(c.Request.Context(), classID, req.MemberID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "checked_in"})
}

func (h *Handler) parseOptionalDate(c *ginext.Context, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return time.Time{}, false
	}

	return date, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrClassNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrPlanNotFound),
		errors.Is(err, domain.ErrMembershipNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoActiveMembership):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrClassFull),
		errors.Is(err, domain.ErrMembershipExists),
		errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
