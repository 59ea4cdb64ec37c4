package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/oclawesteban/gymflow/internal/handler/dto"
	hmocks "github.com/oclawesteban/gymflow/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockMembershipSvc, *hmocks.MockBookingSvc, *hmocks.MockClassSvc, *hmocks.MockMemberSvc, http.Handler) {
	t.Helper()
	membershipSvc := hmocks.NewMockMembershipSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	classSvc := hmocks.NewMockClassSvc(t)
	memberSvc := hmocks.NewMockMemberSvc(t)

	h := NewHandler(membershipSvc, bookingSvc, classSvc, memberSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/plans", h.CreatePlan)
		api.GET("/plans", h.ListPlans)
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)
		api.GET("/members/:id/bookings", h.GetMemberBookings)
		api.POST("/members/:id/membership", h.AssignMembership)
		api.POST("/memberships/:id/freeze", h.FreezeMembership)
		api.POST("/memberships/:id/unfreeze", h.UnfreezeMembership)
		api.POST("/memberships/sync-expired", h.SyncExpired)
		api.POST("/classes", h.CreateClass)
		api.GET("/classes", h.ListClasses)
		api.POST("/classes/:id/book", h.BookClass)
		api.POST("/classes/:id/cancel", h.CancelBooking)
		api.POST("/classes/:id/checkin", h.CheckIn)
	}

	return membershipSvc, bookingSvc, classSvc, memberSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Plans ---

func TestHandler_CreatePlan_Success(t *testing.T) {
	membershipSvc, _, _, _, r := setupRouter(t)

	plan := &domain.Plan{
		ID:           uuid.New().String(),
		Name:         "Monthly",
		DurationDays: 30,
		PriceCents:   4900,
		CreatedAt:    time.Now(),
	}
	membershipSvc.EXPECT().CreatePlan(mock.Anything, mock.Anything).Return(plan, nil)

	w := doJSON(t, r, http.MethodPost, "/api/plans", dto.CreatePlanRequest{
		Name:         "Monthly",
		DurationDays: 30,
		PriceCents:   4900,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Monthly", resp.Name)
}

func TestHandler_CreatePlan_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/plans", map[string]any{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListPlans_Success(t *testing.T) {
	membershipSvc, _, _, _, r := setupRouter(t)

	plans := []*domain.Plan{
		{ID: "p1", Name: "Monthly", DurationDays: 30},
		{ID: "p2", Name: "Quarterly", DurationDays: 90},
	}
	membershipSvc.EXPECT().ListPlans(mock.Anything).Return(plans, nil)

	w := doJSON(t, r, http.MethodGet, "/api/plans", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Members ---

func TestHandler_CreateMember_Success(t *testing.T) {
	_, _, _, memberSvc, r := setupRouter(t)

	member := &domain.Member{
		ID:        uuid.New().String(),
		FullName:  "Alice Smith",
		CreatedAt: time.Now(),
	}
	memberSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(member, nil)

	w := doJSON(t, r, http.MethodPost, "/api/members", dto.CreateMemberRequest{FullName: "Alice Smith"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MemberResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice Smith", resp.FullName)
}

func TestHandler_CreateMember_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/members", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetMemberBookings_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	memberID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: "b1", ClassID: "c1", MemberID: memberID, Status: domain.BookingStatusConfirmed, Date: time.Now(), CreatedAt: time.Now()},
	}
	bookingSvc.EXPECT().ListByMember(mock.Anything, memberID).Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/members/"+memberID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetMemberBookings_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/members/bad-id/bookings", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Memberships ---

func TestHandler_AssignMembership_Success(t *testing.T) {
	membershipSvc, _, _, _, r := setupRouter(t)

	memberID := uuid.New().String()
	planID := uuid.New().String()
	membership := &domain.Membership{
		ID:        uuid.New().String(),
		MemberID:  memberID,
		PlanID:    planID,
		StartDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC),
		Status:    domain.MembershipStatusActive,
	}
	membershipSvc.EXPECT().Assign(mock.Anything, mock.Anything).Return(membership, nil)

	w := doJSON(t, r, http.MethodPost, "/api/members/"+memberID+"/membership", dto.AssignMembershipRequest{PlanID: planID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MembershipResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "2025-04-11", resp.EndDate)
}

func TestHandler_AssignMembership_AlreadyExists(t *testing.T) {
	membershipSvc, _, _, _, r := setupRouter(t)

	memberID := uuid.New().String()
	membershipSvc.EXPECT().Assign(mock.Anything, mock.Anything).Return(nil, domain.ErrMembershipExists)

	w := doJSON(t, r, http.MethodPost, "/api/members/"+memberID+"/membership", dto.AssignMembershipRequest{PlanID: uuid.New().String()})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AssignMembership_BadStartDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	memberID := uuid.New().String()

	w := doJSON(t, r, http.MethodPost, "/api/members/"+memberID+"/membership", dto.AssignMembershipRequest{
		PlanID:    uuid.New().String(),
		StartDate: "12.03.2025",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_FreezeMembership_Success(t *testing.T) {
	membershipSvc, _, _, _, r := setupRouter(t)

	membershipID := uuid.New().String()
	resume := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	membershipSvc.EXPECT().Freeze(mock.Anything, membershipID, resume).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/memberships/"+membershipID+"/freeze", dto.FreezeRequest{ResumeDate: "2025-03-20"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_FreezeMembership_NotActive(t *testing.T) {
	membershipSvc, _, _, _, r := setupRouter(t)

	membershipID := uuid.New().String()
	membershipSvc.EXPECT().Freeze(mock.Anything, membershipID, mock.Anything).Return(domain.ErrInvalidState)

	w := doJSON(t, r, http.MethodPost, "/api/memberships/"+membershipID+"/freeze", dto.FreezeRequest{ResumeDate: "2025-03-20"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_FreezeMembership_BadDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/memberships/"+uuid.New().String()+"/freeze", dto.FreezeRequest{ResumeDate: "soon"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UnfreezeMembership_Success(t *testing.T) {
	membershipSvc, _, _, _, r := setupRouter(t)

	membershipID := uuid.New().String()
	membership := &domain.Membership{
		ID:        membershipID,
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		Status:    domain.MembershipStatusActive,
	}
	membershipSvc.EXPECT().Unfreeze(mock.Anything, membershipID).Return(membership, nil)

	w := doJSON(t, r, http.MethodPost, "/api/memberships/"+membershipID+"/unfreeze", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MembershipResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "active", resp.Status)
}

func TestHandler_UnfreezeMembership_NotFound(t *testing.T) {
	membershipSvc, _, _, _, r := setupRouter(t)

	membershipID := uuid.New().String()
	membershipSvc.EXPECT().Unfreeze(mock.Anything, membershipID).Return(nil, domain.ErrMembershipNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/memberships/"+membershipID+"/unfreeze", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SyncExpired_Success(t *testing.T) {
	membershipSvc, _, _, _, r := setupRouter(t)

	membershipSvc.EXPECT().SyncExpired(mock.Anything).Return(3, nil)

	w := doJSON(t, r, http.MethodPost, "/api/memberships/sync-expired", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SyncExpiredResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.UpdatedCount)
}

// --- Classes ---

func TestHandler_CreateClass_Success(t *testing.T) {
	_, _, classSvc, _, r := setupRouter(t)

	class := &domain.ClassTemplate{
		ID:        uuid.New().String(),
		Title:     "Yoga",
		Weekday:   time.Wednesday,
		StartTime: "18:00",
		EndTime:   "19:00",
		Capacity:  15,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	classSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(class, nil)

	w := doJSON(t, r, http.MethodPost, "/api/classes", dto.CreateClassRequest{
		Title:     "Yoga",
		Weekday:   3,
		StartTime: "18:00",
		EndTime:   "19:00",
		Capacity:  15,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ClassResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Yoga", resp.Title)
	assert.Equal(t, 3, resp.Weekday)
}

func TestHandler_CreateClass_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/classes", map[string]any{"title": "Yoga"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListClasses_Success(t *testing.T) {
	_, _, classSvc, _, r := setupRouter(t)

	schedules := []*domain.ClassSchedule{
		{
			Class:          domain.ClassTemplate{ID: "c1", Title: "Yoga", Weekday: time.Wednesday, Capacity: 10, IsActive: true},
			NextDate:       time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			BookedSpots:    4,
			AvailableSpots: 6,
		},
	}
	classSvc.EXPECT().Schedule(mock.Anything).Return(schedules, nil)

	w := doJSON(t, r, http.MethodGet, "/api/classes", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ClassScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2025-03-12", resp[0].NextDate)
	assert.Equal(t, 6, resp[0].AvailableSpots)
}

// --- Bookings ---

func TestHandler_BookClass_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	memberID := uuid.New().String()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		ClassID:   classID,
		MemberID:  memberID,
		Date:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: time.Now(),
	}
	bookingSvc.EXPECT().Book(mock.Anything, classID, memberID, time.Time{}).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/classes/"+classID+"/book", dto.BookRequest{MemberID: memberID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2025-03-12", resp.Date)
}

func TestHandler_BookClass_InvalidClassID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/classes/bad-id/book", dto.BookRequest{MemberID: uuid.New().String()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookClass_Full(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	memberID := uuid.New().String()
	bookingSvc.EXPECT().Book(mock.Anything, classID, memberID, time.Time{}).Return(nil, domain.ErrClassFull)

	w := doJSON(t, r, http.MethodPost, "/api/classes/"+classID+"/book", dto.BookRequest{MemberID: memberID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookClass_NoActiveMembership(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	memberID := uuid.New().String()
	bookingSvc.EXPECT().Book(mock.Anything, classID, memberID, time.Time{}).Return(nil, domain.ErrNoActiveMembership)

	w := doJSON(t, r, http.MethodPost, "/api/classes/"+classID+"/book", dto.BookRequest{MemberID: memberID})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_BookClass_BadDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	classID := uuid.New().String()

	w := doJSON(t, r, http.MethodPost, "/api/classes/"+classID+"/book", dto.BookRequest{
		MemberID: uuid.New().String(),
		Date:     "next wednesday",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	memberID := uuid.New().String()
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	bookingSvc.EXPECT().Cancel(mock.Anything, classID, memberID, date).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/classes/"+classID+"/cancel", dto.CancelRequest{
		MemberID: memberID,
		Date:     "2025-03-12",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CheckIn_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	memberID := uuid.New().String()
	bookingSvc.EXPECT().CheckIn(mock.Anything, classID, memberID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/classes/"+classID+"/checkin", dto.CheckInRequest{MemberID: memberID})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CheckIn_AlreadyCheckedIn(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	memberID := uuid.New().String()
	bookingSvc.EXPECT().CheckIn(mock.Anything, classID, memberID).Return(domain.ErrAlreadyCheckedIn)

	w := doJSON(t, r, http.MethodPost, "/api/classes/"+classID+"/checkin", dto.CheckInRequest{MemberID: memberID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckIn_NotToday(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	memberID := uuid.New().String()
	bookingSvc.EXPECT().CheckIn(mock.Anything, classID, memberID).Return(domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/api/classes/"+classID+"/checkin", dto.CheckInRequest{MemberID: memberID})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	membershipSvc, _, _, _, r := setupRouter(t)

	membershipSvc.EXPECT().ListPlans(mock.Anything).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/plans", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
