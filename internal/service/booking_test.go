package service

import (
	"context"
	"testing"
	"time"

	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/oclawesteban/gymflow/internal/schedule"
	"github.com/oclawesteban/gymflow/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	bookingRepo *mocks.MockBookingRepo
	classRepo   *mocks.MockClassRepo
	memberRepo  *mocks.MockMemberRepo
	gate        *mocks.MockEntitlementGate
	notifier    *mocks.MockNotifier
	clock       *mocks.MockClock
	svc         *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		classRepo:   mocks.NewMockClassRepo(t),
		memberRepo:  mocks.NewMockMemberRepo(t),
		gate:        mocks.NewMockEntitlementGate(t),
		notifier:    mocks.NewMockNotifier(t),
		clock:       mocks.NewMockClock(t),
	}
	f.svc = NewBookingService(
		f.bookingRepo, f.classRepo, f.memberRepo,
		f.gate, f.notifier, f.clock, newTestLogger(t),
	)
	return f
}

func wednesdayClass() *domain.ClassTemplate {
	return &domain.ClassTemplate{
		ID:        "c1",
		Title:     "Yoga",
		Weekday:   time.Wednesday,
		StartTime: "18:00",
		EndTime:   "19:00",
		Capacity:  10,
		IsActive:  true,
	}
}

// --- Book ---

func TestBookingService_Book_Success(t *testing.T) {
	f := newBookingFixture(t)

	class := wednesdayClass()
	member := &domain.Member{ID: "u1"}
	date := schedule.Date(testNow) // testNow is a Wednesday

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(class, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(member, nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(nil)
	f.clock.EXPECT().Now().Return(testNow)
	f.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			return b, nil
		})
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, member, class, date).Return()

	booking, err := f.svc.Book(context.Background(), "c1", "u1", date)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, date, booking.Date)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_ZeroDateResolvesNextOccurrence(t *testing.T) {
	f := newBookingFixture(t)

	class := wednesdayClass()
	class.Weekday = time.Friday
	member := &domain.Member{ID: "u1"}
	wantDate := schedule.NextOccurrence(time.Friday, testNow)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(class, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(member, nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(nil)
	f.clock.EXPECT().Now().Return(testNow)
	f.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			return b, nil
		})
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, member, class, wantDate).Return()

	booking, err := f.svc.Book(context.Background(), "c1", "u1", time.Time{})

	require.NoError(t, err)
	assert.Equal(t, wantDate, booking.Date)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_GateDenied(t *testing.T) {
	f := newBookingFixture(t)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(wednesdayClass(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.Member{ID: "u1"}, nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(domain.ErrNoActiveMembership)

	_, err := f.svc.Book(context.Background(), "c1", "u1", time.Time{})

	assert.ErrorIs(t, err, domain.ErrNoActiveMembership)
}

// The gate decision has to come before any capacity consideration: a
// member whose membership lapsed is refused even when the class has
// seats to spare. The gate here is the real membership service.
func TestBookingService_Book_LapsedMembershipRefusedDespiteFreeSeats(t *testing.T) {
	f := newBookingFixture(t)

	membershipRepo := mocks.NewMockMembershipRepo(t)
	gate := NewMembershipService(
		membershipRepo, mocks.NewMockPlanRepo(t), mocks.NewMockMemberRepo(t),
		mocks.NewMockNotifier(t), f.clock, newTestLogger(t),
	)
	svc := NewBookingService(
		f.bookingRepo, f.classRepo, f.memberRepo,
		gate, f.notifier, f.clock, newTestLogger(t),
	)

	lapsed := &domain.Membership{
		ID:        "m1",
		MemberID:  "u1",
		StartDate: schedule.Date(testNow).AddDate(0, 0, -40),
		EndDate:   schedule.Date(testNow).AddDate(0, 0, -10),
		Status:    domain.MembershipStatusActive, // sweep has not caught up yet
	}

	class := wednesdayClass()
	class.Capacity = 100

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(class, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.Member{ID: "u1"}, nil)
	membershipRepo.EXPECT().GetCurrentByMember(mock.Anything, "u1").Return(lapsed, nil)
	f.clock.EXPECT().Now().Return(testNow)

	_, err := svc.Book(context.Background(), "c1", "u1", time.Time{})

	assert.ErrorIs(t, err, domain.ErrNoActiveMembership)
	f.bookingRepo.AssertNotCalled(t, "Book")
}

func TestBookingService_Book_ClassFull(t *testing.T) {
	f := newBookingFixture(t)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(wednesdayClass(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.Member{ID: "u1"}, nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(nil)
	f.clock.EXPECT().Now().Return(testNow)
	f.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrClassFull)

	_, err := f.svc.Book(context.Background(), "c1", "u1", time.Time{})

	assert.ErrorIs(t, err, domain.ErrClassFull)
}

func TestBookingService_Book_InactiveClass(t *testing.T) {
	f := newBookingFixture(t)

	class := wednesdayClass()
	class.IsActive = false

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(class, nil)

	_, err := f.svc.Book(context.Background(), "c1", "u1", time.Time{})

	assert.ErrorIs(t, err, domain.ErrClassNotFound)
}

func TestBookingService_Book_WrongWeekday(t *testing.T) {
	f := newBookingFixture(t)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(wednesdayClass(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.Member{ID: "u1"}, nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(nil)
	f.clock.EXPECT().Now().Return(testNow)

	thursday := schedule.Date(testNow).AddDate(0, 0, 1)
	_, err := f.svc.Book(context.Background(), "c1", "u1", thursday)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_PastDate(t *testing.T) {
	f := newBookingFixture(t)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(wednesdayClass(), nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.Member{ID: "u1"}, nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(nil)
	f.clock.EXPECT().Now().Return(testNow)

	lastWednesday := schedule.Date(testNow).AddDate(0, 0, -7)
	_, err := f.svc.Book(context.Background(), "c1", "u1", lastWednesday)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_RepeatIsNoOp(t *testing.T) {
	f := newBookingFixture(t)

	class := wednesdayClass()
	member := &domain.Member{ID: "u1"}
	date := schedule.Date(testNow)

	existing := &domain.Booking{
		ID:       "b-existing",
		ClassID:  "c1",
		MemberID: "u1",
		Date:     date,
		Status:   domain.BookingStatusConfirmed,
	}

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(class, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(member, nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(nil)
	f.clock.EXPECT().Now().Return(testNow)
	f.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything).Return(existing, nil)
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, member, class, date).Return()

	booking, err := f.svc.Book(context.Background(), "c1", "u1", date)

	require.NoError(t, err)
	assert.Equal(t, "b-existing", booking.ID)

	time.Sleep(50 * time.Millisecond)
}

// --- Cancel ---

func TestBookingService_Cancel_Success(t *testing.T) {
	f := newBookingFixture(t)

	class := wednesdayClass()
	member := &domain.Member{ID: "u1"}
	date := schedule.Date(testNow)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(class, nil)
	f.bookingRepo.EXPECT().Cancel(mock.Anything, "c1", "u1", date).Return(true, nil)
	f.memberRepo.EXPECT().GetByID(mock.Anything, "u1").Return(member, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, member, class, date).Return()

	err := f.svc.Cancel(context.Background(), "c1", "u1", date)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NothingToCancel(t *testing.T) {
	f := newBookingFixture(t)

	date := schedule.Date(testNow)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(wednesdayClass(), nil)
	f.bookingRepo.EXPECT().Cancel(mock.Anything, "c1", "u1", date).Return(false, nil)

	err := f.svc.Cancel(context.Background(), "c1", "u1", date)

	require.NoError(t, err)
	f.notifier.AssertNotCalled(t, "NotifyBookingCancelled")
}

func TestBookingService_Cancel_RepeatIsNoOp(t *testing.T) {
	f := newBookingFixture(t)

	date := schedule.Date(testNow)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(wednesdayClass(), nil)
	f.bookingRepo.EXPECT().Cancel(mock.Anything, "c1", "u1", date).Return(false, nil).Twice()

	require.NoError(t, f.svc.Cancel(context.Background(), "c1", "u1", date))
	require.NoError(t, f.svc.Cancel(context.Background(), "c1", "u1", date))
}

func TestBookingService_Cancel_ClassNotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.classRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrClassNotFound)

	err := f.svc.Cancel(context.Background(), "missing", "u1", schedule.Date(testNow))

	assert.ErrorIs(t, err, domain.ErrClassNotFound)
}

// --- CheckIn ---

func TestBookingService_CheckIn_Success(t *testing.T) {
	f := newBookingFixture(t)

	today := schedule.Date(testNow)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(wednesdayClass(), nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(nil)
	f.clock.EXPECT().Now().Return(testNow)
	f.bookingRepo.EXPECT().CheckIn(mock.Anything, "c1", "u1", today, testNow).Return(nil)

	require.NoError(t, f.svc.CheckIn(context.Background(), "c1", "u1"))
}

func TestBookingService_CheckIn_ClassNotToday(t *testing.T) {
	f := newBookingFixture(t)

	class := wednesdayClass()
	class.Weekday = time.Saturday

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(class, nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(nil)
	f.clock.EXPECT().Now().Return(testNow)

	err := f.svc.CheckIn(context.Background(), "c1", "u1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CheckIn_NoBooking(t *testing.T) {
	f := newBookingFixture(t)

	today := schedule.Date(testNow)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(wednesdayClass(), nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(nil)
	f.clock.EXPECT().Now().Return(testNow)
	f.bookingRepo.EXPECT().CheckIn(mock.Anything, "c1", "u1", today, testNow).Return(domain.ErrBookingNotFound)

	err := f.svc.CheckIn(context.Background(), "c1", "u1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_CheckIn_AlreadyCheckedIn(t *testing.T) {
	f := newBookingFixture(t)

	today := schedule.Date(testNow)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(wednesdayClass(), nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(nil)
	f.clock.EXPECT().Now().Return(testNow)
	f.bookingRepo.EXPECT().CheckIn(mock.Anything, "c1", "u1", today, testNow).Return(domain.ErrAlreadyCheckedIn)

	err := f.svc.CheckIn(context.Background(), "c1", "u1")

	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

func TestBookingService_CheckIn_GateDenied(t *testing.T) {
	f := newBookingFixture(t)

	f.classRepo.EXPECT().GetByID(mock.Anything, "c1").Return(wednesdayClass(), nil)
	f.gate.EXPECT().AssertActive(mock.Anything, "u1").Return(domain.ErrNoActiveMembership)

	err := f.svc.CheckIn(context.Background(), "c1", "u1")

	assert.ErrorIs(t, err, domain.ErrNoActiveMembership)
}

// --- ListByMember ---

func TestBookingService_ListByMember(t *testing.T) {
	f := newBookingFixture(t)

	bookings := []*domain.Booking{
		{ID: "b1", ClassID: "c1", MemberID: "u1", Status: domain.BookingStatusConfirmed},
	}
	f.bookingRepo.EXPECT().ListByMember(mock.Anything, "u1").Return(bookings, nil)

	res, err := f.svc.ListByMember(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, res, 1)
}
