package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/oclawesteban/gymflow/internal/schedule"
	"github.com/oclawesteban/gymflow/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	classRepo   ports.ClassRepo
	memberRepo  ports.MemberRepo
	gate        ports.EntitlementGate
	notifier    ports.Notifier
	clock       ports.Clock
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	classRepo ports.ClassRepo,
	memberRepo ports.MemberRepo,
	gate ports.EntitlementGate,
	notifier ports.Notifier,
	clock ports.Clock,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		classRepo:   classRepo,
		memberRepo:  memberRepo,
		gate:        gate,
		notifier:    notifier,
		clock:       clock,
		logger:      logger,
	}
}

// Book claims a seat on one dated occurrence of the class. A zero date
// means the next occurrence of the class weekday. Booking an occurrence
// the member already holds confirmed is a success no-op; booking over a
// cancelled row flips that same row back to confirmed.
func (s *BookingService) Book(ctx context.Context, classID, memberID string, date time.Time) (*domain.Booking, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("check class: %w", err)
	}
	if !class.IsActive {
		return nil, domain.ErrClassNotFound
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}

	if err = s.gate.AssertActive(ctx, memberID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	date, err = s.resolveDate(class, date, now)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		ClassID:   classID,
		MemberID:  memberID,
		Date:      date,
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	booked, err := s.bookingRepo.Book(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("book occurrence: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booked.ID),
		logger.String("class_id", classID),
		logger.String("member_id", memberID),
		logger.String("date", date.Format("2006-01-02")),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), member, class, date)

	return booked, nil
}

// Cancel releases the member's seat. Cancelling a booking that does not
// exist or is already cancelled is a success no-op.
func (s *BookingService) Cancel(ctx context.Context, classID, memberID string, date time.Time) error {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return fmt.Errorf("check class: %w", err)
	}

	if date.IsZero() {
		date = schedule.NextOccurrence(class.Weekday, s.clock.Now())
	} else {
		date = schedule.Date(date)
	}

	flipped, err := s.bookingRepo.Cancel(ctx, classID, memberID, date)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	if !flipped {
		return nil
	}

	s.logger.Info("booking cancelled",
		logger.String("class_id", classID),
		logger.String("member_id", memberID),
		logger.String("date", date.Format("2006-01-02")),
	)

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		s.logger.Error("failed to get member for cancel notification",
			logger.String("member_id", memberID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), member, class, date)

	return nil
}

// CheckIn marks attendance for today's occurrence. It requires an active
// membership and a confirmed booking for today.
func (s *BookingService) CheckIn(ctx context.Context, classID, memberID string) error {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return fmt.Errorf("check class: %w", err)
	}
	if !class.IsActive {
		return domain.ErrClassNotFound
	}

	if err = s.gate.AssertActive(ctx, memberID); err != nil {
		return err
	}

	now := s.clock.Now()
	today := schedule.Date(now)
	if today.Weekday() != class.Weekday {
		return fmt.Errorf("%w: class does not run today", domain.ErrValidation)
	}

	if err = s.bookingRepo.CheckIn(ctx, classID, memberID, today, now); err != nil {
		return fmt.Errorf("check in: %w", err)
	}

	s.logger.Info("member checked in",
		logger.String("class_id", classID),
		logger.String("member_id", memberID),
		logger.String("date", today.Format("2006-01-02")),
	)

	return nil
}

func (s *BookingService) ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByMember(ctx, memberID)
}

func (s *BookingService) resolveDate(class *domain.ClassTemplate, date, now time.Time) (time.Time, error) {
	if date.IsZero() {
		return schedule.NextOccurrence(class.Weekday, now), nil
	}

	date = schedule.Date(date)
	if date.Weekday() != class.Weekday {
		return time.Time{}, fmt.Errorf("%w: date does not fall on the class weekday", domain.ErrValidation)
	}
	if date.Before(schedule.Date(now)) {
		return time.Time{}, fmt.Errorf("%w: occurrence date is in the past", domain.ErrValidation)
	}

	return date, nil
}
