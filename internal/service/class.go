package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/oclawesteban/gymflow/internal/schedule"
	"github.com/oclawesteban/gymflow/internal/service/ports"
)

type ClassService struct {
	repo        ports.ClassRepo
	bookingRepo ports.BookingRepo
	clock       ports.Clock
}

func NewClassService(repo ports.ClassRepo, bookingRepo ports.BookingRepo, clock ports.Clock) *ClassService {
	return &ClassService{
		repo:        repo,
		bookingRepo: bookingRepo,
		clock:       clock,
	}
}

func (s *ClassService) Create(ctx context.Context, input domain.CreateClassInput) (*domain.ClassTemplate, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Weekday < 0 || input.Weekday > 6 {
		return nil, fmt.Errorf("%w: weekday must be in [0,6]", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	start, err := time.Parse("15:04", input.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time must be HH:MM", domain.ErrValidation)
	}
	end, err := time.Parse("15:04", input.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time must be HH:MM", domain.ErrValidation)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := s.clock.Now()
	class := &domain.ClassTemplate{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Weekday:   time.Weekday(input.Weekday),
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Capacity:  input.Capacity,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}

	return class, nil
}

func (s *ClassService) GetByID(ctx context.Context, id string) (*domain.ClassTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

// Schedule lists class templates with the next dated occurrence of each
// and the seats still available for it.
func (s *ClassService) Schedule(ctx context.Context) ([]*domain.ClassSchedule, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	now := s.clock.Now()
	res := make([]*domain.ClassSchedule, 0, len(classes))
	for _, class := range classes {
		next := schedule.NextOccurrence(class.Weekday, now)

		booked, err := s.bookingRepo.CountConfirmed(ctx, class.ID, next)
		if err != nil {
			return nil, fmt.Errorf("count confirmed: %w", err)
		}

		available := class.Capacity - booked
		if available < 0 {
			available = 0
		}

		res = append(res, &domain.ClassSchedule{
			Class:          *class,
			NextDate:       next,
			BookedSpots:    booked,
			AvailableSpots: available,
		})
	}

	return res, nil
}
