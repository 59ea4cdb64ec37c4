package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/oclawesteban/gymflow/internal/schedule"
	"github.com/oclawesteban/gymflow/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type MembershipService struct {
	membershipRepo ports.MembershipRepo
	planRepo       ports.PlanRepo
	memberRepo     ports.MemberRepo
	notifier       ports.Notifier
	clock          ports.Clock
	logger         logger.Logger
}

func NewMembershipService(
	membershipRepo ports.MembershipRepo,
	planRepo ports.PlanRepo,
	memberRepo ports.MemberRepo,
	notifier ports.Notifier,
	clock ports.Clock,
	logger logger.Logger,
) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		planRepo:       planRepo,
		memberRepo:     memberRepo,
		notifier:       notifier,
		clock:          clock,
		logger:         logger,
	}
}

func (s *MembershipService) CreatePlan(ctx context.Context, input domain.CreatePlanInput) (*domain.Plan, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.DurationDays <= 0 {
		return nil, fmt.Errorf("%w: duration_days must be positive", domain.ErrValidation)
	}
	if input.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price_cents must not be negative", domain.ErrValidation)
	}

	plan := &domain.Plan{
		ID:           uuid.New().String(),
		Name:         input.Name,
		DurationDays: input.DurationDays,
		PriceCents:   input.PriceCents,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	return plan, nil
}

func (s *MembershipService) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	return s.planRepo.List(ctx)
}

// Assign creates an active membership for the member from the plan's
// duration. A member holds at most one current (active or frozen)
// membership at a time.
func (s *MembershipService) Assign(ctx context.Context, input domain.AssignMembershipInput) (*domain.Membership, error) {
	if _, err := s.memberRepo.GetByID(ctx, input.MemberID); err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}

	plan, err := s.planRepo.GetByID(ctx, input.PlanID)
	if err != nil {
		return nil, fmt.Errorf("check plan: %w", err)
	}

	now := s.clock.Now()

	current, err := s.membershipRepo.GetCurrentByMember(ctx, input.MemberID)
	switch {
	case err == nil:
		if st := current.StatusAt(now); st == domain.MembershipStatusActive || st == domain.MembershipStatusFrozen {
			return nil, domain.ErrMembershipExists
		}
	case !errors.Is(err, domain.ErrMembershipNotFound):
		return nil, fmt.Errorf("check current membership: %w", err)
	}

	start := schedule.Date(input.StartDate)
	if input.StartDate.IsZero() {
		start = schedule.Date(now)
	}

	membership := &domain.Membership{
		ID:        uuid.New().String(),
		MemberID:  input.MemberID,
		PlanID:    input.PlanID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, plan.DurationDays),
		Status:    domain.MembershipStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, fmt.Errorf("create membership: %w", err)
	}

	s.logger.Info("membership assigned",
		logger.String("membership_id", membership.ID),
		logger.String("member_id", membership.MemberID),
		logger.String("plan_id", membership.PlanID),
	)

	return membership, nil
}

// Freeze pauses an active membership until it is explicitly unfrozen.
// The end date is not touched here; the shift happens at unfreeze, from
// the actually elapsed pause.
func (s *MembershipService) Freeze(ctx context.Context, id string, plannedResume time.Time) error {
	now := s.clock.Now()
	if !schedule.Date(plannedResume).After(schedule.Date(now)) {
		return fmt.Errorf("%w: resume date must be in the future", domain.ErrInvalidState)
	}

	if err := s.membershipRepo.Freeze(ctx, id, now, schedule.Date(plannedResume)); err != nil {
		return fmt.Errorf("freeze membership: %w", err)
	}

	s.logger.Info("membership frozen",
		logger.String("membership_id", id),
		logger.String("planned_resume", schedule.Date(plannedResume).Format("2006-01-02")),
	)

	return nil
}

// Unfreeze resumes a frozen membership. The entitlement window shifts by
// the whole days actually spent frozen, independent of what was planned:
// resuming early costs nothing, resuming late grants nothing extra.
func (s *MembershipService) Unfreeze(ctx context.Context, id string) (*domain.Membership, error) {
	membership, err := s.membershipRepo.Unfreeze(ctx, id, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("unfreeze membership: %w", err)
	}

	s.logger.Info("membership unfrozen",
		logger.String("membership_id", membership.ID),
		logger.String("end_date", membership.EndDate.Format("2006-01-02")),
	)

	return membership, nil
}

// SyncExpired flips every active membership whose end date has passed to
// expired and returns the number of rows updated. The underlying write is
// conditioned on the stored status, so repeat and concurrent runs are safe.
func (s *MembershipService) SyncExpired(ctx context.Context) (int, error) {
	expired, err := s.membershipRepo.ExpireOverdue(ctx, schedule.Date(s.clock.Now()))
	if err != nil {
		return 0, fmt.Errorf("expire overdue: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("memberships expired",
			logger.Int("count", len(expired)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return len(expired), nil
}

func (s *MembershipService) notifyExpired(ctx context.Context, memberships []*domain.Membership) {
	for _, m := range memberships {
		member, err := s.memberRepo.GetByID(ctx, m.MemberID)
		if err != nil {
			s.logger.Error("failed to get member for expiry notification",
				logger.String("member_id", m.MemberID),
			)
			continue
		}

		s.notifier.NotifyMembershipExpired(ctx, member, m)
	}
}

// AssertActive is the entitlement gate: only a membership deriving active
// right now passes. Frozen, expired, pending and cancelled all fail, as
// does having no membership at all.
func (s *MembershipService) AssertActive(ctx context.Context, memberID string) error {
	membership, err := s.membershipRepo.GetCurrentByMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return domain.ErrNoActiveMembership
		}
		return fmt.Errorf("get current membership: %w", err)
	}

	if membership.StatusAt(s.clock.Now()) != domain.MembershipStatusActive {
		return domain.ErrNoActiveMembership
	}

	return nil
}
