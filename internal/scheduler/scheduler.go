package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type MembershipSweeper interface {
	SyncExpired(ctx context.Context) (int, error)
}

// Scheduler periodically runs the membership expiry sweep. The sweep is
// idempotent and conditioned on stored state, so overlapping runs are
// harmless.
type Scheduler struct {
	memberships MembershipSweeper
	interval    time.Duration
	logger      logger.Logger
}

func New(
	memberships MembershipSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		memberships: memberships,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	count, err := s.memberships.SyncExpired(ctx)
	if err != nil {
		s.logger.Error("failed to sync expired memberships",
			logger.String("error", err.Error()),
		)
		return
	}

	if count > 0 {
		s.logger.Info("expired memberships synced",
			logger.Int("count", count),
		)
	}
}
