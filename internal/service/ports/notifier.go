package ports

import (
	"context"
	"time"

	"github.com/oclawesteban/gymflow/internal/domain"
)

type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, member *domain.Member, class *domain.ClassTemplate, date time.Time)
	NotifyBookingCancelled(ctx context.Context, member *domain.Member, class *domain.ClassTemplate, date time.Time)
	NotifyMembershipExpired(ctx context.Context, member *domain.Member, m *domain.Membership)
}
