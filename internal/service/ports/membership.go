package ports

import (
	"context"
	"time"

	"github.com/oclawesteban/gymflow/internal/domain"
)

type MembershipRepo interface {
	Create(ctx context.Context, m *domain.Membership) error
	GetByID(ctx context.Context, id string) (*domain.Membership, error)
	GetCurrentByMember(ctx context.Context, memberID string) (*domain.Membership, error)
	Freeze(ctx context.Context, id string, frozenAt time.Time, plannedResume time.Time) error
	Unfreeze(ctx context.Context, id string, now time.Time) (*domain.Membership, error)
	ExpireOverdue(ctx context.Context, today time.Time) ([]*domain.Membership, error)
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
}
