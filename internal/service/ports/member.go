package ports

import (
	"context"

	"github.com/oclawesteban/gymflow/internal/domain"
)

type MemberRepo interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
}
