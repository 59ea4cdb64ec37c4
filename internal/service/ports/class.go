package ports

import (
	"context"

	"github.com/oclawesteban/gymflow/internal/domain"
)

type ClassRepo interface {
	Create(ctx context.Context, c *domain.ClassTemplate) error
	GetByID(ctx context.Context, id string) (*domain.ClassTemplate, error)
	List(ctx context.Context) ([]*domain.ClassTemplate, error)
}
