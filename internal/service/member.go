package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/oclawesteban/gymflow/internal/service/ports"
)

type MemberService struct {
	repo  ports.MemberRepo
	clock ports.Clock
}

func NewMemberService(repo ports.MemberRepo, clock ports.Clock) *MemberService {
	return &MemberService{repo: repo, clock: clock}
}

func (s *MemberService) Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error) {
	if input.FullName == "" {
		return nil, fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}

	member := &domain.Member{
		ID:             uuid.New().String(),
		FullName:       input.FullName,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.clock.Now(),
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.repo.List(ctx)
}
