package service

import (
	"context"
	"testing"

	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/oclawesteban/gymflow/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemberService_Create_Success(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	clk := mocks.NewMockClock(t)

	svc := NewMemberService(repo, clk)

	chatID := int64(123456)
	clk.EXPECT().Now().Return(testNow)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	member, err := svc.Create(context.Background(), domain.CreateMemberInput{
		FullName:       "Alice Smith",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, "Alice Smith", member.FullName)
	require.NotNil(t, member.TelegramChatID)
	assert.Equal(t, chatID, *member.TelegramChatID)
}

func TestMemberService_Create_EmptyName(t *testing.T) {
	svc := NewMemberService(mocks.NewMockMemberRepo(t), mocks.NewMockClock(t))

	_, err := svc.Create(context.Background(), domain.CreateMemberInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMemberService_List(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)

	svc := NewMemberService(repo, mocks.NewMockClock(t))

	members := []*domain.Member{
		{ID: "u1", FullName: "Alice Smith"},
		{ID: "u2", FullName: "Bob Jones"},
	}
	repo.EXPECT().List(mock.Anything).Return(members, nil)

	res, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 2)
}
