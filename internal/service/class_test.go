package service

import (
	"context"
	"testing"
	"time"

	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/oclawesteban/gymflow/internal/schedule"
	"github.com/oclawesteban/gymflow/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClassService_Create_Success(t *testing.T) {
	classRepo := mocks.NewMockClassRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	clk := mocks.NewMockClock(t)

	svc := NewClassService(classRepo, bookingRepo, clk)

	clk.EXPECT().Now().Return(testNow)
	classRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	class, err := svc.Create(context.Background(), domain.CreateClassInput{
		Title:     "Yoga",
		Weekday:   3,
		StartTime: "18:00",
		EndTime:   "19:00",
		Capacity:  15,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, class.ID)
	assert.Equal(t, time.Wednesday, class.Weekday)
	assert.True(t, class.IsActive)
}

func TestClassService_Create_Validation(t *testing.T) {
	svc := NewClassService(mocks.NewMockClassRepo(t), mocks.NewMockBookingRepo(t), mocks.NewMockClock(t))

	cases := []struct {
		name  string
		input domain.CreateClassInput
	}{
		{"empty title", domain.CreateClassInput{Weekday: 3, StartTime: "18:00", EndTime: "19:00", Capacity: 10}},
		{"bad weekday", domain.CreateClassInput{Title: "Yoga", Weekday: 7, StartTime: "18:00", EndTime: "19:00", Capacity: 10}},
		{"zero capacity", domain.CreateClassInput{Title: "Yoga", Weekday: 3, StartTime: "18:00", EndTime: "19:00"}},
		{"bad start time", domain.CreateClassInput{Title: "Yoga", Weekday: 3, StartTime: "6pm", EndTime: "19:00", Capacity: 10}},
		{"end before start", domain.CreateClassInput{Title: "Yoga", Weekday: 3, StartTime: "19:00", EndTime: "18:00", Capacity: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestClassService_Schedule_ComputesAvailability(t *testing.T) {
	classRepo := mocks.NewMockClassRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	clk := mocks.NewMockClock(t)

	svc := NewClassService(classRepo, bookingRepo, clk)

	classes := []*domain.ClassTemplate{
		{ID: "c1", Title: "Yoga", Weekday: time.Wednesday, Capacity: 10, IsActive: true},
		{ID: "c2", Title: "Boxing", Weekday: time.Friday, Capacity: 8, IsActive: true},
	}
	wedNext := schedule.NextOccurrence(time.Wednesday, testNow)
	friNext := schedule.NextOccurrence(time.Friday, testNow)

	classRepo.EXPECT().List(mock.Anything).Return(classes, nil)
	clk.EXPECT().Now().Return(testNow)
	bookingRepo.EXPECT().CountConfirmed(mock.Anything, "c1", wedNext).Return(4, nil)
	bookingRepo.EXPECT().CountConfirmed(mock.Anything, "c2", friNext).Return(8, nil)

	res, err := svc.Schedule(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, wedNext, res[0].NextDate)
	assert.Equal(t, 6, res[0].AvailableSpots)

	assert.Equal(t, friNext, res[1].NextDate)
	assert.Zero(t, res[1].AvailableSpots)
}

func TestClassService_Schedule_Empty(t *testing.T) {
	classRepo := mocks.NewMockClassRepo(t)
	clk := mocks.NewMockClock(t)

	svc := NewClassService(classRepo, mocks.NewMockBookingRepo(t), clk)

	classRepo.EXPECT().List(mock.Anything).Return(nil, nil)
	clk.EXPECT().Now().Return(testNow)

	res, err := svc.Schedule(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res)
}
