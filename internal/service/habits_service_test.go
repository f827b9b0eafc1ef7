package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHabitsService(hmock *habitRepoMock, lmock *logsRepoMock) *service.HabitsService {
	return service.NewHabitsService(hmock, lmock, time.Sunday).WithClock(clock)
}

func TestCreateHabit(t *testing.T) {
	mock := &habitRepoMock{state: stateSuccess}
	s := newHabitsService(mock, &logsRepoMock{})
	ctx := context.Background()
	req := service.CreateHabitRequest{Name: testHabit.Name}
	t.Run("success", func(t *testing.T) {
		h, err := s.CreateHabit(ctx, userID, req)
		assert.NoError(t, err)
		assert.Equal(t, testHabit, *h)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.CreateHabit(ctx, userID, req)
		assert.ErrorIs(t, err, errDB)
	})
	t.Run("owner not found", func(t *testing.T) {
		mock.state = stateOwnerNotFoundError
		_, err := s.CreateHabit(ctx, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("habit duplication", func(t *testing.T) {
		mock.state = stateHabitExistsError
		_, err := s.CreateHabit(ctx, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrHabitExists)
	})
	t.Run("validation", func(t *testing.T) {
		mock.state = stateSuccess
		badTime := "25:61"
		for _, r := range []service.CreateHabitRequest{
			{},
			{Name: "run", Frequency: "hourly"},
			{Name: "run", TargetDays: []int{1, 7}},
			{Name: "run", ReminderEnabled: true, ReminderTime: &badTime},
		} {
			_, err := s.CreateHabit(ctx, userID, r)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
		}
		okTime := "07:30"
		_, err := s.CreateHabit(ctx, userID, service.CreateHabitRequest{Name: "run", ReminderTime: &okTime, TargetDays: []int{0, 6}})
		assert.NoError(t, err)
	})
}

func TestGetUserHabits(t *testing.T) {
	mock := &habitRepoMock{state: stateSuccess, active: []entity.Habit{testHabit}}
	s := newHabitsService(mock, &logsRepoMock{})
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		habits, err := s.GetUserHabits(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Habit{testHabit}, habits)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.GetUserHabits(ctx, userID)
		assert.Error(t, err)
	})
}

func TestHabitOwnership(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		Desc  string
		State mockState
		Error error
	}{
		{Desc: "success", State: stateSuccess},
		{Desc: "not found", State: stateHabitNotFoundError, Error: errorvalues.ErrHabitNotFound},
		{Desc: "wrong owner", State: stateWrongOwner, Error: errorvalues.ErrWrongOwner},
		{Desc: "db error", State: stateDBError, Error: errDB},
	}
	for _, c := range cases {
		t.Run(c.Desc, func(t *testing.T) {
			s := newHabitsService(&habitRepoMock{state: c.State}, &logsRepoMock{})
			_, err := s.GetHabit(ctx, habitID, userID)
			errs := []error{
				err,
				s.ArchiveHabit(ctx, habitID, userID),
				s.DeleteHabit(ctx, habitID, userID),
			}
			for _, err := range errs {
				if c.Error == nil {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, c.Error)
				}
			}
		})
	}
}

func TestLogHabit(t *testing.T) {
	ctx := context.Background()
	t.Run("normalizes date to day", func(t *testing.T) {
		logs := &logsRepoMock{}
		s := newHabitsService(&habitRepoMock{}, logs)
		err := s.LogHabit(ctx, habitID, userID, service.LogHabitRequest{
			Date:      time.Date(2024, time.May, 14, 22, 45, 0, 0, time.UTC),
			Completed: true,
		})
		require.NoError(t, err)
		assert.Equal(t, []time.Time{day(time.May, 14)}, logs.upserted)
	})
	t.Run("missing date is today", func(t *testing.T) {
		logs := &logsRepoMock{}
		s := newHabitsService(&habitRepoMock{}, logs)
		require.NoError(t, s.LogHabit(ctx, habitID, userID, service.LogHabitRequest{Completed: true}))
		assert.Equal(t, []time.Time{day(time.May, 15)}, logs.upserted)
	})
	t.Run("later today is allowed", func(t *testing.T) {
		s := newHabitsService(&habitRepoMock{}, &logsRepoMock{})
		err := s.LogHabit(ctx, habitID, userID, service.LogHabitRequest{
			Date: time.Date(2024, time.May, 15, 23, 59, 0, 0, time.UTC),
		})
		assert.NoError(t, err)
	})
	t.Run("future date", func(t *testing.T) {
		logs := &logsRepoMock{}
		s := newHabitsService(&habitRepoMock{}, logs)
		err := s.LogHabit(ctx, habitID, userID, service.LogHabitRequest{Date: day(time.May, 16), Completed: true})
		assert.ErrorIs(t, err, errorvalues.ErrCheckDateNotAllowed)
		assert.Empty(t, logs.upserted)
	})
	t.Run("archived habit", func(t *testing.T) {
		s := newHabitsService(&habitRepoMock{state: stateArchived}, &logsRepoMock{})
		err := s.LogHabit(ctx, habitID, userID, service.LogHabitRequest{Date: day(time.May, 14)})
		assert.ErrorIs(t, err, errorvalues.ErrHabitArchived)
	})
	t.Run("archived between read and write", func(t *testing.T) {
		s := newHabitsService(&habitRepoMock{}, &logsRepoMock{state: stateArchived})
		err := s.LogHabit(ctx, habitID, userID, service.LogHabitRequest{Date: day(time.May, 14)})
		assert.ErrorIs(t, err, errorvalues.ErrHabitArchived)
	})
	t.Run("wrong owner", func(t *testing.T) {
		s := newHabitsService(&habitRepoMock{state: stateWrongOwner}, &logsRepoMock{})
		err := s.LogHabit(ctx, habitID, userID, service.LogHabitRequest{Date: day(time.May, 14)})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("db error", func(t *testing.T) {
		s := newHabitsService(&habitRepoMock{}, &logsRepoMock{state: stateDBError})
		err := s.LogHabit(ctx, habitID, userID, service.LogHabitRequest{Date: day(time.May, 14)})
		assert.ErrorIs(t, err, errDB)
	})
}

func TestGetHabitStats(t *testing.T) {
	ctx := context.Background()
	logs := &logsRepoMock{dates: []time.Time{
		day(time.May, 15), day(time.May, 14), day(time.May, 13), day(time.May, 10),
	}}
	s := newHabitsService(&habitRepoMock{}, logs)
	t.Run("success", func(t *testing.T) {
		stats, err := s.GetHabitStats(ctx, habitID, userID)
		require.NoError(t, err)
		last := day(time.May, 15)
		assert.Equal(t, entity.HabitStats{
			ID:            habitID,
			TotalChecks:   4,
			CurrentStreak: 3,
			MaxStreak:     3,
			// 4 of the 15 days since creation
			ConsistencyRate: 27,
			LastCheck:       &last,
		}, *stats)
	})
	t.Run("never logged", func(t *testing.T) {
		s := newHabitsService(&habitRepoMock{}, &logsRepoMock{})
		stats, err := s.GetHabitStats(ctx, habitID, userID)
		require.NoError(t, err)
		assert.Zero(t, stats.CurrentStreak)
		assert.Zero(t, stats.ConsistencyRate)
		assert.Nil(t, stats.LastCheck)
	})
	t.Run("db error", func(t *testing.T) {
		logs.state = stateDBError
		_, err := s.GetHabitStats(ctx, habitID, userID)
		assert.ErrorIs(t, err, errDB)
	})
}

func TestGetHeatmap(t *testing.T) {
	ctx := context.Background()
	other := testHabit
	other.ID = uuid.New()
	other.Name = "walk"
	logs := &logsRepoMock{logs: []entity.HabitLog{
		{HabitID: habitID, Date: day(time.May, 15), Completed: true},
		{HabitID: habitID, Date: day(time.May, 14), Completed: true},
		{HabitID: habitID, Date: day(time.May, 14), Completed: true},
		{HabitID: other.ID, Date: day(time.May, 15), Completed: true},
		{HabitID: other.ID, Date: day(time.May, 13), Completed: false},
		// archived habit, not listed as active
		{HabitID: uuid.New(), Date: day(time.May, 15), Completed: true},
	}}
	s := newHabitsService(&habitRepoMock{active: []entity.Habit{testHabit, other}}, logs)

	t.Run("all habits, recent weeks", func(t *testing.T) {
		hm, err := s.GetHeatmap(ctx, userID, service.HeatmapRequest{})
		require.NoError(t, err)
		assert.Equal(t, day(time.February, 18), hm.WindowStart)
		assert.Equal(t, day(time.May, 15), hm.WindowEnd)
		require.Len(t, hm.Weeks, 13)
		assert.Equal(t, 3, hm.TotalCompletions)

		last := hm.Weeks[12]
		assert.Equal(t, day(time.May, 15), last[time.Wednesday].Date)
		assert.Equal(t, 2, last[time.Wednesday].CompletedCount)
		assert.Equal(t, 2, last[time.Wednesday].PossibleCount)
		assert.Equal(t, 4, last[time.Wednesday].Level)
		assert.Equal(t, 1, last[time.Tuesday].CompletedCount)
		assert.Zero(t, last[time.Monday].CompletedCount)
		assert.True(t, last[time.Thursday].IsFuture)
	})
	t.Run("single habit", func(t *testing.T) {
		id := habitID
		hm, err := s.GetHeatmap(ctx, userID, service.HeatmapRequest{HabitID: &id, Weeks: 1})
		require.NoError(t, err)
		// the window starts on the Sunday before May 9
		assert.Equal(t, day(time.May, 5), hm.WindowStart)
		require.Len(t, hm.Weeks, 2)
		assert.Equal(t, 2, hm.TotalCompletions)
		assert.Equal(t, 1, hm.Weeks[1][time.Wednesday].PossibleCount)
	})
	t.Run("year", func(t *testing.T) {
		hm, err := s.GetHeatmap(ctx, userID, service.HeatmapRequest{Year: 2024})
		require.NoError(t, err)
		assert.Equal(t, day(time.January, 1), hm.WindowStart)
		assert.True(t, hm.Weeks[0][time.Sunday].IsOutOfRange)
		assert.Len(t, hm.Months, 12)
		assert.Equal(t, 3, hm.TotalCompletions)
	})
	t.Run("foreign habit", func(t *testing.T) {
		s := newHabitsService(&habitRepoMock{state: stateWrongOwner}, logs)
		id := habitID
		_, err := s.GetHeatmap(ctx, userID, service.HeatmapRequest{HabitID: &id})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("validation", func(t *testing.T) {
		_, err := s.GetHeatmap(ctx, userID, service.HeatmapRequest{Weeks: 60})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}
