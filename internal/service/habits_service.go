package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/report"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/internal/streak"
	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/entity"
)

const (
	defaultHeatmapWeeks = 12
	statsWindowDays     = 30
)

type HabitsService struct {
	habitsRepo repository.HabitsRepositoryI
	logsRepo   repository.HabitLogsRepositoryI
	weekStart  time.Weekday
	now        func() time.Time
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, logsRepo repository.HabitLogsRepositoryI, weekStart time.Weekday) *HabitsService {
	if habitsRepo == nil || logsRepo == nil {
		log.Fatal("on habits service provided nil repos")
	}
	return &HabitsService{
		habitsRepo: habitsRepo,
		logsRepo:   logsRepo,
		weekStart:  weekStart,
		now:        time.Now,
	}
}

// WithClock replaces the wall clock used for "today".
func (hs *HabitsService) WithClock(now func() time.Time) *HabitsService {
	hs.now = now
	return hs
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Frequency == "" {
		req.Frequency = entity.FrequencyDaily
	}
	h := entity.Habit{
		UserID:          uid,
		Name:            req.Name,
		Icon:            req.Icon,
		Frequency:       req.Frequency,
		TargetDays:      req.TargetDays,
		ReminderEnabled: req.ReminderEnabled,
		ReminderTime:    req.ReminderTime,
	}
	id, err := hs.habitsRepo.Create(ctx, &h)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrHabitExists):
			return nil, err
		}
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	habit, err := hs.habitsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error) {
	habits, err := hs.habitsRepo.ListActive(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	if habit.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) ArchiveHabit(ctx context.Context, habitID, uid uuid.UUID) error {
	if _, err := hs.GetHabit(ctx, habitID, uid); err != nil {
		return err
	}
	if err := hs.habitsRepo.Archive(ctx, habitID); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return fmt.Errorf("habits repository error: %w", err)
	}
	return nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, uid uuid.UUID) error {
	if _, err := hs.GetHabit(ctx, habitID, uid); err != nil {
		return err
	}
	if err := hs.habitsRepo.Delete(ctx, habitID); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return fmt.Errorf("habits repository error: %w", err)
	}
	return nil
}

func (hs *HabitsService) LogHabit(ctx context.Context, habitID, uid uuid.UUID, req LogHabitRequest) error {
	habit, err := hs.GetHabit(ctx, habitID, uid)
	if err != nil {
		return err
	}
	if habit.Archived {
		return errorvalues.ErrHabitArchived
	}
	day := calendar.Day(req.Date)
	if req.Date.IsZero() {
		day = calendar.Day(hs.now())
	}
	if day.After(calendar.Day(hs.now())) {
		return errorvalues.ErrCheckDateNotAllowed
	}
	if err = hs.logsRepo.Upsert(ctx, habitID, day, req.Completed); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrHabitArchived):
			return err
		}
		return fmt.Errorf("habit logs repository error: %w", err)
	}
	return nil
}

// GetHabitStats measures consistency over the last 30 days, or since creation for younger habits.
func (hs *HabitsService) GetHabitStats(ctx context.Context, habitID, uid uuid.UUID) (*entity.HabitStats, error) {
	habit, err := hs.GetHabit(ctx, habitID, uid)
	if err != nil {
		return nil, err
	}
	dates, err := hs.logsRepo.ListCompletedDates(ctx, habitID)
	if err != nil {
		return nil, fmt.Errorf("habit logs repository error: %w", err)
	}
	now := hs.now()
	today := calendar.Day(now)
	from := calendar.AddDays(today, -(statsWindowDays - 1))
	if created := calendar.Day(habit.CreatedAt); created.After(from) && !created.After(today) {
		from = created
	}
	history := streak.History{HabitID: habitID, Events: make([]streak.CompletionEvent, 0, len(dates))}
	for _, d := range dates {
		history.Events = append(history.Events, streak.CompletionEvent{Date: d, Completed: true})
	}
	stats := &entity.HabitStats{
		ID:              habitID,
		TotalChecks:     len(dates),
		CurrentStreak:   streak.CalculateStreak(dates, now),
		MaxStreak:       streak.LongestStreak(dates),
		ConsistencyRate: streak.ConsistencyRate([]streak.History{history}, from, today),
	}
	if len(dates) > 0 {
		last := calendar.Day(dates[0])
		stats.LastCheck = &last
	}
	return stats, nil
}

func (hs *HabitsService) GetHeatmap(ctx context.Context, uid uuid.UUID, req HeatmapRequest) (*streak.Heatmap, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	today := calendar.Day(hs.now())
	var from, to time.Time
	if req.Year > 0 {
		from, to = streak.YearWindow(req.Year)
	} else {
		weeks := req.Weeks
		if weeks == 0 {
			weeks = defaultHeatmapWeeks
		}
		from, to = streak.RecentWindow(today, weeks, hs.weekStart)
	}

	var histories []streak.History
	if req.HabitID != nil {
		if _, err := hs.GetHabit(ctx, *req.HabitID, uid); err != nil {
			return nil, err
		}
		logs, err := hs.logsRepo.ListByHabitAndRange(ctx, *req.HabitID, from, to)
		if err != nil {
			return nil, fmt.Errorf("habit logs repository error: %w", err)
		}
		histories = []streak.History{historyFromLogs(*req.HabitID, logs)}
	} else {
		habits, err := hs.habitsRepo.ListActive(ctx, uid)
		if err != nil {
			return nil, fmt.Errorf("habits repository error: %w", err)
		}
		logs, err := hs.logsRepo.ListByUserAndRange(ctx, uid, from, to)
		if err != nil {
			return nil, fmt.Errorf("habit logs repository error: %w", err)
		}
		byHabit := groupLogs(logs)
		histories = make([]streak.History, 0, len(habits))
		for _, h := range habits {
			histories = append(histories, historyFromLogs(h.ID, byHabit[h.ID]))
		}
	}

	hm := streak.BuildHeatmap(histories, streak.HeatmapOptions{
		WindowStart: from,
		WindowEnd:   to,
		Today:       today,
		WeekStart:   hs.weekStart,
	})
	return &hm, nil
}

func groupLogs(logs []entity.HabitLog) map[uuid.UUID][]entity.HabitLog {
	byHabit := make(map[uuid.UUID][]entity.HabitLog)
	for _, l := range logs {
		byHabit[l.HabitID] = append(byHabit[l.HabitID], l)
	}
	return byHabit
}

func historyFromLogs(habitID uuid.UUID, logs []entity.HabitLog) streak.History {
	return report.HistoryOf(report.HabitRecords{Habit: entity.Habit{ID: habitID}, Logs: logs})
}
