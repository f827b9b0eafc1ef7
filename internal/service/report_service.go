package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/report"
	"github.com/limbo/lifeboard/internal/repository"
	"golang.org/x/sync/errgroup"
)

// ReportRepos are the read sides a report is assembled from.
type ReportRepos struct {
	Tasks     repository.TasksRepositoryI
	Habits    repository.HabitsRepositoryI
	HabitLogs repository.HabitLogsRepositoryI
	Expenses  repository.ExpensesRepositoryI
	Moods     repository.MoodsRepositoryI
}

type ReportService struct {
	repos ReportRepos
	now   func() time.Time
}

func NewReportService(repos ReportRepos) *ReportService {
	if repos.Tasks == nil || repos.Habits == nil || repos.HabitLogs == nil || repos.Expenses == nil || repos.Moods == nil {
		log.Fatal("on report service provided nil repos")
	}
	return &ReportService{
		repos: repos,
		now:   time.Now,
	}
}

func (rs *ReportService) WithClock(now func() time.Time) *ReportService {
	rs.now = now
	return rs
}

// GetReport with a zero anchor reports on the period containing today.
func (rs *ReportService) GetReport(ctx context.Context, uid uuid.UUID, periodType report.PeriodType, anchor time.Time) (*report.Report, error) {
	if anchor.IsZero() {
		anchor = rs.now()
	}
	period, err := report.PeriodFor(periodType, anchor)
	if err != nil {
		return nil, err
	}
	previous := period.Previous()

	var records report.Records
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tasks, err := rs.repos.Tasks.ListCreatedBetween(gctx, uid, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("fetching tasks: %w", err)
		}
		records.Tasks = tasks
		return nil
	})
	g.Go(func() error {
		habits, err := rs.fetchHabits(gctx, uid, period)
		if err != nil {
			return fmt.Errorf("fetching habits: %w", err)
		}
		records.Habits = habits
		return nil
	})
	g.Go(func() error {
		expenses, err := rs.repos.Expenses.ListBetween(gctx, uid, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("fetching expenses: %w", err)
		}
		records.Expenses = expenses
		return nil
	})
	g.Go(func() error {
		expenses, err := rs.repos.Expenses.ListBetween(gctx, uid, previous.Start, previous.End)
		if err != nil {
			return fmt.Errorf("fetching previous expenses: %w", err)
		}
		records.PreviousExpenses = expenses
		return nil
	})
	g.Go(func() error {
		moods, err := rs.repos.Moods.ListBetween(gctx, uid, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("fetching moods: %w", err)
		}
		records.Moods = moods
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrReportDataUnavailable, err)
	}
	return report.BuildReport(periodType, anchor, records)
}

func (rs *ReportService) fetchHabits(ctx context.Context, uid uuid.UUID, period report.Period) ([]report.HabitRecords, error) {
	habits, err := rs.repos.Habits.ListActive(ctx, uid)
	if err != nil {
		return nil, err
	}
	logs, err := rs.repos.HabitLogs.ListByUserAndRange(ctx, uid, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	byHabit := groupLogs(logs)
	records := make([]report.HabitRecords, 0, len(habits))
	for _, h := range habits {
		records = append(records, report.HabitRecords{Habit: h, Logs: byHabit[h.ID]})
	}
	return records, nil
}
