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
	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/entity"
)

// RecordsService writes the plain per-day records: tasks, expenses and moods.
type RecordsService struct {
	tasksRepo    repository.TasksRepositoryI
	expensesRepo repository.ExpensesRepositoryI
	moodsRepo    repository.MoodsRepositoryI
	now          func() time.Time
}

func NewRecordsService(tasksRepo repository.TasksRepositoryI, expensesRepo repository.ExpensesRepositoryI, moodsRepo repository.MoodsRepositoryI) *RecordsService {
	if tasksRepo == nil || expensesRepo == nil || moodsRepo == nil {
		log.Fatal("on records service provided nil repos")
	}
	return &RecordsService{
		tasksRepo:    tasksRepo,
		expensesRepo: expensesRepo,
		moodsRepo:    moodsRepo,
		now:          time.Now,
	}
}

func (rs *RecordsService) WithClock(now func() time.Time) *RecordsService {
	rs.now = now
	return rs
}

// dayOrToday defaults a missing date to today.
func (rs *RecordsService) dayOrToday(t time.Time) time.Time {
	if t.IsZero() {
		return calendar.Day(rs.now())
	}
	return calendar.Day(t)
}

func (rs *RecordsService) CreateTask(ctx context.Context, uid uuid.UUID, req CreateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Priority == "" {
		req.Priority = entity.PriorityMedium
	}
	task := entity.Task{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Group:       req.Group,
		DueDate:     req.DueDate,
	}
	id, err := rs.tasksRepo.Create(ctx, &task)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("tasks repository error: %w", err)
	}
	created, err := rs.tasksRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("tasks repository error: %w", err)
	}
	return created, nil
}

func (rs *RecordsService) SetTaskCompleted(ctx context.Context, taskID, uid uuid.UUID, completed bool) error {
	task, err := rs.tasksRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("tasks repository error: %w", err)
	}
	if task.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	if err = rs.tasksRepo.SetCompleted(ctx, taskID, completed); err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("tasks repository error: %w", err)
	}
	return nil
}

// AddExpense stores the amount in cents; amounts rounding to zero are rejected.
func (rs *RecordsService) AddExpense(ctx context.Context, uid uuid.UUID, req AddExpenseRequest) (*entity.Expense, error) {
	req.Amount = req.Amount.Round(2)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	expense := entity.Expense{
		UserID:   uid,
		Amount:   req.Amount,
		Category: req.Category,
		Note:     req.Note,
		Date:     rs.dayOrToday(req.Date),
	}
	id, err := rs.expensesRepo.Create(ctx, &expense)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("expenses repository error: %w", err)
	}
	expense.ID = id
	return &expense, nil
}

// LogMood replaces an earlier entry of the same day.
func (rs *RecordsService) LogMood(ctx context.Context, uid uuid.UUID, req LogMoodRequest) (*entity.MoodEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	entry := entity.MoodEntry{
		UserID: uid,
		Mood:   req.Mood,
		Energy: req.Energy,
		Note:   req.Note,
		Date:   rs.dayOrToday(req.Date),
	}
	id, err := rs.moodsRepo.Upsert(ctx, &entry)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("moods repository error: %w", err)
	}
	entry.ID = id
	return &entry, nil
}

const moodHistoryDays = 30

func (rs *RecordsService) ListTasks(ctx context.Context, uid uuid.UUID) ([]entity.Task, error) {
	tasks, err := rs.tasksRepo.List(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("tasks repository error: %w", err)
	}
	return tasks, nil
}

// DeleteTask reports ErrTaskNotFound for tasks of other users too.
func (rs *RecordsService) DeleteTask(ctx context.Context, taskID, uid uuid.UUID) error {
	if err := rs.tasksRepo.Delete(ctx, taskID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("tasks repository error: %w", err)
	}
	return nil
}

// ListExpenses returns expenses oldest first.
func (rs *RecordsService) ListExpenses(ctx context.Context, uid uuid.UUID, req ListExpensesRequest) ([]entity.Expense, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := rs.now()
	from, to := req.From, req.To
	if from.IsZero() {
		from = calendar.StartOfMonth(now)
	}
	if to.IsZero() {
		to = calendar.EndOfMonth(now)
	}
	if calendar.Day(to).Before(calendar.Day(from)) {
		return nil, fmt.Errorf("%w: range ends before it starts", errorvalues.ErrValidation)
	}
	expenses, err := rs.expensesRepo.ListBetween(ctx, uid, from, to)
	if err != nil {
		return nil, fmt.Errorf("expenses repository error: %w", err)
	}
	if req.Category == nil {
		return expenses, nil
	}
	filtered := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if string(e.Category) == *req.Category {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (rs *RecordsService) DeleteExpense(ctx context.Context, expenseID, uid uuid.UUID) error {
	if err := rs.expensesRepo.Delete(ctx, expenseID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrExpenseNotFound) {
			return err
		}
		return fmt.Errorf("expenses repository error: %w", err)
	}
	return nil
}

// GetExpenseStats defaults a zero month to the current one.
func (rs *RecordsService) GetExpenseStats(ctx context.Context, uid uuid.UUID, month time.Time) (*report.ExpenseStats, error) {
	if month.IsZero() {
		month = rs.now()
	}
	expenses, err := rs.expensesRepo.ListBetween(ctx, uid, calendar.StartOfMonth(month), calendar.EndOfMonth(month))
	if err != nil {
		return nil, fmt.Errorf("expenses repository error: %w", err)
	}
	stats := report.SummarizeExpenses(month, expenses)
	return &stats, nil
}

func (rs *RecordsService) ListMoods(ctx context.Context, uid uuid.UUID, req ListMoodsRequest) ([]entity.MoodEntry, error) {
	to := rs.dayOrToday(req.To)
	from := req.From
	if from.IsZero() {
		from = calendar.AddDays(to, -(moodHistoryDays - 1))
	}
	if to.Before(calendar.Day(from)) {
		return nil, fmt.Errorf("%w: range ends before it starts", errorvalues.ErrValidation)
	}
	moods, err := rs.moodsRepo.ListBetween(ctx, uid, from, to)
	if err != nil {
		return nil, fmt.Errorf("moods repository error: %w", err)
	}
	return moods, nil
}

func (rs *RecordsService) DeleteMood(ctx context.Context, entryID, uid uuid.UUID) error {
	if err := rs.moodsRepo.Delete(ctx, entryID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrMoodNotFound) {
			return err
		}
		return fmt.Errorf("moods repository error: %w", err)
	}
	return nil
}
