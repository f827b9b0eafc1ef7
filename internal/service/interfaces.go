package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/report"
	"github.com/limbo/lifeboard/internal/streak"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Name            string           `validate:"required,max=100"`
	Icon            string           `validate:"max=32"`
	Frequency       entity.Frequency `validate:"omitempty,oneof=daily weekly"`
	TargetDays      []int            `validate:"omitempty,max=7,dive,min=0,max=6"`
	ReminderEnabled bool
	ReminderTime    *string `validate:"omitempty,hhmm"`
}

type LogHabitRequest struct {
	Date      time.Time
	Completed bool
}

// HeatmapRequest selects the window: a calendar year when Year is set,
// otherwise the last Weeks weeks. A nil HabitID aggregates all active habits.
type HeatmapRequest struct {
	HabitID *uuid.UUID
	Year    int `validate:"omitempty,min=1970,max=9999"`
	Weeks   int `validate:"omitempty,min=1,max=53"`
}

type CreateTaskRequest struct {
	Title       string          `validate:"required,max=200"`
	Description string          `validate:"max=2000"`
	Priority    entity.Priority `validate:"omitempty,oneof=low medium high"`
	Group       *string         `validate:"omitempty,max=50"`
	DueDate     *time.Time
}

type AddExpenseRequest struct {
	Amount   decimal.Decimal        `validate:"gt=0"`
	Category entity.ExpenseCategory `validate:"required,expense_category"`
	Note     string                 `validate:"max=500"`
	Date     time.Time
}

type LogMoodRequest struct {
	Mood   int    `validate:"required,min=1,max=5"`
	Energy *int   `validate:"omitempty,min=1,max=5"`
	Note   string `validate:"max=500"`
	Date   time.Time
}

// SetBudgetRequest with a nil Category sets the overall budget of the month.
type SetBudgetRequest struct {
	Month    time.Time
	Category *string         `validate:"omitempty,expense_category"`
	Amount   decimal.Decimal `validate:"gte=0"`
}

// ListExpensesRequest bounds default to the current month.
type ListExpensesRequest struct {
	From     time.Time
	To       time.Time
	Category *string `validate:"omitempty,expense_category"`
}

// ListMoodsRequest bounds default to the last 30 days.
type ListMoodsRequest struct {
	From time.Time
	To   time.Time
}

type CreateNoteRequest struct {
	Title   *string  `validate:"omitempty,max=200"`
	Content string   `validate:"required,max=10000"`
	Tags    []string `validate:"max=10,dive,required,max=50"`
	Pinned  bool
}

// UpdateNoteRequest changes only the non-nil fields.
type UpdateNoteRequest struct {
	Title   *string   `validate:"omitempty,max=200"`
	Content *string   `validate:"omitempty,min=1,max=10000"`
	Tags    *[]string `validate:"omitempty,max=10,dive,required,max=50"`
	Pinned  *bool
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error)
	GetHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error)
	ArchiveHabit(ctx context.Context, habitID, uid uuid.UUID) error
	DeleteHabit(ctx context.Context, habitID, uid uuid.UUID) error
	// Marks the habit done or not done for one day. Future days are rejected
	LogHabit(ctx context.Context, habitID, uid uuid.UUID, req LogHabitRequest) error
	GetHabitStats(ctx context.Context, habitID, uid uuid.UUID) (*entity.HabitStats, error)
	GetHeatmap(ctx context.Context, uid uuid.UUID, req HeatmapRequest) (*streak.Heatmap, error)
}

type RecordsServiceI interface {
	CreateTask(ctx context.Context, uid uuid.UUID, req CreateTaskRequest) (*entity.Task, error)
	SetTaskCompleted(ctx context.Context, taskID, uid uuid.UUID, completed bool) error
	AddExpense(ctx context.Context, uid uuid.UUID, req AddExpenseRequest) (*entity.Expense, error)
	LogMood(ctx context.Context, uid uuid.UUID, req LogMoodRequest) (*entity.MoodEntry, error)
	ListTasks(ctx context.Context, uid uuid.UUID) ([]entity.Task, error)
	DeleteTask(ctx context.Context, taskID, uid uuid.UUID) error
	ListExpenses(ctx context.Context, uid uuid.UUID, req ListExpensesRequest) ([]entity.Expense, error)
	DeleteExpense(ctx context.Context, expenseID, uid uuid.UUID) error
	// Totals of the month containing month, categories in first-seen order
	GetExpenseStats(ctx context.Context, uid uuid.UUID, month time.Time) (*report.ExpenseStats, error)
	ListMoods(ctx context.Context, uid uuid.UUID, req ListMoodsRequest) ([]entity.MoodEntry, error)
	DeleteMood(ctx context.Context, entryID, uid uuid.UUID) error
}

type BudgetServiceI interface {
	SetBudget(ctx context.Context, uid uuid.UUID, req SetBudgetRequest) (*entity.BudgetGoal, error)
	GetBudgetStatus(ctx context.Context, uid uuid.UUID, month time.Time) ([]report.BudgetStatus, error)
	ListBudgetGoals(ctx context.Context, uid uuid.UUID, month time.Time) ([]entity.BudgetGoal, error)
	DeleteBudgetGoal(ctx context.Context, goalID, uid uuid.UUID) error
}

type NotesServiceI interface {
	CreateNote(ctx context.Context, uid uuid.UUID, req CreateNoteRequest) (*entity.Note, error)
	// Pinned first, then most recently updated. An empty tag lists every note
	GetNotes(ctx context.Context, uid uuid.UUID, tag string) ([]entity.Note, error)
	UpdateNote(ctx context.Context, noteID, uid uuid.UUID, req UpdateNoteRequest) (*entity.Note, error)
	TogglePin(ctx context.Context, noteID, uid uuid.UUID) (*entity.Note, error)
	DeleteNote(ctx context.Context, noteID, uid uuid.UUID) error
}

type SearchServiceI interface {
	// Case-insensitive lookup over tasks, notes, habits and expenses. Queries shorter
	// than two characters give no results
	Search(ctx context.Context, uid uuid.UUID, q string) ([]entity.SearchResult, error)
}

type ReportServiceI interface {
	// Builds the report of the period containing anchor. Fails as a whole when any read fails
	GetReport(ctx context.Context, uid uuid.UUID, period report.PeriodType, anchor time.Time) (*report.Report, error)
}
