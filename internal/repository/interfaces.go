package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/lifeboard/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit and returns its id
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists not archived habits of the user, oldest first
	ListActive(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error)
	Archive(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Habits whose name contains q, case-insensitive, newest first
	Search(ctx context.Context, uid uuid.UUID, q string, limit int) ([]entity.Habit, error)
}

type HabitLogsRepositoryI interface {
	// Sets the state of the habit for one day, replacing any previous log of that day
	Upsert(ctx context.Context, habitID uuid.UUID, day time.Time, completed bool) error
	// Logs of all active habits of the user with date in [from, to]
	ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.HabitLog, error)
	// Logs of one habit with date in [from, to]
	ListByHabitAndRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitLog, error)
	// All days the habit was completed, newest first. Days are unique
	ListCompletedDates(ctx context.Context, habitID uuid.UUID) ([]time.Time, error)
}

type TasksRepositoryI interface {
	Create(ctx context.Context, task *entity.Task) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	// Tasks of the user created in [from, to] (calendar days)
	ListCreatedBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Task, error)
	// Open tasks first, then by due date (undated last), then newest
	List(ctx context.Context, uid uuid.UUID) ([]entity.Task, error)
	// Deletes the task only when it belongs to uid
	Delete(ctx context.Context, id, uid uuid.UUID) error
	Search(ctx context.Context, uid uuid.UUID, q string, limit int) ([]entity.Task, error)
}

type ExpensesRepositoryI interface {
	Create(ctx context.Context, expense *entity.Expense) (uuid.UUID, error)
	ListBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Expense, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
	// Expenses whose note or category contains q, latest date first
	Search(ctx context.Context, uid uuid.UUID, q string, limit int) ([]entity.Expense, error)
}

type MoodsRepositoryI interface {
	// One entry per user and day; a second write for the same day replaces the first
	Upsert(ctx context.Context, entry *entity.MoodEntry) (uuid.UUID, error)
	ListBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.MoodEntry, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
}

type BudgetGoalsRepositoryI interface {
	// One goal per user, month and scope
	Upsert(ctx context.Context, goal *entity.BudgetGoal) (uuid.UUID, error)
	ListByMonth(ctx context.Context, uid uuid.UUID, month time.Time) ([]entity.BudgetGoal, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
}

type NotesRepositoryI interface {
	Create(ctx context.Context, note *entity.Note) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	// Pinned notes first, then most recently updated. A non-empty tag keeps only notes carrying it
	List(ctx context.Context, uid uuid.UUID, tag string) ([]entity.Note, error)
	// Overwrites title, content, tags and pinned of the note
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id, uid uuid.UUID) error
	Search(ctx context.Context, uid uuid.UUID, q string, limit int) ([]entity.Note, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
