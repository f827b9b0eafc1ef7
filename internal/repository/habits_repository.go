package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/pkg/entity"
)

const habitColumns = `id, user_id, name, icon, frequency, target_days, reminder_enabled, reminder_time, archived, created_at, updated_at`

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	mustPing(conn, "habitsRepo")
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	targetDays := habit.TargetDays
	if targetDays == nil {
		targetDays = []int{}
	}
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (user_id, name, icon, frequency, target_days, reminder_enabled, reminder_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		habit.UserID,
		habit.Name,
		habit.Icon,
		string(habit.Frequency),
		targetDays,
		habit.ReminderEnabled,
		habit.ReminderTime,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrorCode(err) {
		case codeUniqueViolation:
			return uuid.Nil, errorvalues.ErrHabitExists
		case codeForeignKeyViolation:
			return uuid.Nil, errorvalues.ErrOwnerNotFound
		}
		return uuid.Nil, fmt.Errorf("creating habit db error: %w", err)
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, fmt.Errorf("getting habit by id error: %w", err)
	}
	return habit, nil
}

func (hr *HabitsRepository) ListActive(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits
		WHERE user_id = $1 AND archived = FALSE ORDER BY created_at;`, uid)
	if err != nil {
		return nil, fmt.Errorf("listing habits error: %w", err)
	}
	defer rows.Close()
	habits := make([]entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("unmarshalling habit error: %w", err)
		}
		habits = append(habits, *h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected error after scanning habits: %w", err)
	}
	return habits, nil
}

func (hr *HabitsRepository) Archive(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET archived = TRUE, updated_at = NOW() WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("archiving habit error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("deleting habit error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Search(ctx context.Context, uid uuid.UUID, q string, limit int) ([]entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits
		WHERE user_id = $1 AND name ILIKE $2 ORDER BY created_at DESC LIMIT $3;`,
		uid, containsPattern(q), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching habits error: %w", err)
	}
	defer rows.Close()
	habits := make([]entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("unmarshalling habit error: %w", err)
		}
		habits = append(habits, *h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected error after scanning habits: %w", err)
	}
	return habits, nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	var (
		h         entity.Habit
		frequency string
	)
	err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Icon, &frequency, &h.TargetDays,
		&h.ReminderEnabled, &h.ReminderTime, &h.Archived, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	h.Frequency = entity.Frequency(frequency)
	return &h, nil
}
