package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/entity"
)

type HabitLogsRepository struct {
	conn PgConnection
}

func NewHabitLogsRepoWithConn(conn PgConnection) *HabitLogsRepository {
	mustPing(conn, "habitLogsRepo")
	return &HabitLogsRepository{
		conn: conn,
	}
}

// Upsert locks the habit row so a log can't land on a habit being archived concurrently.
func (lr *HabitLogsRepository) Upsert(ctx context.Context, habitID uuid.UUID, day time.Time, completed bool) (err error) {
	tx, err := lr.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning tx error: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var archived bool
	err = tx.QueryRow(ctx, `SELECT archived FROM habits WHERE id = $1 FOR SHARE;`, habitID).Scan(&archived)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrHabitNotFound
		}
		return fmt.Errorf("locking habit error: %w", err)
	}
	if archived {
		return errorvalues.ErrHabitArchived
	}
	_, err = tx.Exec(ctx, `INSERT INTO habit_logs (habit_id, date, completed) VALUES ($1, $2, $3)
		ON CONFLICT (habit_id, date) DO UPDATE SET completed = EXCLUDED.completed;`,
		habitID, calendar.Day(day), completed,
	)
	if err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return errorvalues.ErrHabitNotFound
		}
		return fmt.Errorf("upserting habit log error: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing habit log error: %w", err)
	}
	return nil
}

func (lr *HabitLogsRepository) ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.HabitLog, error) {
	rows, err := lr.conn.Query(ctx, `SELECT l.id, l.habit_id, l.date, l.completed, l.created_at
		FROM habit_logs l JOIN habits h ON h.id = l.habit_id
		WHERE h.user_id = $1 AND h.archived = FALSE AND l.date >= $2 AND l.date <= $3
		ORDER BY l.date;`,
		uid, calendar.Day(from), calendar.Day(to),
	)
	if err != nil {
		return nil, fmt.Errorf("getting habit logs for period error: %w", err)
	}
	return collectLogs(rows)
}

func (lr *HabitLogsRepository) ListByHabitAndRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitLog, error) {
	rows, err := lr.conn.Query(ctx, `SELECT id, habit_id, date, completed, created_at FROM habit_logs
		WHERE habit_id = $1 AND date >= $2 AND date <= $3 ORDER BY date;`,
		habitID, calendar.Day(from), calendar.Day(to),
	)
	if err != nil {
		return nil, fmt.Errorf("getting habit logs for period error: %w", err)
	}
	return collectLogs(rows)
}

func (lr *HabitLogsRepository) ListCompletedDates(ctx context.Context, habitID uuid.UUID) ([]time.Time, error) {
	rows, err := lr.conn.Query(ctx, `SELECT date FROM habit_logs WHERE habit_id = $1 AND completed = TRUE ORDER BY date DESC;`, habitID)
	if err != nil {
		return nil, fmt.Errorf("getting completed dates error: %w", err)
	}
	defer rows.Close()
	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("completed date parsing error: %w", err)
		}
		dates = append(dates, calendar.Day(d))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected completed dates rows error: %w", err)
	}
	return dates, nil
}

func collectLogs(rows pgx.Rows) ([]entity.HabitLog, error) {
	defer rows.Close()
	result := make([]entity.HabitLog, 0)
	for rows.Next() {
		var l entity.HabitLog
		if err := rows.Scan(&l.ID, &l.HabitID, &l.Date, &l.Completed, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("habit log row parsing error: %w", err)
		}
		l.Date = calendar.Day(l.Date)
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected habit log rows error: %w", err)
	}
	return result, nil
}
