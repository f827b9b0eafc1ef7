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

const taskColumns = `id, user_id, title, description, priority, task_group, due_date, completed, created_at, updated_at`

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	mustPing(conn, "tasksRepo")
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) (uuid.UUID, error) {
	var dueDate *time.Time
	if task.DueDate != nil {
		d := calendar.Day(*task.DueDate)
		dueDate = &d
	}
	var id uuid.UUID
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks (user_id, title, description, priority, task_group, due_date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		task.UserID,
		task.Title,
		task.Description,
		string(task.Priority),
		task.Group,
		dueDate,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return uuid.Nil, errorvalues.ErrOwnerNotFound
		}
		return uuid.Nil, fmt.Errorf("creating task db error: %w", err)
	}
	return id, nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1;`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task by id error: %w", err)
	}
	return task, nil
}

func (tr *TasksRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET completed = $1, updated_at = NOW() WHERE id = $2;`, completed, id)
	if err != nil {
		return fmt.Errorf("updating task error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

// ListCreatedBetween takes calendar days: to is included up to its last instant.
func (tr *TasksRepository) ListCreatedBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT `+taskColumns+` FROM tasks
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at;`,
		uid, calendar.Day(from), calendar.AddDays(to, 1),
	)
	if err != nil {
		return nil, fmt.Errorf("listing tasks error: %w", err)
	}
	return collectTasks(rows)
}

func (tr *TasksRepository) List(ctx context.Context, uid uuid.UUID) ([]entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT `+taskColumns+` FROM tasks
		WHERE user_id = $1 ORDER BY completed, due_date NULLS LAST, created_at DESC;`, uid)
	if err != nil {
		return nil, fmt.Errorf("listing tasks error: %w", err)
	}
	return collectTasks(rows)
}

func (tr *TasksRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return fmt.Errorf("deleting task error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) Search(ctx context.Context, uid uuid.UUID, q string, limit int) ([]entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT `+taskColumns+` FROM tasks
		WHERE user_id = $1 AND (title ILIKE $2 OR description ILIKE $2) ORDER BY updated_at DESC LIMIT $3;`,
		uid, containsPattern(q), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching tasks error: %w", err)
	}
	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]entity.Task, error) {
	defer rows.Close()
	tasks := make([]entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("task row parsing error: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected task rows error: %w", err)
	}
	return tasks, nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var (
		t        entity.Task
		priority string
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &priority, &t.Group, &t.DueDate,
		&t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Priority = entity.Priority(priority)
	return &t, nil
}
