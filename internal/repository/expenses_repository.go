package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/shopspring/decimal"
)

type ExpensesRepository struct {
	conn PgConnection
}

func NewExpensesRepoWithConn(conn PgConnection) *ExpensesRepository {
	mustPing(conn, "expensesRepo")
	return &ExpensesRepository{
		conn: conn,
	}
}

func (er *ExpensesRepository) Create(ctx context.Context, expense *entity.Expense) (uuid.UUID, error) {
	var id uuid.UUID
	row := er.conn.QueryRow(ctx, `INSERT INTO expenses (user_id, amount, category, note, date)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		expense.UserID,
		expense.Amount.String(),
		string(expense.Category),
		expense.Note,
		calendar.Day(expense.Date),
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return uuid.Nil, errorvalues.ErrOwnerNotFound
		}
		return uuid.Nil, fmt.Errorf("creating expense db error: %w", err)
	}
	return id, nil
}

const expenseColumns = `id, user_id, amount::text, category, note, date, created_at`

func (er *ExpensesRepository) ListBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Expense, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+expenseColumns+` FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date, created_at;`,
		uid, calendar.Day(from), calendar.Day(to),
	)
	if err != nil {
		return nil, fmt.Errorf("listing expenses error: %w", err)
	}
	return collectExpenses(rows)
}

func (er *ExpensesRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return fmt.Errorf("deleting expense error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExpenseNotFound
	}
	return nil
}

func (er *ExpensesRepository) Search(ctx context.Context, uid uuid.UUID, q string, limit int) ([]entity.Expense, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+expenseColumns+` FROM expenses
		WHERE user_id = $1 AND (note ILIKE $2 OR category ILIKE $2) ORDER BY date DESC, created_at DESC LIMIT $3;`,
		uid, containsPattern(q), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching expenses error: %w", err)
	}
	return collectExpenses(rows)
}

func collectExpenses(rows pgx.Rows) ([]entity.Expense, error) {
	defer rows.Close()
	expenses := make([]entity.Expense, 0)
	for rows.Next() {
		var (
			e                entity.Expense
			amount, category string
			err              error
		)
		if err = rows.Scan(&e.ID, &e.UserID, &amount, &category, &e.Note, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("expense row parsing error: %w", err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("expense amount parsing error: %w", err)
		}
		e.Category = entity.ExpenseCategory(category)
		e.Date = calendar.Day(e.Date)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected expense rows error: %w", err)
	}
	return expenses, nil
}
