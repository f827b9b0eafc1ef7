package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/shopspring/decimal"
)

type BudgetGoalsRepository struct {
	conn PgConnection
}

func NewBudgetGoalsRepoWithConn(conn PgConnection) *BudgetGoalsRepository {
	mustPing(conn, "budgetGoalsRepo")
	return &BudgetGoalsRepository{
		conn: conn,
	}
}

// Upsert stores the overall scope as a NULL category; the unique key treats NULLs as equal.
func (br *BudgetGoalsRepository) Upsert(ctx context.Context, goal *entity.BudgetGoal) (uuid.UUID, error) {
	var id uuid.UUID
	row := br.conn.QueryRow(ctx, `INSERT INTO budget_goals (user_id, month, category, amount) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, month, category) DO UPDATE SET amount = EXCLUDED.amount
		RETURNING id;`,
		goal.UserID,
		calendar.StartOfMonth(goal.Month),
		goal.Scope.Nullable(),
		goal.Amount.String(),
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return uuid.Nil, errorvalues.ErrOwnerNotFound
		}
		return uuid.Nil, fmt.Errorf("upserting budget goal error: %w", err)
	}
	return id, nil
}

// ListByMonth returns the overall goal first, then category goals by name.
func (br *BudgetGoalsRepository) ListByMonth(ctx context.Context, uid uuid.UUID, month time.Time) ([]entity.BudgetGoal, error) {
	rows, err := br.conn.Query(ctx, `SELECT id, user_id, month, category, amount::text FROM budget_goals
		WHERE user_id = $1 AND month = $2 ORDER BY category NULLS FIRST;`,
		uid, calendar.StartOfMonth(month),
	)
	if err != nil {
		return nil, fmt.Errorf("listing budget goals error: %w", err)
	}
	defer rows.Close()
	goals := make([]entity.BudgetGoal, 0)
	for rows.Next() {
		var (
			g        entity.BudgetGoal
			category *string
			amount   string
		)
		if err := rows.Scan(&g.ID, &g.UserID, &g.Month, &category, &amount); err != nil {
			return nil, fmt.Errorf("budget goal row parsing error: %w", err)
		}
		if g.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("budget amount parsing error: %w", err)
		}
		g.Scope = entity.BudgetScopeFromNullable(category)
		g.Month = calendar.Day(g.Month)
		goals = append(goals, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected budget goal rows error: %w", err)
	}
	return goals, nil
}

func (br *BudgetGoalsRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := br.conn.Exec(ctx, `DELETE FROM budget_goals WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return fmt.Errorf("deleting budget goal error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBudgetNotFound
	}
	return nil
}
