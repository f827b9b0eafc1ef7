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
	"golang.org/x/sync/errgroup"
)

type BudgetService struct {
	goalsRepo    repository.BudgetGoalsRepositoryI
	expensesRepo repository.ExpensesRepositoryI
}

func NewBudgetService(goalsRepo repository.BudgetGoalsRepositoryI, expensesRepo repository.ExpensesRepositoryI) *BudgetService {
	if goalsRepo == nil || expensesRepo == nil {
		log.Fatal("on budget service provided nil repos")
	}
	return &BudgetService{
		goalsRepo:    goalsRepo,
		expensesRepo: expensesRepo,
	}
}

func (bs *BudgetService) SetBudget(ctx context.Context, uid uuid.UUID, req SetBudgetRequest) (*entity.BudgetGoal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	goal := entity.BudgetGoal{
		UserID: uid,
		Month:  calendar.StartOfMonth(req.Month),
		Scope:  entity.BudgetScopeFromNullable(req.Category),
		Amount: req.Amount,
	}
	id, err := bs.goalsRepo.Upsert(ctx, &goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("budget goals repository error: %w", err)
	}
	goal.ID = id
	return &goal, nil
}

// GetBudgetStatus compares every goal of the month with the month's spending.
func (bs *BudgetService) GetBudgetStatus(ctx context.Context, uid uuid.UUID, month time.Time) ([]report.BudgetStatus, error) {
	var (
		goals    []entity.BudgetGoal
		expenses []entity.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goals, err = bs.goalsRepo.ListByMonth(gctx, uid, month)
		if err != nil {
			return fmt.Errorf("budget goals repository error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = bs.expensesRepo.ListBetween(gctx, uid, calendar.StartOfMonth(month), calendar.EndOfMonth(month))
		if err != nil {
			return fmt.Errorf("expenses repository error: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report.CompareBudgets(goals, expenses), nil
}

func (bs *BudgetService) ListBudgetGoals(ctx context.Context, uid uuid.UUID, month time.Time) ([]entity.BudgetGoal, error) {
	goals, err := bs.goalsRepo.ListByMonth(ctx, uid, month)
	if err != nil {
		return nil, fmt.Errorf("budget goals repository error: %w", err)
	}
	return goals, nil
}

func (bs *BudgetService) DeleteBudgetGoal(ctx context.Context, goalID, uid uuid.UUID) error {
	if err := bs.goalsRepo.Delete(ctx, goalID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrBudgetNotFound) {
			return err
		}
		return fmt.Errorf("budget goals repository error: %w", err)
	}
	return nil
}
