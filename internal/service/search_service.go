package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/pkg/entity"
	"golang.org/x/sync/errgroup"
)

const (
	searchMinQueryLen = 2
	searchPerType     = 5
)

type SearchService struct {
	tasksRepo    repository.TasksRepositoryI
	notesRepo    repository.NotesRepositoryI
	habitsRepo   repository.HabitsRepositoryI
	expensesRepo repository.ExpensesRepositoryI
}

func NewSearchService(tasksRepo repository.TasksRepositoryI, notesRepo repository.NotesRepositoryI,
	habitsRepo repository.HabitsRepositoryI, expensesRepo repository.ExpensesRepositoryI) *SearchService {
	if tasksRepo == nil || notesRepo == nil || habitsRepo == nil || expensesRepo == nil {
		log.Fatal("on search service provided nil repos")
	}
	return &SearchService{
		tasksRepo:    tasksRepo,
		notesRepo:    notesRepo,
		habitsRepo:   habitsRepo,
		expensesRepo: expensesRepo,
	}
}

// Search returns at most five hits per record type, grouped as tasks, notes, habits, expenses.
func (ss *SearchService) Search(ctx context.Context, uid uuid.UUID, q string) ([]entity.SearchResult, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < searchMinQueryLen {
		return []entity.SearchResult{}, nil
	}
	var (
		tasks    []entity.Task
		notes    []entity.Note
		habits   []entity.Habit
		expenses []entity.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if tasks, err = ss.tasksRepo.Search(gctx, uid, q, searchPerType); err != nil {
			return fmt.Errorf("tasks repository error: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if notes, err = ss.notesRepo.Search(gctx, uid, q, searchPerType); err != nil {
			return fmt.Errorf("notes repository error: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if habits, err = ss.habitsRepo.Search(gctx, uid, q, searchPerType); err != nil {
			return fmt.Errorf("habits repository error: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if expenses, err = ss.expensesRepo.Search(gctx, uid, q, searchPerType); err != nil {
			return fmt.Errorf("expenses repository error: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]entity.SearchResult, 0, len(tasks)+len(notes)+len(habits)+len(expenses))
	for _, t := range tasks {
		state := "open"
		if t.Completed {
			state = "completed"
		}
		results = append(results, entity.SearchResult{
			ID:       t.ID,
			Title:    t.Title,
			Subtitle: fmt.Sprintf("%s %s priority task", state, t.Priority),
			Type:     entity.SearchTask,
		})
	}
	for _, n := range notes {
		title, subtitle := "Untitled note", "Note"
		if n.Title != nil && *n.Title != "" {
			title = *n.Title
		}
		if n.Pinned {
			subtitle = "Pinned note"
		}
		results = append(results, entity.SearchResult{ID: n.ID, Title: title, Subtitle: subtitle, Type: entity.SearchNote})
	}
	for _, h := range habits {
		title := h.Name
		if h.Icon != "" {
			title = h.Icon + " " + h.Name
		}
		results = append(results, entity.SearchResult{ID: h.ID, Title: title, Subtitle: "Habit", Type: entity.SearchHabit})
	}
	for _, e := range expenses {
		title := e.Note
		if title == "" {
			title = string(e.Category)
		}
		results = append(results, entity.SearchResult{
			ID:       e.ID,
			Title:    title,
			Subtitle: e.Amount.StringFixed(2) + " · " + string(e.Category),
			Type:     entity.SearchExpense,
		})
	}
	return results, nil
}
