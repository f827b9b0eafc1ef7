package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()
	tasks := &tasksRepoMock{tasks: []entity.Task{{ID: uuid.New(), Title: "read book", Priority: entity.PriorityHigh, Completed: true}}}
	notes := &notesRepoMock{notes: []entity.Note{{ID: uuid.New(), Content: "reading list", Pinned: true}}}
	habits := &habitRepoMock{active: []entity.Habit{{ID: uuid.New(), Name: "Read", Icon: "📚"}}}
	expenses := &expensesRepoMock{expenses: []entity.Expense{{ID: uuid.New(), Amount: decimal.RequireFromString("12.5"), Category: entity.CategoryEducation}}}
	s := service.NewSearchService(tasks, notes, habits, expenses)

	t.Run("all types in fixed order", func(t *testing.T) {
		results, err := s.Search(ctx, userID, "  rea ")
		require.NoError(t, err)
		require.Len(t, results, 4)
		assert.Equal(t, entity.SearchResult{ID: tasks.tasks[0].ID, Title: "read book", Subtitle: "completed high priority task", Type: entity.SearchTask}, results[0])
		assert.Equal(t, entity.SearchResult{ID: notes.notes[0].ID, Title: "Untitled note", Subtitle: "Pinned note", Type: entity.SearchNote}, results[1])
		assert.Equal(t, "📚 Read", results[2].Title)
		assert.Equal(t, entity.SearchResult{ID: expenses.expenses[0].ID, Title: "education", Subtitle: "12.50 · education", Type: entity.SearchExpense}, results[3])
	})
	t.Run("short query", func(t *testing.T) {
		for _, q := range []string{"", " ", "r", " é "} {
			results, err := s.Search(ctx, userID, q)
			require.NoError(t, err)
			assert.NotNil(t, results)
			assert.Empty(t, results)
		}
	})
	t.Run("one failing source fails the search", func(t *testing.T) {
		notes.state = stateDBError
		defer func() { notes.state = stateSuccess }()
		results, err := s.Search(ctx, userID, "read")
		assert.ErrorIs(t, err, errDB)
		assert.Nil(t, results)
	})
}
