package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/api"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/report"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/internal/service/mocks"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockRecordsServiceI(ctrl)
	serv := api.New(&api.ServicesList{RecordsService: rService})
	due := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	t.Run("camelCase body", func(t *testing.T) {
		rService.EXPECT().ListTasks(gomock.Any(), userID).Return([]entity.Task{{
			ID: uuid.New(), UserID: userID, Title: "pay rent", Priority: entity.PriorityHigh, DueDate: &due, CreatedAt: due,
		}}, nil)
		rr := httptest.NewRecorder()
		serv.ListTasks(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		body := rr.Body.String()
		assert.Contains(t, body, `"dueDate":"2024-05-20T00:00:00Z"`)
		assert.Contains(t, body, `"createdAt"`)
		assert.NotContains(t, body, "due_date")
		assert.NotContains(t, body, "created_at")
	})
	t.Run("service error", func(t *testing.T) {
		rService.EXPECT().ListTasks(gomock.Any(), userID).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		serv.ListTasks(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestDeleteRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockRecordsServiceI(ctrl)
	bService := mocks.NewMockBudgetServiceI(ctrl)
	nService := mocks.NewMockNotesServiceI(ctrl)
	serv := api.New(&api.ServicesList{RecordsService: rService, BudgetService: bService, NotesService: nService})
	id := uuid.New()

	kinds := []struct {
		name     string
		path     string
		handler  http.HandlerFunc
		expect   func(err error)
		notFound error
	}{
		{"task", "/api/v1/tasks/", serv.DeleteTask, func(err error) {
			rService.EXPECT().DeleteTask(gomock.Any(), id, userID).Return(err)
		}, errorvalues.ErrTaskNotFound},
		{"expense", "/api/v1/expenses/", serv.DeleteExpense, func(err error) {
			rService.EXPECT().DeleteExpense(gomock.Any(), id, userID).Return(err)
		}, errorvalues.ErrExpenseNotFound},
		{"mood", "/api/v1/moods/", serv.DeleteMood, func(err error) {
			rService.EXPECT().DeleteMood(gomock.Any(), id, userID).Return(err)
		}, errorvalues.ErrMoodNotFound},
		{"budget", "/api/v1/budgets/", serv.DeleteBudget, func(err error) {
			bService.EXPECT().DeleteBudgetGoal(gomock.Any(), id, userID).Return(err)
		}, errorvalues.ErrBudgetNotFound},
		{"note", "/api/v1/notes/", serv.DeleteNote, func(err error) {
			nService.EXPECT().DeleteNote(gomock.Any(), id, userID).Return(err)
		}, errorvalues.ErrNoteNotFound},
	}
	call := func(h http.HandlerFunc, path, rawID string) int {
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodDelete, path+rawID, nil))
		r.SetPathValue("id", rawID)
		h(rr, r)
		return rr.Result().StatusCode
	}
	for _, k := range kinds {
		testCases := []struct {
			Desc         string
			ExpectedCode int
			Error        error
		}{
			{Desc: "deleted", ExpectedCode: http.StatusNoContent},
			{Desc: "not found", ExpectedCode: http.StatusNotFound, Error: k.notFound},
			{Desc: "service error", ExpectedCode: http.StatusInternalServerError, Error: errors.New("service error")},
		}
		for _, tc := range testCases {
			t.Run(k.name+" "+tc.Desc, func(t *testing.T) {
				k.expect(tc.Error)
				assert.Equal(t, tc.ExpectedCode, call(k.handler, k.path, id.String()))
			})
		}
		t.Run(k.name+" invalid id", func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, call(k.handler, k.path, "abc"))
		})
	}
}

func TestListExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockRecordsServiceI(ctrl)
	serv := api.New(&api.ServicesList{RecordsService: rService})
	call := func(query string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		serv.ListExpenses(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/expenses"+query, nil)))
		return rr
	}

	t.Run("range and category", func(t *testing.T) {
		rService.EXPECT().ListExpenses(gomock.Any(), userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, req service.ListExpensesRequest) ([]entity.Expense, error) {
				assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), req.From)
				assert.Equal(t, time.Date(2024, time.May, 7, 0, 0, 0, 0, time.UTC), req.To)
				require.NotNil(t, req.Category)
				assert.Equal(t, "food", *req.Category)
				return []entity.Expense{}, nil
			})
		rr := call("?from=2024-05-01&to=2024-05-07&category=food")
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.JSONEq(t, `{"expenses":[]}`, rr.Body.String())
	})
	t.Run("defaults", func(t *testing.T) {
		rService.EXPECT().ListExpenses(gomock.Any(), userID, service.ListExpensesRequest{}).Return([]entity.Expense{}, nil)
		assert.Equal(t, http.StatusOK, call("").Result().StatusCode)
	})
	t.Run("invalid day", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, call("?from=yesterday").Result().StatusCode)
		assert.Equal(t, http.StatusBadRequest, call("?to=2024-13-01").Result().StatusCode)
	})
	t.Run("validation", func(t *testing.T) {
		rService.EXPECT().ListExpenses(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrValidation)
		assert.Equal(t, http.StatusBadRequest, call("?category=yachts").Result().StatusCode)
	})
}

func TestGetExpenseStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockRecordsServiceI(ctrl)
	serv := api.New(&api.ServicesList{RecordsService: rService})
	call := func(query string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		serv.GetExpenseStats(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/expenses/stats"+query, nil)))
		return rr
	}

	t.Run("month", func(t *testing.T) {
		rService.EXPECT().GetExpenseStats(gomock.Any(), userID, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)).
			Return(&report.ExpenseStats{
				Month: "2024-05",
				Total: decimal.RequireFromString("15"),
				Count: 2,
				ByCategory: []report.CategoryTotal{
					{Category: entity.CategoryFood, Total: decimal.RequireFromString("15")},
				},
			}, nil)
		rr := call("?month=2024-05")
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.JSONEq(t, `{"month":"2024-05","total":15,"count":2,"byCategory":[{"category":"food","total":15}]}`, rr.Body.String())
	})
	t.Run("current month by default", func(t *testing.T) {
		rService.EXPECT().GetExpenseStats(gomock.Any(), userID, time.Time{}).Return(&report.ExpenseStats{}, nil)
		assert.Equal(t, http.StatusOK, call("").Result().StatusCode)
	})
	t.Run("invalid month", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, call("?month=05-2024").Result().StatusCode)
	})
}

func TestListMoods(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockRecordsServiceI(ctrl)
	serv := api.New(&api.ServicesList{RecordsService: rService})
	call := func(query string) int {
		rr := httptest.NewRecorder()
		serv.ListMoods(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/moods"+query, nil)))
		return rr.Result().StatusCode
	}
	from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	rService.EXPECT().ListMoods(gomock.Any(), userID, service.ListMoodsRequest{From: from}).Return([]entity.MoodEntry{}, nil)
	assert.Equal(t, http.StatusOK, call("?from=2024-05-01"))
	assert.Equal(t, http.StatusBadRequest, call("?to=soon"))
	rService.EXPECT().ListMoods(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrValidation)
	assert.Equal(t, http.StatusBadRequest, call("?from=2024-05-10&to=2024-05-01"))
}

func TestListBudgets(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockBudgetServiceI(ctrl)
	serv := api.New(&api.ServicesList{BudgetService: bService})
	may := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	bService.EXPECT().ListBudgetGoals(gomock.Any(), userID, may).Return([]entity.BudgetGoal{
		{ID: uuid.New(), UserID: userID, Month: may, Scope: entity.OverallBudget(), Amount: decimal.NewFromInt(500)},
	}, nil)
	rr := httptest.NewRecorder()
	serv.ListBudgets(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/budgets?month=2024-05", nil)))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.Contains(t, rr.Body.String(), `"month":"2024-05"`)
	assert.Contains(t, rr.Body.String(), `"scope":"overall"`)

	rr = httptest.NewRecorder()
	serv.ListBudgets(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/budgets?month=may", nil)))
	assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
}
