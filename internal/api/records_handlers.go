package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/limbo/lifeboard/pkg/httputil"
	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Group       *string `json:"group,omitempty"`
	DueDate     string  `json:"dueDate,omitempty"`
}

type UpdateTaskRequest struct {
	Completed bool `json:"completed"`
}

type AddExpenseRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
	Date     string          `json:"date,omitempty"`
}

type LogMoodRequest struct {
	Mood   int    `json:"mood"`
	Energy *int   `json:"energy,omitempty"`
	Note   string `json:"note,omitempty"`
	Date   string `json:"date,omitempty"`
}

// SetBudgetRequest.Month is YYYY-MM; a missing category sets the overall budget.
type SetBudgetRequest struct {
	Month    string          `json:"month"`
	Category *string         `json:"category,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "create task")
	if !ok {
		return
	}
	var req CreateTaskRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("create task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := calendar.ParseDay(req.DueDate)
		if err != nil {
			logger.Error("create task error: invalid due date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "dueDate must be YYYY-MM-DD", nil)
			return
		}
		dueDate = &d
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.recordsService.CreateTask(ctx, uid, service.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    entity.Priority(req.Priority),
		Group:       req.Group,
		DueDate:     dueDate,
	})
	if err != nil {
		writeRecordError(w, r, "create task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created")
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "update task")
	if !ok {
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req UpdateTaskRequest
	if err = httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("update task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.recordsService.SetTaskCompleted(ctx, id, uid, req.Completed); err != nil {
		writeRecordError(w, r, "update task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("task updated")
}

func (s *Server) AddExpense(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "add expense")
	if !ok {
		return
	}
	var req AddExpenseRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("add expense error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := parseOptionalDay(req.Date)
	if err != nil {
		logger.Error("add expense error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	expense, err := s.recordsService.AddExpense(ctx, uid, service.AddExpenseRequest{
		Amount:   req.Amount,
		Category: entity.ExpenseCategory(req.Category),
		Note:     req.Note,
		Date:     date,
	})
	if err != nil {
		writeRecordError(w, r, "add expense", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, expense)
	logger.Info("expense added")
}

func (s *Server) LogMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "log mood")
	if !ok {
		return
	}
	var req LogMoodRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("log mood error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := parseOptionalDay(req.Date)
	if err != nil {
		logger.Error("log mood error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entry, err := s.recordsService.LogMood(ctx, uid, service.LogMoodRequest{
		Mood:   req.Mood,
		Energy: req.Energy,
		Note:   req.Note,
		Date:   date,
	})
	if err != nil {
		writeRecordError(w, r, "log mood", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("mood logged")
}

func (s *Server) SetBudget(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "set budget")
	if !ok {
		return
	}
	var req SetBudgetRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("set budget error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	month, err := time.Parse(monthLayout, req.Month)
	if err != nil {
		logger.Error("set budget error: invalid month")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "month must be YYYY-MM", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	goal, err := s.budgetService.SetBudget(ctx, uid, service.SetBudgetRequest{
		Month:    month,
		Category: req.Category,
		Amount:   req.Amount,
	})
	if err != nil {
		writeRecordError(w, r, "set budget", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("budget set")
}

// GetBudgetStatus reads the month from ?month=YYYY-MM, the current month by default.
func (s *Server) GetBudgetStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "budget status")
	if !ok {
		return
	}
	month, ok := monthQuery(w, r, "budget status")
	if !ok {
		return
	}
	if month.IsZero() {
		month = time.Now().UTC()
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	statuses, err := s.budgetService.GetBudgetStatus(ctx, uid, month)
	if err != nil {
		writeRecordError(w, r, "budget status", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"month":   calendar.StartOfMonth(month).Format(monthLayout),
		"budgets": statuses,
	})
	logger.Info("budget status provided")
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.uidOrUnauthorized(w, r, "list tasks")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tasks, err := s.recordsService.ListTasks(ctx, uid)
	if err != nil {
		writeRecordError(w, r, "list tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"tasks": tasks})
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	s.deleteRecord(w, r, "delete task", s.recordsService.DeleteTask)
}

// ListExpenses reads optional ?from=&to= days and ?category=.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "list expenses")
	if !ok {
		return
	}
	query := r.URL.Query()
	from, err := parseOptionalDay(query.Get("from"))
	if err != nil {
		logger.Error("list expenses error: invalid from")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from must be YYYY-MM-DD", nil)
		return
	}
	to, err := parseOptionalDay(query.Get("to"))
	if err != nil {
		logger.Error("list expenses error: invalid to")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "to must be YYYY-MM-DD", nil)
		return
	}
	req := service.ListExpensesRequest{From: from, To: to}
	if c := query.Get("category"); c != "" {
		req.Category = &c
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	expenses, err := s.recordsService.ListExpenses(ctx, uid, req)
	if err != nil {
		writeRecordError(w, r, "list expenses", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"expenses": expenses})
}

func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	s.deleteRecord(w, r, "delete expense", s.recordsService.DeleteExpense)
}

func (s *Server) GetExpenseStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.uidOrUnauthorized(w, r, "expense stats")
	if !ok {
		return
	}
	month, ok := monthQuery(w, r, "expense stats")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.recordsService.GetExpenseStats(ctx, uid, month)
	if err != nil {
		writeRecordError(w, r, "expense stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) ListMoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "list moods")
	if !ok {
		return
	}
	from, errFrom := parseOptionalDay(r.URL.Query().Get("from"))
	to, errTo := parseOptionalDay(r.URL.Query().Get("to"))
	if errFrom != nil || errTo != nil {
		logger.Error("list moods error: invalid range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from and to must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	moods, err := s.recordsService.ListMoods(ctx, uid, service.ListMoodsRequest{From: from, To: to})
	if err != nil {
		writeRecordError(w, r, "list moods", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"moods": moods})
}

func (s *Server) DeleteMood(w http.ResponseWriter, r *http.Request) {
	s.deleteRecord(w, r, "delete mood", s.recordsService.DeleteMood)
}

func (s *Server) ListBudgets(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.uidOrUnauthorized(w, r, "list budgets")
	if !ok {
		return
	}
	month, ok := monthQuery(w, r, "list budgets")
	if !ok {
		return
	}
	if month.IsZero() {
		month = time.Now().UTC()
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	goals, err := s.budgetService.ListBudgetGoals(ctx, uid, month)
	if err != nil {
		writeRecordError(w, r, "list budgets", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"month":   calendar.StartOfMonth(month).Format(monthLayout),
		"budgets": goals,
	})
}

func (s *Server) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	s.deleteRecord(w, r, "delete budget", s.budgetService.DeleteBudgetGoal)
}

// deleteRecord runs an owner-scoped delete of the {id} record.
func (s *Server) deleteRecord(w http.ResponseWriter, r *http.Request, op string, del func(ctx context.Context, id, uid uuid.UUID) error) {
	uid, id, ok := s.recordTarget(w, r, op)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := del(ctx, id, uid); err != nil {
		writeRecordError(w, r, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	GetLoggerFromCtx(r.Context()).Info(op + " done")
}

func (s *Server) recordTarget(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, uuid.UUID, bool) {
	uid, ok := s.uidOrUnauthorized(w, r, op)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid record id in path value", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return uid, id, true
}

// monthQuery parses ?month=YYYY-MM; a missing month is the zero time.
func monthQuery(w http.ResponseWriter, r *http.Request, op string) (time.Time, bool) {
	v := r.URL.Query().Get("month")
	if v == "" {
		return time.Time{}, true
	}
	month, err := time.Parse(monthLayout, v)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: invalid month")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "month must be YYYY-MM", nil)
		return time.Time{}, false
	}
	return month, true
}

func writeRecordError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger := GetLoggerFromCtx(r.Context())
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrTaskNotFound),
		errors.Is(err, errorvalues.ErrExpenseNotFound),
		errors.Is(err, errorvalues.ErrMoodNotFound),
		errors.Is(err, errorvalues.ErrBudgetNotFound),
		errors.Is(err, errorvalues.ErrNoteNotFound),
		errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: record not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "record doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
