package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/limbo/lifeboard/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type CreateHabitRequest struct {
	Name            string  `json:"name"`
	Icon            string  `json:"icon,omitempty"`
	Frequency       string  `json:"frequency,omitempty"`
	TargetDays      []int   `json:"targetDays,omitempty"`
	ReminderEnabled bool    `json:"reminderEnabled"`
	ReminderTime    *string `json:"reminderTime,omitempty"`
}

// LogHabitRequest.Date is YYYY-MM-DD; empty means today.
type LogHabitRequest struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type GetHabitsResponse struct {
	UserID string         `json:"uid"`
	Habits []entity.Habit `json:"habits"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid name or password", err)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid username or password", nil)
			return
		}
		logger.Error("login error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("account deletion error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("account deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "create habit")
	if !ok {
		return
	}
	var req CreateHabitRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitService.CreateHabit(ctx, uid, service.CreateHabitRequest{
		Name:            req.Name,
		Icon:            req.Icon,
		Frequency:       entity.Frequency(req.Frequency),
		TargetDays:      req.TargetDays,
		ReminderEnabled: req.ReminderEnabled,
		ReminderTime:    req.ReminderTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitExists):
			logger.Error("create habit error: attempt to create existed habit")
			httputil.WriteErrorResponse(w, http.StatusConflict, "habit already exists", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create habit error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create habit: user doesn't exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create habit error: invalid habit", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit", err)
		default:
			logger.Error("create habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created")
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "get habits")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.habitService.GetUserHabits(ctx, uid)
	if err != nil {
		logger.Error("getting habits list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting habits list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Habits: habits,
	})
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	uid, id, ok := s.habitTarget(w, r, "get habit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.habitService.GetHabit(ctx, id, uid)
	if err != nil {
		writeHabitError(w, r, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, id, ok := s.habitTarget(w, r, "habit deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.habitService.DeleteHabit(ctx, id, uid); err != nil {
		writeHabitError(w, r, "habit deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit deleted")
}

func (s *Server) ArchiveHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, id, ok := s.habitTarget(w, r, "habit archiving")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.habitService.ArchiveHabit(ctx, id, uid); err != nil {
		writeHabitError(w, r, "habit archiving", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit archived")
}

func (s *Server) LogHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, id, ok := s.habitTarget(w, r, "habit logging")
	if !ok {
		return
	}
	var req LogHabitRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Error("habit logging error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := parseOptionalDay(req.Date)
	if err != nil {
		logger.Error("habit logging error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.habitService.LogHabit(ctx, id, uid, service.LogHabitRequest{Date: date, Completed: req.Completed})
	if err != nil {
		writeHabitError(w, r, "habit logging", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit logged")
}

func (s *Server) GetHabitStats(w http.ResponseWriter, r *http.Request) {
	uid, id, ok := s.habitTarget(w, r, "habit stats")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.habitService.GetHabitStats(ctx, id, uid)
	if err != nil {
		writeHabitError(w, r, "habit stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

// GetHeatmap takes optional year, weeks and habitId query params.
func (s *Server) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "heatmap")
	if !ok {
		return
	}
	var (
		req service.HeatmapRequest
		err error
	)
	q := r.URL.Query()
	if v := q.Get("year"); v != "" {
		if req.Year, err = strconv.Atoi(v); err != nil {
			logger.Error("heatmap error: invalid year")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year", nil)
			return
		}
	}
	if v := q.Get("weeks"); v != "" {
		if req.Weeks, err = strconv.Atoi(v); err != nil {
			logger.Error("heatmap error: invalid weeks")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid weeks", nil)
			return
		}
	}
	if v := q.Get("habitId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			logger.Error("heatmap error: invalid habit id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id", nil)
			return
		}
		req.HabitID = &id
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	hm, err := s.habitService.GetHeatmap(ctx, uid, req)
	if err != nil {
		writeHabitError(w, r, "heatmap", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, hm)
}

func (s *Server) uidOrUnauthorized(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.Nil, false
	}
	return uid, true
}

// habitTarget resolves the caller and the {id} path value.
func (s *Server) habitTarget(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, uuid.UUID, bool) {
	uid, ok := s.uidOrUnauthorized(w, r, op)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return uid, id, true
}

// Habits of other users are reported as missing.
func writeHabitError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger := GetLoggerFromCtx(r.Context())
	switch {
	case errors.Is(err, errorvalues.ErrHabitNotFound):
		logger.Error(op + " error: unexist habit")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: habit has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrHabitArchived):
		logger.Error(op + " error: habit is archived")
		httputil.WriteErrorResponse(w, http.StatusConflict, "habit is archived", nil)
	case errors.Is(err, errorvalues.ErrCheckDateNotAllowed):
		logger.Error(op + " error: date in the future")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "can't log a habit for a future date", nil)
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func parseOptionalDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return calendar.ParseDay(s)
}
