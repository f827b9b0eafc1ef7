package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/cleanup"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	habitService   service.HabitsServiceI
	recordsService service.RecordsServiceI
	budgetService  service.BudgetServiceI
	reportService  service.ReportServiceI
	notesService   service.NotesServiceI
	searchService  service.SearchServiceI
	jwtService     JWTServiceI
}

type ServicesList struct {
	UserService    service.UserServiceI
	HabitsService  service.HabitsServiceI
	RecordsService service.RecordsServiceI
	BudgetService  service.BudgetServiceI
	ReportService  service.ReportServiceI
	NotesService   service.NotesServiceI
	SearchService  service.SearchServiceI
	JwtService     JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		habitService:   servicesOptions.HabitsService,
		recordsService: servicesOptions.RecordsService,
		budgetService:  servicesOptions.BudgetService,
		reportService:  servicesOptions.ReportService,
		notesService:   servicesOptions.NotesService,
		searchService:  servicesOptions.SearchService,
		jwtService:     servicesOptions.JwtService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/auth/account", s.DeleteAccount)

			r.Get("/habits", s.GetHabits)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits/heatmap", s.GetHeatmap)
			r.Get("/habits/{id}", s.GetHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Post("/habits/{id}/archive", s.ArchiveHabit)
			r.Put("/habits/{id}/logs", s.LogHabit)
			r.Get("/habits/{id}/stats", s.GetHabitStats)

			r.Get("/tasks", s.ListTasks)
			r.Post("/tasks", s.CreateTask)
			r.Patch("/tasks/{id}", s.UpdateTask)
			r.Delete("/tasks/{id}", s.DeleteTask)

			r.Get("/expenses", s.ListExpenses)
			r.Post("/expenses", s.AddExpense)
			r.Get("/expenses/stats", s.GetExpenseStats)
			r.Delete("/expenses/{id}", s.DeleteExpense)

			r.Get("/moods", s.ListMoods)
			r.Put("/moods", s.LogMood)
			r.Delete("/moods/{id}", s.DeleteMood)

			r.Get("/budgets", s.ListBudgets)
			r.Put("/budgets", s.SetBudget)
			r.Get("/budgets/status", s.GetBudgetStatus)
			r.Delete("/budgets/{id}", s.DeleteBudget)

			r.Get("/notes", s.GetNotes)
			r.Post("/notes", s.CreateNote)
			r.Patch("/notes/{id}", s.UpdateNote)
			r.Delete("/notes/{id}", s.DeleteNote)
			r.Post("/notes/{id}/pin", s.ToggleNotePin)

			r.Get("/search", s.Search)

			r.Get("/reports/{period}", s.GetReport)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT or SIGTERM, then shuts down and runs the registered cleanup jobs.
func (s *Server) Run(addr string) error {
	defer cleanup.CleanUp()
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
