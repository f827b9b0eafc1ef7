package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/limbo/lifeboard/internal/api"
	"github.com/limbo/lifeboard/internal/repository"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/limbo/lifeboard/pkg/config"
	jwtservice "github.com/limbo/lifeboard/pkg/jwt_service"
)

func init() {
	service.InitValidator()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	pool := repository.Connect(&dbCfg)

	usersRepo := repository.NewUsersRepoWithConn(pool)
	habitsRepo := repository.NewHabitsRepoWithConn(pool)
	logsRepo := repository.NewHabitLogsRepoWithConn(pool)
	tasksRepo := repository.NewTasksRepoWithConn(pool)
	expensesRepo := repository.NewExpensesRepoWithConn(pool)
	moodsRepo := repository.NewMoodsRepoWithConn(pool)
	budgetsRepo := repository.NewBudgetGoalsRepoWithConn(pool)
	notesRepo := repository.NewNotesRepoWithConn(pool)

	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo),
		HabitsService:  service.NewHabitsService(habitsRepo, logsRepo, cfg.GetWeekday("HEATMAP_WEEK_START", time.Sunday)),
		RecordsService: service.NewRecordsService(tasksRepo, expensesRepo, moodsRepo),
		BudgetService:  service.NewBudgetService(budgetsRepo, expensesRepo),
		ReportService: service.NewReportService(service.ReportRepos{
			Tasks:     tasksRepo,
			Habits:    habitsRepo,
			HabitLogs: logsRepo,
			Expenses:  expensesRepo,
			Moods:     moodsRepo,
		}),
		NotesService:  service.NewNotesService(notesRepo),
		SearchService: service.NewSearchService(tasksRepo, notesRepo, habitsRepo, expensesRepo),
		JwtService:    jwtservice.New(secret),
	})
	if err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		log.Println("Server error: " + err.Error())
	}
}
