package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/tenminute/internal/api"
	"github.com/limbo/tenminute/internal/repository"
	"github.com/limbo/tenminute/internal/service"
	"github.com/limbo/tenminute/pkg/cleanup"
	"github.com/limbo/tenminute/pkg/config"
	"github.com/limbo/tenminute/pkg/logging"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger := logging.Setup(cfg.GetStringOr("LOG_LEVEL", "info"), cfg.GetString("LOG_FILE"))
	defer cleanup.CleanUp()

	backend := cfg.GetStringOr("STORAGE_BACKEND", repository.BackendMemory)
	dbCfg := &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	if backend == repository.BackendPostgres && cfg.GetBool("MIGRATE_ON_START", false) {
		err := repository.Migrate(dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations"))
		if err != nil {
			log.Fatal(err)
		}
	}
	storage, err := repository.Open(backend, dbCfg, cfg.GetStringOr("SQLITE_PATH", "tenmin.db"))
	if err != nil {
		cleanup.CleanUp()
		log.Fatal(err)
	}
	logger.Info("storage ready", slog.String("backend", backend))

	serv := api.New(&api.ServicesList{
		TasksService:         service.NewTasksService(storage.Tasks),
		DailyEntriesService:  service.NewDailyEntriesService(storage.DailyEntries),
		ReflectionsService:   service.NewReflectionsService(storage.Reflections),
		WeeklyReviewsService: service.NewWeeklyReviewsService(storage.WeeklyReviews),
		InsightsService:      service.NewInsightsService(storage.Tasks, storage.DailyEntries, nil),
	}, api.WithRequestTimeout(cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"), cfg.GetDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
	if err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
	}
}
