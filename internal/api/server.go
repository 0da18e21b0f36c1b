package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/tenminute/internal/service"
	"github.com/limbo/tenminute/pkg/httputil"
)

const defaultRequestTimeout = 10 * time.Second

type Server struct {
	mx                   *chi.Mux
	tasksService         service.TasksServiceI
	dailyEntriesService  service.DailyEntriesServiceI
	reflectionsService   service.ReflectionsServiceI
	weeklyReviewsService service.WeeklyReviewsServiceI
	insightsService      service.InsightsServiceI
	requestTimeout       time.Duration
	now                  func() time.Time
}

type ServicesList struct {
	TasksService         service.TasksServiceI
	DailyEntriesService  service.DailyEntriesServiceI
	ReflectionsService   service.ReflectionsServiceI
	WeeklyReviewsService service.WeeklyReviewsServiceI
	InsightsService      service.InsightsServiceI
}

type Option func(*Server)

// WithRequestTimeout bounds the service call made by every handler.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.requestTimeout = d
		}
	}
}

// WithClock replaces the source of "today" used by the streak endpoint.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	s := &Server{
		mx:                   chi.NewMux(),
		tasksService:         servicesOptions.TasksService,
		dailyEntriesService:  servicesOptions.DailyEntriesService,
		reflectionsService:   servicesOptions.ReflectionsService,
		weeklyReviewsService: servicesOptions.WeeklyReviewsService,
		insightsService:      servicesOptions.InsightsService,
		requestTimeout:       defaultRequestTimeout,
		now:                  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware, s.RecoverMiddleware)

	s.mx.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteTextResponse(w, http.StatusOK, "OK")
	})

	s.mx.Route("/api", func(r chi.Router) {
		r.Get("/tasks", s.ListTasks)
		r.Get("/tasks-all", s.ListAllTasks)
		r.Post("/tasks", s.CreateTask)
		r.Put("/tasks/{id}", s.UpdateTask)
		r.Delete("/tasks/{id}", s.DeleteTask)
		r.Patch("/tasks/{id}/complete", s.CompleteTask)

		r.Get("/daily-all", s.ListAllDailyEntries)
		r.Get("/daily/{date}", s.GetDailyEntry)
		r.Post("/daily", s.CreateDailyEntry)
		r.Put("/daily/{id}", s.UpdateDailyEntry)
		r.Delete("/daily-entries/{id}", s.DeleteDailyEntry)
		r.Get("/daily-week/{weekStart}/{weekEnd}", s.ListWeekDailyEntries)

		r.Get("/reflections", s.ListReflections)
		r.Get("/reflections/{date}", s.ListReflections)
		r.Get("/reflections-all", s.ListAllReflections)
		r.Post("/reflections", s.CreateReflection)
		r.Put("/reflections/{id}", s.UpdateReflection)
		r.Delete("/reflections/{id}", s.DeleteReflection)
		r.Get("/reflection-prompts", s.ListReflectionPrompts)

		r.Get("/weekly-review/{weekStart}", s.GetWeeklyReview)
		r.Get("/weekly-reviews-all", s.ListAllWeeklyReviews)
		r.Post("/weekly-review", s.CreateWeeklyReview)
		r.Put("/weekly-review/{id}", s.UpdateWeeklyReview)
		r.Delete("/weekly-review/{id}", s.DeleteWeeklyReview)

		r.Get("/insights/streak", s.GetStreak)
		r.Get("/insights/week/{weekStart}/{weekEnd}", s.GetWeekStats)
		r.Get("/insights/suggestion", s.GetSuggestion)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on address until ctx is cancelled, then drains in-flight
// requests for at most shutdownTimeout.
func (s *Server) Run(ctx context.Context, address string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.New("server error: " + err.Error())
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return nil
}
