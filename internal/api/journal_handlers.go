package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/internal/service"
	"github.com/limbo/tenminute/pkg/httputil"
)

func (s *Server) ListAllDailyEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	entries, err := s.dailyEntriesService.ListAll(ctx)
	if err != nil {
		writeServiceError(w, logger, "list daily entries", err, "failed to fetch all daily entries")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
}

// GetDailyEntry answers null when the date has no entry.
func (s *Server) GetDailyEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	entry, err := s.dailyEntriesService.GetByDate(ctx, chi.URLParam(r, "date"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyEntryNotFound) {
			httputil.WriteJSONResponse(w, http.StatusOK, nil)
			return
		}
		writeServiceError(w, logger, "get daily entry", err, "failed to fetch daily entry")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

func (s *Server) CreateDailyEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateDailyEntryRequest
	if !decodeBody(w, r, logger, "create daily entry", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	entry, err := s.dailyEntriesService.Create(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "create daily entry", err, "failed to create daily entry")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("daily entry created", slog.String("id", entry.ID), slog.String("date", entry.Date))
}

func (s *Server) UpdateDailyEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.UpdateDailyEntryRequest
	if !decodeBody(w, r, logger, "update daily entry", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	entry, err := s.dailyEntriesService.Update(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, logger, "update daily entry", err, "failed to update daily entry")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

func (s *Server) DeleteDailyEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.dailyEntriesService.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, logger, "delete daily entry", err, "failed to delete daily entry")
		return
	}
	deleted(w)
}

func (s *Server) ListWeekDailyEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	entries, err := s.dailyEntriesService.ListForWeek(ctx, chi.URLParam(r, "weekStart"), chi.URLParam(r, "weekEnd"))
	if err != nil {
		writeServiceError(w, logger, "list week entries", err, "failed to fetch weekly entries")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
}

// ListReflections serves both /reflections and /reflections/{date}.
func (s *Server) ListReflections(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	reflections, err := s.reflectionsService.List(ctx, chi.URLParam(r, "date"))
	if err != nil {
		writeServiceError(w, logger, "list reflections", err, "failed to fetch reflections")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflections)
}

func (s *Server) ListAllReflections(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	reflections, err := s.reflectionsService.ListAll(ctx)
	if err != nil {
		writeServiceError(w, logger, "list all reflections", err, "failed to fetch all reflections")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflections)
}

func (s *Server) ListReflectionPrompts(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.reflectionsService.Prompts())
}

func (s *Server) CreateReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateReflectionRequest
	if !decodeBody(w, r, logger, "create reflection", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	reflection, err := s.reflectionsService.Create(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "create reflection", err, "failed to create reflection")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflection)
}

func (s *Server) UpdateReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.UpdateReflectionRequest
	if !decodeBody(w, r, logger, "update reflection", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	reflection, err := s.reflectionsService.Update(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, logger, "update reflection", err, "failed to update reflection")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflection)
}

func (s *Server) DeleteReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.reflectionsService.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, logger, "delete reflection", err, "failed to delete reflection")
		return
	}
	deleted(w)
}

// GetWeeklyReview answers null when the week has no review.
func (s *Server) GetWeeklyReview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	review, err := s.weeklyReviewsService.GetByWeekStart(ctx, chi.URLParam(r, "weekStart"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrWeeklyReviewNotFound) {
			httputil.WriteJSONResponse(w, http.StatusOK, nil)
			return
		}
		writeServiceError(w, logger, "get weekly review", err, "failed to fetch weekly review")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, review)
}

func (s *Server) ListAllWeeklyReviews(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	reviews, err := s.weeklyReviewsService.ListAll(ctx)
	if err != nil {
		writeServiceError(w, logger, "list weekly reviews", err, "failed to fetch all weekly reviews")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reviews)
}

func (s *Server) CreateWeeklyReview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateWeeklyReviewRequest
	if !decodeBody(w, r, logger, "create weekly review", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	review, err := s.weeklyReviewsService.Create(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "create weekly review", err, "failed to create weekly review")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, review)
}

func (s *Server) UpdateWeeklyReview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.UpdateWeeklyReviewRequest
	if !decodeBody(w, r, logger, "update weekly review", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	review, err := s.weeklyReviewsService.Update(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, logger, "update weekly review", err, "failed to update weekly review")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, review)
}

func (s *Server) DeleteWeeklyReview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.weeklyReviewsService.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, logger, "delete weekly review", err, "failed to delete weekly review")
		return
	}
	deleted(w)
}
