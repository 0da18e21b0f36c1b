package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/tenminute/internal/progress"
	"github.com/limbo/tenminute/pkg/entity"
	"github.com/limbo/tenminute/pkg/httputil"
)

// GetStreak counts back from ?today=, or from the server's local date.
func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	today := s.now()
	if v := r.URL.Query().Get("today"); v != "" {
		parsed, err := time.Parse(entity.DateLayout, v)
		if err != nil {
			logger.Error("streak error: invalid today parameter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "today must be a YYYY-MM-DD date", nil)
			return
		}
		today = parsed
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	streak, err := s.insightsService.Streak(ctx, today)
	if err != nil {
		writeServiceError(w, logger, "streak", err, "failed to compute streak")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
}

func (s *Server) GetWeekStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	stats, err := s.insightsService.Week(ctx, chi.URLParam(r, "weekStart"), chi.URLParam(r, "weekEnd"))
	if err != nil {
		writeServiceError(w, logger, "week stats", err, "failed to compute weekly stats")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

// GetSuggestion defaults weekStart to the current week and energy to unset.
func (s *Server) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	query := r.URL.Query()
	weekStart := query.Get("weekStart")
	if weekStart == "" {
		weekStart, _ = progress.WeekOf(s.now())
	}
	energy := 0
	if v := query.Get("energy"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			logger.Error("suggestion error: invalid energy parameter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "energy must be an integer", nil)
			return
		}
		energy = parsed
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	suggestion, err := s.insightsService.Suggestion(ctx, weekStart, energy)
	if err != nil {
		writeServiceError(w, logger, "suggestion", err, "failed to build suggestion")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, suggestion)
}
