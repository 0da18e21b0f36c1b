package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/internal/service"
	"github.com/limbo/tenminute/pkg/httputil"
)

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}

// decodeBody reports a 400 itself and returns false when the body is not a
// JSON value of the expected shape.
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, v any) bool {
	defer r.Body.Close()
	if err := httputil.DecodeJSON(r.Body, v); err != nil {
		logger.Error(op+" error: invalid body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

// writeServiceError maps err onto a status code. Only validation details are
// sent to the client; storage errors are logged.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error, failMessage string) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidInput):
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	case errorvalues.IsNotFound(err):
		logger.Error(op + " error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error(), nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, failMessage, nil)
	}
}

func deleted(w http.ResponseWriter) {
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.SuccessResponse{Success: true})
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	tasks, err := s.tasksService.List(ctx, r.URL.Query().Get("weekStart"))
	if err != nil {
		writeServiceError(w, logger, "list tasks", err, "failed to fetch tasks")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
}

func (s *Server) ListAllTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	tasks, err := s.tasksService.ListAll(ctx)
	if err != nil {
		writeServiceError(w, logger, "list all tasks", err, "failed to fetch all tasks")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CreateTaskRequest
	if !decodeBody(w, r, logger, "create task", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	task, err := s.tasksService.Create(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "create task", err, "failed to create task")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task created", slog.String("id", task.ID))
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.UpdateTaskRequest
	if !decodeBody(w, r, logger, "update task", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	task, err := s.tasksService.Update(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, logger, "update task", err, "failed to update task")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) CompleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.SetCompletedRequest
	if !decodeBody(w, r, logger, "complete task", &req) {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	task, err := s.tasksService.SetCompleted(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, logger, "complete task", err, "failed to update task completion")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	id := chi.URLParam(r, "id")
	if err := s.tasksService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete task", err, "failed to delete task")
		return
	}
	deleted(w)
	logger.Info("task deleted", slog.String("id", id))
}
