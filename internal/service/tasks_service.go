package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/internal/repository"
	"github.com/limbo/tenminute/pkg/entity"
)

type TasksService struct {
	repo repository.TasksRepositoryI
}

func NewTasksService(tasksRepo repository.TasksRepositoryI) *TasksService {
	if tasksRepo == nil {
		log.Fatal("provided nil tasksRepo")
	}
	return &TasksService{
		repo: tasksRepo,
	}
}

func (ts *TasksService) List(ctx context.Context, weekStart string) ([]*entity.Task, error) {
	tasks, err := ts.repo.List(ctx, repository.TaskFilter{WeekStart: weekStart})
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) ListAll(ctx context.Context) ([]*entity.Task, error) {
	tasks, err := ts.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) Create(ctx context.Context, req *CreateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	task := entity.Task{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: valueOr(req.IsCompleted, false),
		IsActive:    valueOr(req.IsActive, true),
		WeekStart:   req.WeekStart,
	}
	created, err := ts.repo.Create(ctx, &task)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return created, nil
}

func (ts *TasksService) Update(ctx context.Context, id string, req *UpdateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return ts.update(ctx, id, &entity.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		IsActive:    req.IsActive,
		WeekStart:   req.WeekStart,
	})
}

func (ts *TasksService) SetCompleted(ctx context.Context, id string, req *SetCompletedRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return ts.update(ctx, id, &entity.TaskPatch{IsCompleted: req.Completed})
}

func (ts *TasksService) update(ctx context.Context, id string, patch *entity.TaskPatch) (*entity.Task, error) {
	task, err := ts.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) Delete(ctx context.Context, id string) error {
	ok, err := ts.repo.Delete(ctx, id)
	if err != nil {
		return errors.New("tasks repository error: " + err.Error())
	}
	if !ok {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
