package service

import (
	"context"
	"time"

	"github.com/limbo/tenminute/internal/progress"
	"github.com/limbo/tenminute/pkg/entity"
)

//go:generate mockgen -destination=mocks/services.go -package=mocks . DailyEntriesServiceI,InsightsServiceI,ReflectionsServiceI,TasksServiceI,WeeklyReviewsServiceI

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=500"`
	Description *string `json:"description" validate:"omitnil,max=5000"`
	IsCompleted *bool   `json:"isCompleted"`
	IsActive    *bool   `json:"isActive"`
	WeekStart   string  `json:"weekStart" validate:"required,isodate"`
}

type UpdateTaskRequest struct {
	Title       *string                 `json:"title" validate:"omitnil,min=1,max=500"`
	Description entity.Nullable[string] `json:"description,omitzero" validate:"omitnil,max=5000"`
	IsCompleted *bool                   `json:"isCompleted"`
	IsActive    *bool                   `json:"isActive"`
	WeekStart   *string                 `json:"weekStart" validate:"omitnil,isodate"`
}

type SetCompletedRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

type CreateDailyEntryRequest struct {
	Date              string   `json:"date" validate:"required,isodate"`
	MorningIntention  *string  `json:"morningIntention"`
	EnergyLevel       *int     `json:"energyLevel" validate:"omitnil,min=1,max=10"`
	SuggestedTaskID   *string  `json:"suggestedTaskId"`
	TenMinuteActivity *string  `json:"tenMinuteActivity"`
	ActivityCompleted *bool    `json:"activityCompleted"`
	EveningReflection *string  `json:"eveningReflection"`
	PromiseKept       *string  `json:"promiseKept" validate:"omitnil,oneof=yes partial no"`
	FollowUpResponse  *string  `json:"followUpResponse"`
	Photos            []string `json:"photos"`
	VoiceNotes        []string `json:"voiceNotes"`
}

type UpdateDailyEntryRequest struct {
	Date              *string                 `json:"date" validate:"omitnil,isodate"`
	MorningIntention  entity.Nullable[string] `json:"morningIntention,omitzero"`
	EnergyLevel       entity.Nullable[int]    `json:"energyLevel,omitzero" validate:"omitnil,min=1,max=10"`
	SuggestedTaskID   entity.Nullable[string] `json:"suggestedTaskId,omitzero"`
	TenMinuteActivity entity.Nullable[string] `json:"tenMinuteActivity,omitzero"`
	ActivityCompleted *bool                   `json:"activityCompleted"`
	EveningReflection entity.Nullable[string] `json:"eveningReflection,omitzero"`
	PromiseKept       entity.Nullable[string] `json:"promiseKept,omitzero" validate:"omitnil,oneof=yes partial no"`
	FollowUpResponse  entity.Nullable[string] `json:"followUpResponse,omitzero"`
	Photos            []string                `json:"photos"`
	VoiceNotes        []string                `json:"voiceNotes"`
}

type CreateReflectionRequest struct {
	PromptID         string  `json:"promptId" validate:"required"`
	PromptText       string  `json:"promptText" validate:"required"`
	Response         string  `json:"response" validate:"required"`
	FollowUpResponse *string `json:"followUpResponse"`
	Date             string  `json:"date" validate:"required,isodate"`
}

type UpdateReflectionRequest struct {
	PromptID         *string                 `json:"promptId" validate:"omitnil,min=1"`
	PromptText       *string                 `json:"promptText" validate:"omitnil,min=1"`
	Response         *string                 `json:"response" validate:"omitnil,min=1"`
	FollowUpResponse entity.Nullable[string] `json:"followUpResponse,omitzero"`
	Date             *string                 `json:"date" validate:"omitnil,isodate"`
}

type CreateWeeklyReviewRequest struct {
	WeekStart          string  `json:"weekStart" validate:"required,isodate"`
	WeekEnd            string  `json:"weekEnd" validate:"required,isodate"`
	ProudActions       *string `json:"proudActions"`
	SelfRespectMoments *string `json:"selfRespectMoments"`
	Patterns           *string `json:"patterns"`
	NextWeekCultivate  *string `json:"nextWeekCultivate"`
	NextWeekSupport    *string `json:"nextWeekSupport"`
	GrowthLevel        *int    `json:"growthLevel" validate:"omitnil,min=1,max=5"`
	PromisesKept       *int    `json:"promisesKept" validate:"omitnil,min=0"`
	TotalPromises      *int    `json:"totalPromises" validate:"omitnil,min=0"`
}

type UpdateWeeklyReviewRequest struct {
	WeekStart          *string                 `json:"weekStart" validate:"omitnil,isodate"`
	WeekEnd            *string                 `json:"weekEnd" validate:"omitnil,isodate"`
	ProudActions       entity.Nullable[string] `json:"proudActions,omitzero"`
	SelfRespectMoments entity.Nullable[string] `json:"selfRespectMoments,omitzero"`
	Patterns           entity.Nullable[string] `json:"patterns,omitzero"`
	NextWeekCultivate  entity.Nullable[string] `json:"nextWeekCultivate,omitzero"`
	NextWeekSupport    entity.Nullable[string] `json:"nextWeekSupport,omitzero"`
	GrowthLevel        *int                    `json:"growthLevel" validate:"omitnil,min=1,max=5"`
	PromisesKept       *int                    `json:"promisesKept" validate:"omitnil,min=0"`
	TotalPromises      *int                    `json:"totalPromises" validate:"omitnil,min=0"`
}

type TasksServiceI interface {
	// Lists active tasks, of the given week when weekStart is not empty
	List(ctx context.Context, weekStart string) ([]*entity.Task, error)
	// Lists every active task, newest first
	ListAll(ctx context.Context) ([]*entity.Task, error)
	// Validates request, stores the task. Omitted isActive means true, omitted isCompleted means false
	Create(ctx context.Context, req *CreateTaskRequest) (*entity.Task, error)
	Update(ctx context.Context, id string, req *UpdateTaskRequest) (*entity.Task, error)
	SetCompleted(ctx context.Context, id string, req *SetCompletedRequest) (*entity.Task, error)
	// Soft-deletes the task. ErrTaskNotFound if there was no active task with id
	Delete(ctx context.Context, id string) error
}

type DailyEntriesServiceI interface {
	ListAll(ctx context.Context) ([]*entity.DailyEntry, error)
	// ErrDailyEntryNotFound when there is no entry for date
	GetByDate(ctx context.Context, date string) (*entity.DailyEntry, error)
	Create(ctx context.Context, req *CreateDailyEntryRequest) (*entity.DailyEntry, error)
	Update(ctx context.Context, id string, req *UpdateDailyEntryRequest) (*entity.DailyEntry, error)
	Delete(ctx context.Context, id string) error
	// Lists entries with weekStart <= date <= weekEnd
	ListForWeek(ctx context.Context, weekStart, weekEnd string) ([]*entity.DailyEntry, error)
}

type ReflectionsServiceI interface {
	// Lists reflections of date, every reflection when date is empty
	List(ctx context.Context, date string) ([]*entity.Reflection, error)
	ListAll(ctx context.Context) ([]*entity.Reflection, error)
	Create(ctx context.Context, req *CreateReflectionRequest) (*entity.Reflection, error)
	Update(ctx context.Context, id string, req *UpdateReflectionRequest) (*entity.Reflection, error)
	Delete(ctx context.Context, id string) error
	// Returns the fixed catalog of reflection prompts
	Prompts() []Prompt
}

type WeeklyReviewsServiceI interface {
	ListAll(ctx context.Context) ([]*entity.WeeklyReview, error)
	// ErrWeeklyReviewNotFound when there is no review for the week
	GetByWeekStart(ctx context.Context, weekStart string) (*entity.WeeklyReview, error)
	Create(ctx context.Context, req *CreateWeeklyReviewRequest) (*entity.WeeklyReview, error)
	Update(ctx context.Context, id string, req *UpdateWeeklyReviewRequest) (*entity.WeeklyReview, error)
	Delete(ctx context.Context, id string) error
}

type InsightsServiceI interface {
	// Computes the kept-promise streak ending on today's date
	Streak(ctx context.Context, today time.Time) (*StreakInsight, error)
	// Aggregates the entries of the inclusive date range
	Week(ctx context.Context, weekStart, weekEnd string) (*progress.Stats, error)
	// Picks an incomplete task of the week and suggests activities for it and for energy level
	Suggestion(ctx context.Context, weekStart string, energy int) (*Suggestion, error)
}
