package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/tenminute/pkg/entity"
)

//go:generate mockgen -destination=mocks/repositories.go -package=mocks . DailyEntriesRepositoryI,ReflectionsRepositoryI,TasksRepositoryI,WeeklyReviewsRepositoryI

type TaskFilter struct {
	// Only tasks of this week when not empty
	WeekStart string
	// Soft-deleted tasks are skipped unless set
	IncludeInactive bool
}

type TasksRepositoryI interface {
	// Lists tasks matching filter, in no particular order
	List(ctx context.Context, filter TaskFilter) ([]*entity.Task, error)
	// Lists active tasks, newest first
	ListAll(ctx context.Context) ([]*entity.Task, error)
	// Searches active task with given id
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	// Assigns id and creation time, stores the task and returns it
	Create(ctx context.Context, task *entity.Task) (*entity.Task, error)
	// Merges patch over the stored task. Inactive tasks can be updated too
	Update(ctx context.Context, id string, patch *entity.TaskPatch) (*entity.Task, error)
	// Soft-deletes an active task. Reports false if there was nothing to delete
	Delete(ctx context.Context, id string) (bool, error)
}

type DailyEntriesRepositoryI interface {
	// Lists every entry, newest date first
	ListAll(ctx context.Context) ([]*entity.DailyEntry, error)
	// Returns the entry for date. With duplicates the latest created wins
	GetByDate(ctx context.Context, date string) (*entity.DailyEntry, error)
	GetByID(ctx context.Context, id string) (*entity.DailyEntry, error)
	Create(ctx context.Context, entry *entity.DailyEntry) (*entity.DailyEntry, error)
	Update(ctx context.Context, id string, patch *entity.DailyEntryPatch) (*entity.DailyEntry, error)
	// Removes the entry. Reports false if id is unknown
	Delete(ctx context.Context, id string) (bool, error)
	// Lists entries with start <= date <= end
	ListForDateRange(ctx context.Context, start, end string) ([]*entity.DailyEntry, error)
}

type ReflectionsRepositoryI interface {
	// Lists reflections of the date, or all of them when date is empty
	List(ctx context.Context, date string) ([]*entity.Reflection, error)
	// Lists every reflection, newest first
	ListAll(ctx context.Context) ([]*entity.Reflection, error)
	GetByID(ctx context.Context, id string) (*entity.Reflection, error)
	Create(ctx context.Context, reflection *entity.Reflection) (*entity.Reflection, error)
	Update(ctx context.Context, id string, patch *entity.ReflectionPatch) (*entity.Reflection, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type WeeklyReviewsRepositoryI interface {
	// Lists every review, newest first
	ListAll(ctx context.Context) ([]*entity.WeeklyReview, error)
	// Returns the review of the week. With duplicates the latest created wins
	GetByWeekStart(ctx context.Context, weekStart string) (*entity.WeeklyReview, error)
	GetByID(ctx context.Context, id string) (*entity.WeeklyReview, error)
	Create(ctx context.Context, review *entity.WeeklyReview) (*entity.WeeklyReview, error)
	Update(ctx context.Context, id string, patch *entity.WeeklyReviewPatch) (*entity.WeeklyReview, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
