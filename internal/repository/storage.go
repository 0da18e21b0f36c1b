package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/tenminute/pkg/cleanup"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Storage bundles one repository per record type. Every backend fills all four.
type Storage struct {
	Tasks         TasksRepositoryI
	DailyEntries  DailyEntriesRepositoryI
	Reflections   ReflectionsRepositoryI
	WeeklyReviews WeeklyReviewsRepositoryI
}

func NewPostgresStorage(cfg DBConfig) (*Storage, error) {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		pool.Close()
		return nil, errors.New("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return newPostgresStorage(pool), nil
}

// NewPostgresStorageWithConn wraps an already opened connection, e.g. a pgxmock pool.
func NewPostgresStorageWithConn(conn PgConnection) (*Storage, error) {
	err := conn.Ping(context.Background())
	if err != nil {
		return nil, errors.New("error while pinging connection: " + err.Error())
	}
	return newPostgresStorage(conn), nil
}

func newPostgresStorage(conn PgConnection) *Storage {
	return &Storage{
		Tasks:         &TasksRepository{conn: conn},
		DailyEntries:  &DailyEntriesRepository{conn: conn},
		Reflections:   &ReflectionsRepository{conn: conn},
		WeeklyReviews: &WeeklyReviewsRepository{conn: conn},
	}
}

func NewMemoryStorage() *Storage {
	return &Storage{
		Tasks:         NewMemoryTasksRepo(),
		DailyEntries:  NewMemoryDailyEntriesRepo(),
		Reflections:   NewMemoryReflectionsRepo(),
		WeeklyReviews: NewMemoryWeeklyReviewsRepo(),
	}
}

func now() time.Time {
	return time.Now().UTC()
}
