package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/pkg/cleanup"
	"github.com/limbo/tenminute/pkg/entity"
)

// NewSQLiteStorage opens (and migrates) a sqlite database through gorm.
// Use ":memory:" for a throwaway database.
func NewSQLiteStorage(path string) (*Storage, error) {
	db, err := gorm.Open(gormlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.New("opening sqlite database error: " + err.Error())
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.New("getting sqlite handle error: " + err.Error())
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(&entity.Task{}, &entity.DailyEntry{}, &entity.Reflection{}, &entity.WeeklyReview{})
	if err != nil {
		sqlDB.Close()
		return nil, errors.New("migrating sqlite database error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite database",
		F:    sqlDB.Close,
	})
	return &Storage{
		Tasks:         &GormTasksRepository{db: db},
		DailyEntries:  &GormDailyEntriesRepository{db: db},
		Reflections:   &GormReflectionsRepository{db: db},
		WeeklyReviews: &GormWeeklyReviewsRepository{db: db},
	}, nil
}

func gormFirst[T any](db *gorm.DB, notFound error, query string, args ...any) (*T, error) {
	var item T
	err := db.Where(query, args...).Order("created_at DESC").First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, errors.New("sqlite lookup error: " + err.Error())
	}
	return &item, nil
}

func gormFind[T any](db *gorm.DB, order string, query string, args ...any) ([]*T, error) {
	items := make([]*T, 0)
	tx := db.Order(order)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Find(&items).Error; err != nil {
		return nil, errors.New("sqlite listing error: " + err.Error())
	}
	return items, nil
}

// gormModify loads the record, lets apply change it and saves it back in one
// transaction. apply reports whether the record qualifies for the change.
func gormModify[T any](ctx context.Context, db *gorm.DB, id string, notFound error, apply func(*T) bool) (*T, error) {
	var item T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&item).Error; err != nil {
			return err
		}
		if !apply(&item) {
			return gorm.ErrRecordNotFound
		}
		return tx.Save(&item).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, errors.New("sqlite update error: " + err.Error())
	}
	return &item, nil
}

func gormDelete[T any](ctx context.Context, db *gorm.DB, id string) (bool, error) {
	var item T
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&item)
	if res.Error != nil {
		return false, errors.New("sqlite delete error: " + res.Error.Error())
	}
	return res.RowsAffected > 0, nil
}

type GormTasksRepository struct {
	db *gorm.DB
}

func (gr *GormTasksRepository) List(ctx context.Context, filter TaskFilter) ([]*entity.Task, error) {
	tx := gr.db.WithContext(ctx)
	if filter.WeekStart != "" {
		tx = tx.Where("week_start = ?", filter.WeekStart)
	}
	if !filter.IncludeInactive {
		tx = tx.Where("is_active = ?", true)
	}
	return gormFind[entity.Task](tx, "created_at DESC", "")
}

func (gr *GormTasksRepository) ListAll(ctx context.Context) ([]*entity.Task, error) {
	return gr.List(ctx, TaskFilter{})
}

func (gr *GormTasksRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	return gormFirst[entity.Task](gr.db.WithContext(ctx), errorvalues.ErrTaskNotFound, "id = ? AND is_active = ?", id, true)
}

func (gr *GormTasksRepository) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	created := *task
	created.ID = uuid.NewString()
	created.CreatedAt = now()
	// Select all columns so false booleans are written instead of column defaults
	if err := gr.db.WithContext(ctx).Select("*").Create(&created).Error; err != nil {
		return nil, errors.New("creating task sqlite error: " + err.Error())
	}
	return &created, nil
}

func (gr *GormTasksRepository) Update(ctx context.Context, id string, patch *entity.TaskPatch) (*entity.Task, error) {
	return gormModify(ctx, gr.db, id, errorvalues.ErrTaskNotFound, func(t *entity.Task) bool {
		t.Apply(patch)
		return true
	})
}

func (gr *GormTasksRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := gr.db.WithContext(ctx).Model(&entity.Task{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return false, errors.New("deleting task sqlite error: " + res.Error.Error())
	}
	return res.RowsAffected > 0, nil
}

type GormDailyEntriesRepository struct {
	db *gorm.DB
}

func (gr *GormDailyEntriesRepository) normalize(entries []*entity.DailyEntry) []*entity.DailyEntry {
	for i, e := range entries {
		entries[i] = e.Clone()
	}
	return entries
}

func (gr *GormDailyEntriesRepository) ListAll(ctx context.Context) ([]*entity.DailyEntry, error) {
	entries, err := gormFind[entity.DailyEntry](gr.db.WithContext(ctx), "date DESC, created_at DESC", "")
	if err != nil {
		return nil, err
	}
	return gr.normalize(entries), nil
}

func (gr *GormDailyEntriesRepository) GetByDate(ctx context.Context, date string) (*entity.DailyEntry, error) {
	entry, err := gormFirst[entity.DailyEntry](gr.db.WithContext(ctx), errorvalues.ErrDailyEntryNotFound, "date = ?", date)
	if err != nil {
		return nil, err
	}
	return entry.Clone(), nil
}

func (gr *GormDailyEntriesRepository) GetByID(ctx context.Context, id string) (*entity.DailyEntry, error) {
	entry, err := gormFirst[entity.DailyEntry](gr.db.WithContext(ctx), errorvalues.ErrDailyEntryNotFound, "id = ?", id)
	if err != nil {
		return nil, err
	}
	return entry.Clone(), nil
}

func (gr *GormDailyEntriesRepository) Create(ctx context.Context, entry *entity.DailyEntry) (*entity.DailyEntry, error) {
	created := entry.Clone()
	created.ID = uuid.NewString()
	created.CreatedAt = now()
	if err := gr.db.WithContext(ctx).Select("*").Create(created).Error; err != nil {
		return nil, errors.New("creating daily entry sqlite error: " + err.Error())
	}
	return created, nil
}

func (gr *GormDailyEntriesRepository) Update(ctx context.Context, id string, patch *entity.DailyEntryPatch) (*entity.DailyEntry, error) {
	entry, err := gormModify(ctx, gr.db, id, errorvalues.ErrDailyEntryNotFound, func(e *entity.DailyEntry) bool {
		e.Apply(patch)
		return true
	})
	if err != nil {
		return nil, err
	}
	return entry.Clone(), nil
}

func (gr *GormDailyEntriesRepository) Delete(ctx context.Context, id string) (bool, error) {
	return gormDelete[entity.DailyEntry](ctx, gr.db, id)
}

func (gr *GormDailyEntriesRepository) ListForDateRange(ctx context.Context, start, end string) ([]*entity.DailyEntry, error) {
	entries, err := gormFind[entity.DailyEntry](gr.db.WithContext(ctx), "date", "date >= ? AND date <= ?", start, end)
	if err != nil {
		return nil, err
	}
	return gr.normalize(entries), nil
}

type GormReflectionsRepository struct {
	db *gorm.DB
}

func (gr *GormReflectionsRepository) List(ctx context.Context, date string) ([]*entity.Reflection, error) {
	if date == "" {
		return gormFind[entity.Reflection](gr.db.WithContext(ctx), "created_at DESC", "")
	}
	return gormFind[entity.Reflection](gr.db.WithContext(ctx), "created_at DESC", "date = ?", date)
}

func (gr *GormReflectionsRepository) ListAll(ctx context.Context) ([]*entity.Reflection, error) {
	return gr.List(ctx, "")
}

func (gr *GormReflectionsRepository) GetByID(ctx context.Context, id string) (*entity.Reflection, error) {
	return gormFirst[entity.Reflection](gr.db.WithContext(ctx), errorvalues.ErrReflectionNotFound, "id = ?", id)
}

func (gr *GormReflectionsRepository) Create(ctx context.Context, reflection *entity.Reflection) (*entity.Reflection, error) {
	created := *reflection
	created.ID = uuid.NewString()
	created.CreatedAt = now()
	if err := gr.db.WithContext(ctx).Select("*").Create(&created).Error; err != nil {
		return nil, errors.New("creating reflection sqlite error: " + err.Error())
	}
	return &created, nil
}

func (gr *GormReflectionsRepository) Update(ctx context.Context, id string, patch *entity.ReflectionPatch) (*entity.Reflection, error) {
	return gormModify(ctx, gr.db, id, errorvalues.ErrReflectionNotFound, func(r *entity.Reflection) bool {
		r.Apply(patch)
		return true
	})
}

func (gr *GormReflectionsRepository) Delete(ctx context.Context, id string) (bool, error) {
	return gormDelete[entity.Reflection](ctx, gr.db, id)
}

type GormWeeklyReviewsRepository struct {
	db *gorm.DB
}

func (gr *GormWeeklyReviewsRepository) ListAll(ctx context.Context) ([]*entity.WeeklyReview, error) {
	return gormFind[entity.WeeklyReview](gr.db.WithContext(ctx), "created_at DESC", "")
}

func (gr *GormWeeklyReviewsRepository) GetByWeekStart(ctx context.Context, weekStart string) (*entity.WeeklyReview, error) {
	return gormFirst[entity.WeeklyReview](gr.db.WithContext(ctx), errorvalues.ErrWeeklyReviewNotFound, "week_start = ?", weekStart)
}

func (gr *GormWeeklyReviewsRepository) GetByID(ctx context.Context, id string) (*entity.WeeklyReview, error) {
	return gormFirst[entity.WeeklyReview](gr.db.WithContext(ctx), errorvalues.ErrWeeklyReviewNotFound, "id = ?", id)
}

func (gr *GormWeeklyReviewsRepository) Create(ctx context.Context, review *entity.WeeklyReview) (*entity.WeeklyReview, error) {
	created := *review
	created.ID = uuid.NewString()
	created.CreatedAt = now()
	if err := gr.db.WithContext(ctx).Select("*").Create(&created).Error; err != nil {
		return nil, errors.New("creating weekly review sqlite error: " + err.Error())
	}
	return &created, nil
}

func (gr *GormWeeklyReviewsRepository) Update(ctx context.Context, id string, patch *entity.WeeklyReviewPatch) (*entity.WeeklyReview, error) {
	return gormModify(ctx, gr.db, id, errorvalues.ErrWeeklyReviewNotFound, func(w *entity.WeeklyReview) bool {
		w.Apply(patch)
		return true
	})
}

func (gr *GormWeeklyReviewsRepository) Delete(ctx context.Context, id string) (bool, error) {
	return gormDelete[entity.WeeklyReview](ctx, gr.db, id)
}
