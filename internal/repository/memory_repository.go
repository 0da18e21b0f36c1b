package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/pkg/entity"
)

// memTable is a map of records guarded by a RWMutex. Records never leave the
// table without being copied, so callers cannot mutate stored state.
type memTable[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	// insertion order, used to break createdAt ties
	order []string
	clone func(*T) *T
}

func newMemTable[T any](clone func(*T) *T) *memTable[T] {
	return &memTable[T]{
		items: make(map[string]*T),
		clone: clone,
	}
}

func (t *memTable[T]) insert(item *T, setMeta func(*T, string, time.Time)) *T {
	id := uuid.NewString()
	stored := t.clone(item)
	setMeta(stored, id, now())
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items[id] = stored
	t.order = append(t.order, id)
	return t.clone(stored)
}

// find returns copies of matching records, most recently inserted first.
func (t *memTable[T]) find(keep func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make([]*T, 0)
	for i := len(t.order) - 1; i >= 0; i-- {
		item := t.items[t.order[i]]
		if keep == nil || keep(item) {
			result = append(result, t.clone(item))
		}
	}
	return result
}

func (t *memTable[T]) get(id string, keep func(*T) bool) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	item, ok := t.items[id]
	if !ok || (keep != nil && !keep(item)) {
		return nil, false
	}
	return t.clone(item), true
}

// modify runs fn on a copy of the stored record under the write lock. fn
// reports whether the record qualifies; only then is the copy stored.
func (t *memTable[T]) modify(id string, fn func(*T) bool) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	item, ok := t.items[id]
	if !ok {
		return nil, false
	}
	updated := t.clone(item)
	if !fn(updated) {
		return nil, false
	}
	t.items[id] = updated
	return t.clone(updated), true
}

func (t *memTable[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[id]; !ok {
		return false
	}
	delete(t.items, id)
	t.order = slices.DeleteFunc(t.order, func(o string) bool { return o == id })
	return true
}

func newestFirst[T any](items []*T, createdAt func(*T) time.Time) []*T {
	slices.SortStableFunc(items, func(a, b *T) int {
		return createdAt(b).Compare(createdAt(a))
	})
	return items
}

func latest[T any](items []*T, createdAt func(*T) time.Time) (*T, bool) {
	if len(items) == 0 {
		return nil, false
	}
	return newestFirst(items, createdAt)[0], true
}

// Tasks

type MemoryTasksRepository struct {
	table *memTable[entity.Task]
}

func NewMemoryTasksRepo() *MemoryTasksRepository {
	return &MemoryTasksRepository{
		table: newMemTable(func(t *entity.Task) *entity.Task {
			c := *t
			return &c
		}),
	}
}

func taskCreatedAt(t *entity.Task) time.Time { return t.CreatedAt }

func taskActive(t *entity.Task) bool { return t.IsActive }

func (mr *MemoryTasksRepository) List(_ context.Context, filter TaskFilter) ([]*entity.Task, error) {
	tasks := mr.table.find(func(t *entity.Task) bool {
		if !filter.IncludeInactive && !t.IsActive {
			return false
		}
		return filter.WeekStart == "" || t.WeekStart == filter.WeekStart
	})
	return newestFirst(tasks, taskCreatedAt), nil
}

func (mr *MemoryTasksRepository) ListAll(ctx context.Context) ([]*entity.Task, error) {
	return mr.List(ctx, TaskFilter{})
}

func (mr *MemoryTasksRepository) GetByID(_ context.Context, id string) (*entity.Task, error) {
	task, ok := mr.table.get(id, taskActive)
	if !ok {
		return nil, errorvalues.ErrTaskNotFound
	}
	return task, nil
}

func (mr *MemoryTasksRepository) Create(_ context.Context, task *entity.Task) (*entity.Task, error) {
	return mr.table.insert(task, func(t *entity.Task, id string, at time.Time) {
		t.ID, t.CreatedAt = id, at
	}), nil
}

func (mr *MemoryTasksRepository) Update(_ context.Context, id string, patch *entity.TaskPatch) (*entity.Task, error) {
	task, ok := mr.table.modify(id, func(t *entity.Task) bool {
		t.Apply(patch)
		return true
	})
	if !ok {
		return nil, errorvalues.ErrTaskNotFound
	}
	return task, nil
}

func (mr *MemoryTasksRepository) Delete(_ context.Context, id string) (bool, error) {
	_, ok := mr.table.modify(id, func(t *entity.Task) bool {
		if !t.IsActive {
			return false
		}
		t.IsActive = false
		return true
	})
	return ok, nil
}

// Daily entries

type MemoryDailyEntriesRepository struct {
	table *memTable[entity.DailyEntry]
}

func NewMemoryDailyEntriesRepo() *MemoryDailyEntriesRepository {
	return &MemoryDailyEntriesRepository{
		table: newMemTable((*entity.DailyEntry).Clone),
	}
}

func dailyEntryCreatedAt(e *entity.DailyEntry) time.Time { return e.CreatedAt }

func (mr *MemoryDailyEntriesRepository) ListAll(_ context.Context) ([]*entity.DailyEntry, error) {
	entries := newestFirst(mr.table.find(nil), dailyEntryCreatedAt)
	slices.SortStableFunc(entries, func(a, b *entity.DailyEntry) int {
		switch {
		case a.Date > b.Date:
			return -1
		case a.Date < b.Date:
			return 1
		}
		return 0
	})
	return entries, nil
}

func (mr *MemoryDailyEntriesRepository) GetByDate(_ context.Context, date string) (*entity.DailyEntry, error) {
	entry, ok := latest(mr.table.find(func(e *entity.DailyEntry) bool {
		return e.Date == date
	}), dailyEntryCreatedAt)
	if !ok {
		return nil, errorvalues.ErrDailyEntryNotFound
	}
	return entry, nil
}

func (mr *MemoryDailyEntriesRepository) GetByID(_ context.Context, id string) (*entity.DailyEntry, error) {
	entry, ok := mr.table.get(id, nil)
	if !ok {
		return nil, errorvalues.ErrDailyEntryNotFound
	}
	return entry, nil
}

func (mr *MemoryDailyEntriesRepository) Create(_ context.Context, entry *entity.DailyEntry) (*entity.DailyEntry, error) {
	return mr.table.insert(entry, func(e *entity.DailyEntry, id string, at time.Time) {
		e.ID, e.CreatedAt = id, at
	}), nil
}

func (mr *MemoryDailyEntriesRepository) Update(_ context.Context, id string, patch *entity.DailyEntryPatch) (*entity.DailyEntry, error) {
	entry, ok := mr.table.modify(id, func(e *entity.DailyEntry) bool {
		e.Apply(patch)
		return true
	})
	if !ok {
		return nil, errorvalues.ErrDailyEntryNotFound
	}
	return entry, nil
}

func (mr *MemoryDailyEntriesRepository) Delete(_ context.Context, id string) (bool, error) {
	return mr.table.remove(id), nil
}

func (mr *MemoryDailyEntriesRepository) ListForDateRange(_ context.Context, start, end string) ([]*entity.DailyEntry, error) {
	entries := mr.table.find(func(e *entity.DailyEntry) bool {
		return e.Date >= start && e.Date <= end
	})
	slices.SortStableFunc(entries, func(a, b *entity.DailyEntry) int {
		return strings.Compare(a.Date, b.Date)
	})
	return entries, nil
}

// Reflections

type MemoryReflectionsRepository struct {
	table *memTable[entity.Reflection]
}

func NewMemoryReflectionsRepo() *MemoryReflectionsRepository {
	return &MemoryReflectionsRepository{
		table: newMemTable(func(r *entity.Reflection) *entity.Reflection {
			c := *r
			return &c
		}),
	}
}

func reflectionCreatedAt(r *entity.Reflection) time.Time { return r.CreatedAt }

func (mr *MemoryReflectionsRepository) List(_ context.Context, date string) ([]*entity.Reflection, error) {
	reflections := mr.table.find(func(r *entity.Reflection) bool {
		return date == "" || r.Date == date
	})
	return newestFirst(reflections, reflectionCreatedAt), nil
}

func (mr *MemoryReflectionsRepository) ListAll(ctx context.Context) ([]*entity.Reflection, error) {
	return mr.List(ctx, "")
}

func (mr *MemoryReflectionsRepository) GetByID(_ context.Context, id string) (*entity.Reflection, error) {
	reflection, ok := mr.table.get(id, nil)
	if !ok {
		return nil, errorvalues.ErrReflectionNotFound
	}
	return reflection, nil
}

func (mr *MemoryReflectionsRepository) Create(_ context.Context, reflection *entity.Reflection) (*entity.Reflection, error) {
	return mr.table.insert(reflection, func(r *entity.Reflection, id string, at time.Time) {
		r.ID, r.CreatedAt = id, at
	}), nil
}

func (mr *MemoryReflectionsRepository) Update(_ context.Context, id string, patch *entity.ReflectionPatch) (*entity.Reflection, error) {
	reflection, ok := mr.table.modify(id, func(r *entity.Reflection) bool {
		r.Apply(patch)
		return true
	})
	if !ok {
		return nil, errorvalues.ErrReflectionNotFound
	}
	return reflection, nil
}

func (mr *MemoryReflectionsRepository) Delete(_ context.Context, id string) (bool, error) {
	return mr.table.remove(id), nil
}

// Weekly reviews

type MemoryWeeklyReviewsRepository struct {
	table *memTable[entity.WeeklyReview]
}

func NewMemoryWeeklyReviewsRepo() *MemoryWeeklyReviewsRepository {
	return &MemoryWeeklyReviewsRepository{
		table: newMemTable(func(w *entity.WeeklyReview) *entity.WeeklyReview {
			c := *w
			return &c
		}),
	}
}

func weeklyReviewCreatedAt(w *entity.WeeklyReview) time.Time { return w.CreatedAt }

func (mr *MemoryWeeklyReviewsRepository) ListAll(_ context.Context) ([]*entity.WeeklyReview, error) {
	return newestFirst(mr.table.find(nil), weeklyReviewCreatedAt), nil
}

func (mr *MemoryWeeklyReviewsRepository) GetByWeekStart(_ context.Context, weekStart string) (*entity.WeeklyReview, error) {
	review, ok := latest(mr.table.find(func(w *entity.WeeklyReview) bool {
		return w.WeekStart == weekStart
	}), weeklyReviewCreatedAt)
	if !ok {
		return nil, errorvalues.ErrWeeklyReviewNotFound
	}
	return review, nil
}

func (mr *MemoryWeeklyReviewsRepository) GetByID(_ context.Context, id string) (*entity.WeeklyReview, error) {
	review, ok := mr.table.get(id, nil)
	if !ok {
		return nil, errorvalues.ErrWeeklyReviewNotFound
	}
	return review, nil
}

func (mr *MemoryWeeklyReviewsRepository) Create(_ context.Context, review *entity.WeeklyReview) (*entity.WeeklyReview, error) {
	return mr.table.insert(review, func(w *entity.WeeklyReview, id string, at time.Time) {
		w.ID, w.CreatedAt = id, at
	}), nil
}

func (mr *MemoryWeeklyReviewsRepository) Update(_ context.Context, id string, patch *entity.WeeklyReviewPatch) (*entity.WeeklyReview, error) {
	review, ok := mr.table.modify(id, func(w *entity.WeeklyReview) bool {
		w.Apply(patch)
		return true
	})
	if !ok {
		return nil, errorvalues.ErrWeeklyReviewNotFound
	}
	return review, nil
}

func (mr *MemoryWeeklyReviewsRepository) Delete(_ context.Context, id string) (bool, error) {
	return mr.table.remove(id), nil
}
