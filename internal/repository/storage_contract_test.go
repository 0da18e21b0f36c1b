package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/internal/repository"
	"github.com/limbo/tenminute/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type storageFactory func(t *testing.T) *repository.Storage

func TestMemoryStorageContract(t *testing.T) {
	runStorageContract(t, func(t *testing.T) *repository.Storage {
		return repository.NewMemoryStorage()
	})
}

func TestSQLiteStorageContract(t *testing.T) {
	runStorageContract(t, func(t *testing.T) *repository.Storage {
		storage, err := repository.NewSQLiteStorage(filepath.Join(t.TempDir(), "tenmin.db"))
		require.NoError(t, err)
		return storage
	})
}

func TestPostgresStorageContract(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	cfg := setupTestDB(t)
	runStorageContract(t, func(t *testing.T) *repository.Storage {
		storage, err := repository.NewPostgresStorage(cfg)
		require.NoError(t, err)
		truncateTables(t, cfg.ConnString())
		return storage
	})
}

func TestOpen(t *testing.T) {
	storage, err := repository.Open(repository.BackendMemory, nil, "")
	require.NoError(t, err)
	assert.NotNil(t, storage.Tasks)

	storage, err = repository.Open(repository.BackendSQLite, nil, filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)
	assert.NotNil(t, storage.WeeklyReviews)

	_, err = repository.Open("mongo", nil, "")
	assert.ErrorContains(t, err, "unknown storage backend")
}

func runStorageContract(t *testing.T, newStorage storageFactory) {
	ctx := context.Background()

	t.Run("task create defaults and unique ids", func(t *testing.T) {
		s := newStorage(t)
		seen := make(map[string]struct{})
		for i := range 5 {
			created, err := s.Tasks.Create(ctx, &entity.Task{
				Title:       fmt.Sprintf("task_%d", i),
				IsActive:    true,
				IsCompleted: i%2 == 0,
				WeekStart:   "2024-05-06",
			})
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.False(t, created.CreatedAt.IsZero())
			assert.True(t, created.IsActive)
			assert.Equal(t, i%2 == 0, created.IsCompleted)
			assert.Nil(t, created.Description)
			_, dup := seen[created.ID]
			assert.False(t, dup, "id %s reused", created.ID)
			seen[created.ID] = struct{}{}
		}
	})

	t.Run("task soft delete twice", func(t *testing.T) {
		s := newStorage(t)
		task, err := s.Tasks.Create(ctx, &entity.Task{Title: "t", IsActive: true, WeekStart: "2024-05-06"})
		require.NoError(t, err)

		ok, err := s.Tasks.Delete(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		active, err := s.Tasks.List(ctx, repository.TaskFilter{WeekStart: "2024-05-06"})
		require.NoError(t, err)
		assert.Empty(t, active)
		_, err = s.Tasks.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)

		all, err := s.Tasks.List(ctx, repository.TaskFilter{IncludeInactive: true})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.False(t, all[0].IsActive)

		ok, err = s.Tasks.Delete(ctx, task.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("tasks listed newest first", func(t *testing.T) {
		s := newStorage(t)
		var ids []string
		for i := range 3 {
			task, err := s.Tasks.Create(ctx, &entity.Task{Title: fmt.Sprint(i), IsActive: true, WeekStart: "2024-05-06"})
			require.NoError(t, err)
			ids = append(ids, task.ID)
			time.Sleep(2 * time.Millisecond)
		}
		all, err := s.Tasks.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, ids[2], all[0].ID)
		assert.Equal(t, ids[0], all[2].ID)
	})

	t.Run("daily range is inclusive", func(t *testing.T) {
		s := newStorage(t)
		dates := []string{"2024-04-30", "2024-05-06", "2024-05-09", "2024-05-12", "2024-05-13"}
		for _, d := range dates {
			_, err := s.DailyEntries.Create(ctx, &entity.DailyEntry{Date: d})
			require.NoError(t, err)
		}
		cases := []struct {
			start, end string
			want       []string
		}{
			{"2024-05-06", "2024-05-12", []string{"2024-05-06", "2024-05-09", "2024-05-12"}},
			{"2024-05-09", "2024-05-09", []string{"2024-05-09"}},
			{"2024-05-12", "2024-05-06", []string{}},
			{"2025-01-01", "2025-01-07", []string{}},
		}
		for _, c := range cases {
			result, err := s.DailyEntries.ListForDateRange(ctx, c.start, c.end)
			require.NoError(t, err)
			got := make([]string, 0, len(result))
			for _, e := range result {
				got = append(got, e.Date)
			}
			assert.ElementsMatch(t, c.want, got, "range %s..%s", c.start, c.end)
		}
	})

	t.Run("daily arrays never nil", func(t *testing.T) {
		s := newStorage(t)
		created, err := s.DailyEntries.Create(ctx, &entity.DailyEntry{Date: "2024-05-07"})
		require.NoError(t, err)
		assert.NotNil(t, created.Photos)
		assert.NotNil(t, created.VoiceNotes)
		fetched, err := s.DailyEntries.GetByDate(ctx, "2024-05-07")
		require.NoError(t, err)
		assert.Equal(t, []string{}, fetched.Photos)
		assert.Equal(t, []string{}, fetched.VoiceNotes)
	})

	t.Run("daily partial update keeps other fields", func(t *testing.T) {
		s := newStorage(t)
		created, err := s.DailyEntries.Create(ctx, &entity.DailyEntry{
			Date:              "2024-05-07",
			MorningIntention:  ptr("read"),
			EnergyLevel:       ptr(4),
			ActivityCompleted: true,
			Photos:            []string{"p1", "p2"},
		})
		require.NoError(t, err)
		updated, err := s.DailyEntries.Update(ctx, created.ID, &entity.DailyEntryPatch{
			PromiseKept: entity.NullableOf(entity.PromiseKeptYes),
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
		assert.Equal(t, created.Date, updated.Date)
		assert.Equal(t, created.MorningIntention, updated.MorningIntention)
		assert.Equal(t, created.EnergyLevel, updated.EnergyLevel)
		assert.Equal(t, created.ActivityCompleted, updated.ActivityCompleted)
		assert.Equal(t, created.Photos, updated.Photos)
		assert.Equal(t, ptr(entity.PromiseKeptYes), updated.PromiseKept)
	})

	t.Run("null clears nullable fields", func(t *testing.T) {
		s := newStorage(t)
		entry, err := s.DailyEntries.Create(ctx, &entity.DailyEntry{
			Date:              "2024-05-06",
			PromiseKept:       ptr(entity.PromiseKeptYes),
			EveningReflection: ptr("x"),
			EnergyLevel:       ptr(7),
		})
		require.NoError(t, err)
		updated, err := s.DailyEntries.Update(ctx, entry.ID, &entity.DailyEntryPatch{
			PromiseKept:       entity.Null[string](),
			EveningReflection: entity.Null[string](),
		})
		require.NoError(t, err)
		assert.Nil(t, updated.PromiseKept)
		assert.Nil(t, updated.EveningReflection)
		assert.Equal(t, ptr(7), updated.EnergyLevel)
		got, err := s.DailyEntries.GetByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Nil(t, got.PromiseKept)
		assert.Nil(t, got.EveningReflection)

		task, err := s.Tasks.Create(ctx, &entity.Task{Title: "t", Description: ptr("d"), IsActive: true, WeekStart: "2024-05-06"})
		require.NoError(t, err)
		clearedTask, err := s.Tasks.Update(ctx, task.ID, &entity.TaskPatch{Description: entity.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, clearedTask.Description)

		reflection, err := s.Reflections.Create(ctx, &entity.Reflection{
			PromptID: "release", PromptText: "q", Response: "r", FollowUpResponse: ptr("f"), Date: "2024-05-06",
		})
		require.NoError(t, err)
		clearedReflection, err := s.Reflections.Update(ctx, reflection.ID, &entity.ReflectionPatch{FollowUpResponse: entity.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, clearedReflection.FollowUpResponse)
		assert.Equal(t, "r", clearedReflection.Response)

		review, err := s.WeeklyReviews.Create(ctx, &entity.WeeklyReview{
			WeekStart: "2024-05-06", WeekEnd: "2024-05-12", Patterns: ptr("p"), ProudActions: ptr("a"), GrowthLevel: 1,
		})
		require.NoError(t, err)
		clearedReview, err := s.WeeklyReviews.Update(ctx, review.ID, &entity.WeeklyReviewPatch{Patterns: entity.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, clearedReview.Patterns)
		assert.Equal(t, ptr("a"), clearedReview.ProudActions)
	})

	t.Run("latest entry wins natural key", func(t *testing.T) {
		s := newStorage(t)
		_, err := s.DailyEntries.Create(ctx, &entity.DailyEntry{Date: "2024-05-07", MorningIntention: ptr("first")})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
		second, err := s.DailyEntries.Create(ctx, &entity.DailyEntry{Date: "2024-05-07", MorningIntention: ptr("second")})
		require.NoError(t, err)
		got, err := s.DailyEntries.GetByDate(ctx, "2024-05-07")
		require.NoError(t, err)
		assert.Equal(t, second.ID, got.ID)

		_, err = s.DailyEntries.GetByDate(ctx, "2024-05-08")
		assert.ErrorIs(t, err, errorvalues.ErrDailyEntryNotFound)
	})

	t.Run("daily listed by date desc", func(t *testing.T) {
		s := newStorage(t)
		for _, d := range []string{"2024-05-02", "2024-05-09", "2024-05-05"} {
			_, err := s.DailyEntries.Create(ctx, &entity.DailyEntry{Date: d})
			require.NoError(t, err)
		}
		all, err := s.DailyEntries.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "2024-05-09", all[0].Date)
		assert.Equal(t, "2024-05-05", all[1].Date)
		assert.Equal(t, "2024-05-02", all[2].Date)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := newStorage(t)
		id := "00000000-0000-0000-0000-000000000000"
		_, err := s.Tasks.Update(ctx, id, &entity.TaskPatch{Title: ptr("x")})
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
		_, err = s.DailyEntries.Update(ctx, id, &entity.DailyEntryPatch{Date: ptr("2024-05-07")})
		assert.ErrorIs(t, err, errorvalues.ErrDailyEntryNotFound)
		_, err = s.Reflections.Update(ctx, id, &entity.ReflectionPatch{Response: ptr("x")})
		assert.ErrorIs(t, err, errorvalues.ErrReflectionNotFound)
		_, err = s.WeeklyReviews.Update(ctx, id, &entity.WeeklyReviewPatch{GrowthLevel: ptr(2)})
		assert.ErrorIs(t, err, errorvalues.ErrWeeklyReviewNotFound)

		for _, del := range []func(context.Context, string) (bool, error){
			s.Tasks.Delete, s.DailyEntries.Delete, s.Reflections.Delete, s.WeeklyReviews.Delete,
		} {
			ok, err := del(ctx, id)
			assert.NoError(t, err)
			assert.False(t, ok)
		}
	})

	t.Run("reflections by date", func(t *testing.T) {
		s := newStorage(t)
		for _, d := range []string{"2024-05-07", "2024-05-07", "2024-05-08"} {
			_, err := s.Reflections.Create(ctx, &entity.Reflection{
				PromptID: "release", PromptText: "What can you let go of?", Response: "old plans", Date: d,
			})
			require.NoError(t, err)
		}
		byDate, err := s.Reflections.List(ctx, "2024-05-07")
		require.NoError(t, err)
		assert.Len(t, byDate, 2)
		all, err := s.Reflections.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		ok, err := s.Reflections.Delete(ctx, all[0].ID)
		require.NoError(t, err)
		assert.True(t, ok)
		_, err = s.Reflections.GetByID(ctx, all[0].ID)
		assert.ErrorIs(t, err, errorvalues.ErrReflectionNotFound)
	})

	t.Run("weekly review roundtrip", func(t *testing.T) {
		s := newStorage(t)
		created, err := s.WeeklyReviews.Create(ctx, &entity.WeeklyReview{
			WeekStart:    "2024-05-06",
			WeekEnd:      "2024-05-12",
			ProudActions: ptr("showed up"),
			GrowthLevel:  1,
		})
		require.NoError(t, err)
		updated, err := s.WeeklyReviews.Update(ctx, created.ID, &entity.WeeklyReviewPatch{
			GrowthLevel:   ptr(4),
			PromisesKept:  ptr(2),
			TotalPromises: ptr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, 4, updated.GrowthLevel)
		assert.Equal(t, created.ProudActions, updated.ProudActions)
		assert.Equal(t, created.WeekEnd, updated.WeekEnd)

		got, err := s.WeeklyReviews.GetByWeekStart(ctx, "2024-05-06")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, 3, got.TotalPromises)
	})

	t.Run("concurrent updates", func(t *testing.T) {
		s := newStorage(t)
		task, err := s.Tasks.Create(ctx, &entity.Task{Title: "t", IsActive: true, WeekStart: "2024-05-06"})
		require.NoError(t, err)
		var wg sync.WaitGroup
		for i := range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Tasks.Update(ctx, task.ID, &entity.TaskPatch{Title: ptr(fmt.Sprint(i))})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		got, err := s.Tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "t", got.Title)
	})
}

func setupTestDB(t *testing.T) *repository.PGCfg {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("tenmin"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	host, err := container.Host(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	port, err := container.MappedPort(context.Background(), "5432/tcp")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &repository.PGCfg{
		Address:  host + ":" + port.Port(),
		Username: "test_user",
		Password: "test_password",
		DB:       "tenmin",
		SSLMode:  "disable",
	}
	err = repository.Migrate(cfg, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func truncateTables(t *testing.T, connStr string) {
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	_, err = conn.Exec(`TRUNCATE tasks, daily_entries, reflections, weekly_reviews;`)
	if err != nil {
		t.Fatal(err)
	}
}
