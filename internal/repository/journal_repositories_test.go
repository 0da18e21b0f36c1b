package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/internal/repository"
	"github.com/limbo/tenminute/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var dailyEntryColumnNames = []string{
	"id", "date", "morning_intention", "energy_level", "suggested_task_id", "ten_minute_activity",
	"activity_completed", "evening_reflection", "promise_kept", "follow_up_response", "photos", "voice_notes",
	"created_at",
}

func dailyEntryRow(rows *pgxmock.Rows, e *entity.DailyEntry) *pgxmock.Rows {
	return rows.AddRow(
		e.ID, e.Date, e.MorningIntention, e.EnergyLevel, e.SuggestedTaskID, e.TenMinuteActivity,
		e.ActivityCompleted, e.EveningReflection, e.PromiseKept, e.FollowUpResponse, e.Photos, e.VoiceNotes,
		e.CreatedAt,
	)
}

func sampleDailyEntry(date string) *entity.DailyEntry {
	return &entity.DailyEntry{
		ID:                uuid.NewString(),
		Date:              date,
		MorningIntention:  ptr("finish the draft"),
		EnergyLevel:       ptr(6),
		SuggestedTaskID:   ptr(uuid.NewString()),
		TenMinuteActivity: ptr("Write a quick outline"),
		EveningReflection: ptr("went fine"),
		PromiseKept:       ptr(entity.PromiseKeptYes),
		FollowUpResponse:  ptr("more tomorrow"),
		Photos:            []string{"data:image/png;base64,AAAA"},
		VoiceNotes:        []string{},
		CreatedAt:         time.Now(),
	}
}

func TestGetDailyEntryByDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewDailyEntriesRepoWithConn(mock)
	entry := sampleDailyEntry("2024-05-07")
	query := regexp.QuoteMeta(`FROM daily_entries WHERE date = $1 ORDER BY created_at DESC LIMIT 1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(entry.Date).
			WillReturnRows(dailyEntryRow(pgxmock.NewRows(dailyEntryColumnNames), entry))
		result, err := repo.GetByDate(ctx, entry.Date)
		assert.NoError(t, err)
		assert.Equal(t, *entry, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(entry.Date).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByDate(ctx, entry.Date)
		assert.ErrorIs(t, err, errorvalues.ErrDailyEntryNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(entry.Date).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByDate(ctx, entry.Date)
		assert.Error(t, err)
	})
}

func TestCreateDailyEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewDailyEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO daily_entries`)
	ctx := context.Background()
	t.Run("absent arrays are stored empty", func(t *testing.T) {
		entry := entity.DailyEntry{Date: "2024-05-07"}
		mock.ExpectQuery(query).
			WithArgs(pgxmock.AnyArg(), entry.Date, entry.MorningIntention, entry.EnergyLevel, entry.SuggestedTaskID,
				entry.TenMinuteActivity, false, entry.EveningReflection, entry.PromiseKept, entry.FollowUpResponse,
				[]string{}, []string{}).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		result, err := repo.Create(ctx, &entry)
		assert.NoError(t, err)
		assert.NotNil(t, result.Photos)
		assert.NotNil(t, result.VoiceNotes)
		assert.Empty(t, result.Photos)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &entity.DailyEntry{Date: "2024-05-07"})
		assert.Error(t, err)
	})
}

func TestListDailyEntriesForDateRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewDailyEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`FROM daily_entries WHERE date >= $1 AND date <= $2 ORDER BY date;`)
	entries := []*entity.DailyEntry{sampleDailyEntry("2024-05-06"), sampleDailyEntry("2024-05-08")}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(dailyEntryColumnNames)
		for _, e := range entries {
			dailyEntryRow(rows, e)
		}
		mock.ExpectQuery(query).
			WithArgs("2024-05-06", "2024-05-12").
			WillReturnRows(rows)
		result, err := repo.ListForDateRange(ctx, "2024-05-06", "2024-05-12")
		assert.NoError(t, err)
		assert.Equal(t, entries, result)
	})
	t.Run("scan error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("2024-05-06", "2024-05-12").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("only-id"))
		_, err := repo.ListForDateRange(ctx, "2024-05-06", "2024-05-12")
		assert.Error(t, err)
	})
}

func TestDeleteDailyEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewDailyEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM daily_entries WHERE id = $1;`)
	id := uuid.NewString()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		ok, err := repo.Delete(ctx, id)
		assert.NoError(t, err)
		assert.True(t, ok)
	})
	t.Run("unknown id", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		ok, err := repo.Delete(ctx, id)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUpdateDailyEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewDailyEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`promise_kept = CASE WHEN $14::boolean THEN $15::text ELSE promise_kept END`)
	entry := sampleDailyEntry("2024-05-06")
	entry.PromiseKept = nil
	entry.EveningReflection = nil
	patch := entity.DailyEntryPatch{
		EnergyLevel:       entity.NullableOf(8),
		EveningReflection: entity.Null[string](),
		PromiseKept:       entity.Null[string](),
	}
	var (
		noString *string
		noBool   *bool
	)
	ctx := context.Background()
	t.Run("clears null fields", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(entry.ID, noString,
				false, noString,
				true, patch.EnergyLevel.Value,
				false, noString,
				false, noString,
				noBool,
				true, noString,
				true, noString,
				false, noString,
				[]string(nil), []string(nil)).
			WillReturnRows(dailyEntryRow(pgxmock.NewRows(dailyEntryColumnNames), entry))
		result, err := repo.Update(ctx, entry.ID, &patch)
		assert.NoError(t, err)
		assert.Nil(t, result.PromiseKept)
		assert.Nil(t, result.EveningReflection)
	})
	t.Run("unknown id", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Update(ctx, entry.ID, &patch)
		assert.ErrorIs(t, err, errorvalues.ErrDailyEntryNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReflections(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewReflectionsRepoWithConn(mock)
	columns := []string{"id", "prompt_id", "prompt_text", "response", "follow_up_response", "date", "created_at"}
	reflection := entity.Reflection{
		ID:               uuid.NewString(),
		PromptID:         "resistance",
		PromptText:       "What are you resisting right now?",
		Response:         "starting",
		FollowUpResponse: ptr("one small step"),
		Date:             "2024-05-07",
		CreatedAt:        time.Now(),
	}
	ctx := context.Background()
	row := func() *pgxmock.Rows {
		return pgxmock.NewRows(columns).AddRow(reflection.ID, reflection.PromptID, reflection.PromptText,
			reflection.Response, reflection.FollowUpResponse, reflection.Date, reflection.CreatedAt)
	}
	t.Run("by date", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM reflections WHERE date = $1 ORDER BY created_at DESC;`)).
			WithArgs(reflection.Date).
			WillReturnRows(row())
		result, err := repo.List(ctx, reflection.Date)
		assert.NoError(t, err)
		assert.Equal(t, []*entity.Reflection{&reflection}, result)
	})
	t.Run("all", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM reflections ORDER BY created_at DESC;`)).
			WillReturnRows(row())
		result, err := repo.ListAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
	t.Run("update unknown id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE reflections SET`)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Update(ctx, uuid.NewString(), &entity.ReflectionPatch{Response: ptr("x")})
		assert.ErrorIs(t, err, errorvalues.ErrReflectionNotFound)
	})
}

func TestWeeklyReviewByWeekStart(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewWeeklyReviewsRepoWithConn(mock)
	columns := []string{"id", "week_start", "week_end", "proud_actions", "self_respect_moments", "patterns",
		"next_week_cultivate", "next_week_support", "growth_level", "promises_kept", "total_promises", "created_at"}
	review := entity.WeeklyReview{
		ID:                 uuid.NewString(),
		WeekStart:          "2024-05-06",
		WeekEnd:            "2024-05-12",
		ProudActions:       ptr("wrote daily"),
		SelfRespectMoments: ptr("said no"),
		Patterns:           ptr("mornings work"),
		NextWeekCultivate:  ptr("patience"),
		NextWeekSupport:    ptr("walks"),
		GrowthLevel:        4,
		PromisesKept:       2,
		TotalPromises:      3,
		CreatedAt:          time.Now(),
	}
	query := regexp.QuoteMeta(`FROM weekly_reviews WHERE week_start = $1 ORDER BY created_at DESC LIMIT 1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(review.WeekStart).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(review.ID, review.WeekStart, review.WeekEnd,
				review.ProudActions, review.SelfRespectMoments, review.Patterns, review.NextWeekCultivate,
				review.NextWeekSupport, review.GrowthLevel, review.PromisesKept, review.TotalPromises, review.CreatedAt))
		result, err := repo.GetByWeekStart(ctx, review.WeekStart)
		assert.NoError(t, err)
		assert.Equal(t, review, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(review.WeekStart).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByWeekStart(ctx, review.WeekStart)
		assert.ErrorIs(t, err, errorvalues.ErrWeeklyReviewNotFound)
	})
	t.Run("delete db error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM weekly_reviews WHERE id = $1;`)).
			WithArgs(review.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.Delete(ctx, review.ID)
		assert.Error(t, err)
	})
}

func TestNewPostgresStorageWithConn(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatal(err)
	}
	t.Run("ping ok", func(t *testing.T) {
		mock.ExpectPing()
		storage, err := repository.NewPostgresStorageWithConn(mock)
		assert.NoError(t, err)
		assert.NotNil(t, storage.Tasks)
		assert.NotNil(t, storage.WeeklyReviews)
	})
	t.Run("ping fails", func(t *testing.T) {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		_, err := repository.NewPostgresStorageWithConn(mock)
		assert.Error(t, err)
	})
}
