package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/internal/repository"
	"github.com/limbo/tenminute/internal/repository/mocks"
	"github.com/limbo/tenminute/internal/service"
	"github.com/limbo/tenminute/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDailyEntryValidation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	dailyRepo := mocks.NewMockDailyEntriesRepositoryI(ctrl)
	serv := service.NewDailyEntriesService(dailyRepo)
	testCases := []struct {
		Desc  string
		Req   *service.CreateDailyEntryRequest
		Valid bool
	}{
		{Desc: "minimal", Req: &service.CreateDailyEntryRequest{Date: "2024-05-07"}, Valid: true},
		{Desc: "missing date", Req: &service.CreateDailyEntryRequest{MorningIntention: ptr("x")}},
		{Desc: "not a date", Req: &service.CreateDailyEntryRequest{Date: "yesterday"}},
		{Desc: "impossible date", Req: &service.CreateDailyEntryRequest{Date: "2024-02-30"}},
		{Desc: "energy too high", Req: &service.CreateDailyEntryRequest{Date: "2024-05-07", EnergyLevel: ptr(11)}},
		{Desc: "energy zero", Req: &service.CreateDailyEntryRequest{Date: "2024-05-07", EnergyLevel: ptr(0)}},
		{Desc: "energy in range", Req: &service.CreateDailyEntryRequest{Date: "2024-05-07", EnergyLevel: ptr(10)}, Valid: true},
		{Desc: "unknown promise value", Req: &service.CreateDailyEntryRequest{Date: "2024-05-07", PromiseKept: ptr("maybe")}},
		{Desc: "partial promise", Req: &service.CreateDailyEntryRequest{Date: "2024-05-07", PromiseKept: ptr("partial")}, Valid: true},
	}
	for _, tc := range testCases {
		if tc.Valid {
			dailyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, e *entity.DailyEntry) (*entity.DailyEntry, error) {
					c := e.Clone()
					c.ID = uuid.NewString()
					return c, nil
				})
		}
		_, err := serv.Create(context.Background(), tc.Req)
		if tc.Valid {
			assert.NoError(t, err, tc.Desc)
		} else {
			assert.ErrorIs(t, err, errorvalues.ErrInvalidInput, tc.Desc)
		}
	}
}

func TestDailyEntriesService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	dailyRepo := mocks.NewMockDailyEntriesRepositoryI(ctrl)
	serv := service.NewDailyEntriesService(dailyRepo)
	ctx := context.Background()
	t.Run("get by date not found", func(t *testing.T) {
		dailyRepo.EXPECT().GetByDate(gomock.Any(), "2024-05-07").Return(nil, errorvalues.ErrDailyEntryNotFound)
		_, err := serv.GetByDate(ctx, "2024-05-07")
		assert.ErrorIs(t, err, errorvalues.ErrDailyEntryNotFound)
	})
	t.Run("get by malformed date", func(t *testing.T) {
		_, err := serv.GetByDate(ctx, "05/07/2024")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
	t.Run("week range", func(t *testing.T) {
		dailyRepo.EXPECT().ListForDateRange(gomock.Any(), "2024-05-06", "2024-05-12").
			Return([]*entity.DailyEntry{{Date: "2024-05-06"}}, nil)
		entries, err := serv.ListForWeek(ctx, "2024-05-06", "2024-05-12")
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})
	t.Run("week range bad bound", func(t *testing.T) {
		_, err := serv.ListForWeek(ctx, "2024-05-06", "next sunday")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
	t.Run("delete unknown", func(t *testing.T) {
		dailyRepo.EXPECT().Delete(gomock.Any(), "nope").Return(false, nil)
		assert.ErrorIs(t, serv.Delete(ctx, "nope"), errorvalues.ErrDailyEntryNotFound)
	})
	t.Run("update db error", func(t *testing.T) {
		dailyRepo.EXPECT().Update(gomock.Any(), "id", gomock.Any()).Return(nil, errors.New("db error"))
		_, err := serv.Update(ctx, "id", &service.UpdateDailyEntryRequest{ActivityCompleted: ptr(true)})
		assert.Error(t, err)
		assert.False(t, errorvalues.IsNotFound(err))
	})
}

func TestUnknownIDsAcrossServices(t *testing.T) {
	storage := repository.NewMemoryStorage()
	ctx := context.Background()
	id := uuid.NewString()

	_, err := service.NewTasksService(storage.Tasks).Update(ctx, id, &service.UpdateTaskRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	_, err = service.NewDailyEntriesService(storage.DailyEntries).Update(ctx, id, &service.UpdateDailyEntryRequest{})
	assert.ErrorIs(t, err, errorvalues.ErrDailyEntryNotFound)
	_, err = service.NewReflectionsService(storage.Reflections).Update(ctx, id, &service.UpdateReflectionRequest{})
	assert.ErrorIs(t, err, errorvalues.ErrReflectionNotFound)
	_, err = service.NewWeeklyReviewsService(storage.WeeklyReviews).Update(ctx, id, &service.UpdateWeeklyReviewRequest{})
	assert.ErrorIs(t, err, errorvalues.ErrWeeklyReviewNotFound)
}

func TestDailyEntryPartialUpdateRoundTrip(t *testing.T) {
	storage := repository.NewMemoryStorage()
	serv := service.NewDailyEntriesService(storage.DailyEntries)
	ctx := context.Background()
	created, err := serv.Create(ctx, &service.CreateDailyEntryRequest{
		Date:              "2024-05-07",
		MorningIntention:  ptr("ship it"),
		EnergyLevel:       ptr(7),
		TenMinuteActivity: ptr("Write for 10 minutes"),
		Photos:            []string{"a.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, created.VoiceNotes)
	assert.False(t, created.ActivityCompleted)

	updated, err := serv.Update(ctx, created.ID, &service.UpdateDailyEntryRequest{EveningReflection: entity.NullableOf("done")})
	require.NoError(t, err)
	expected := created.Clone()
	expected.EveningReflection = ptr("done")
	assert.Equal(t, expected, updated)

	got, err := serv.GetByDate(ctx, "2024-05-07")
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	cleared, err := serv.Update(ctx, created.ID, &service.UpdateDailyEntryRequest{
		EnergyLevel:       entity.Null[int](),
		TenMinuteActivity: entity.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.EnergyLevel)
	assert.Nil(t, cleared.TenMinuteActivity)
	assert.Equal(t, ptr("done"), cleared.EveningReflection)
	assert.Equal(t, ptr("ship it"), cleared.MorningIntention)
}

func TestUpdateDailyEntryNullableValidation(t *testing.T) {
	storage := repository.NewMemoryStorage()
	serv := service.NewDailyEntriesService(storage.DailyEntries)
	ctx := context.Background()
	created, err := serv.Create(ctx, &service.CreateDailyEntryRequest{Date: "2024-05-07"})
	require.NoError(t, err)

	testCases := []struct {
		Desc  string
		Req   *service.UpdateDailyEntryRequest
		Valid bool
	}{
		{Desc: "energy in range", Req: &service.UpdateDailyEntryRequest{EnergyLevel: entity.NullableOf(10)}, Valid: true},
		{Desc: "energy null", Req: &service.UpdateDailyEntryRequest{EnergyLevel: entity.Null[int]()}, Valid: true},
		{Desc: "energy too high", Req: &service.UpdateDailyEntryRequest{EnergyLevel: entity.NullableOf(11)}},
		{Desc: "promise kept null", Req: &service.UpdateDailyEntryRequest{PromiseKept: entity.Null[string]()}, Valid: true},
		{Desc: "promise kept unknown", Req: &service.UpdateDailyEntryRequest{PromiseKept: entity.NullableOf("maybe")}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := serv.Update(ctx, created.ID, tc.Req)
			if tc.Valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
			}
		})
	}
}

func TestReflectionsService(t *testing.T) {
	storage := repository.NewMemoryStorage()
	serv := service.NewReflectionsService(storage.Reflections)
	ctx := context.Background()

	prompts := serv.Prompts()
	require.Len(t, prompts, 4)
	assert.Equal(t, "self-promise", prompts[0].ID)
	assert.NotEmpty(t, prompts[0].Yes)
	assert.NotEmpty(t, prompts[0].No)
	for _, p := range prompts[1:] {
		assert.NotEmpty(t, p.FollowUp, p.ID)
	}
	prompts[0].ID = "changed"
	assert.Equal(t, "self-promise", serv.Prompts()[0].ID)

	_, err := serv.Create(ctx, &service.CreateReflectionRequest{PromptID: "release", Date: "2024-05-07"})
	assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)

	created, err := serv.Create(ctx, &service.CreateReflectionRequest{
		PromptID:   "release",
		PromptText: "What are you ready to release or forgive?",
		Response:   "perfectionism",
		Date:       "2024-05-07",
	})
	require.NoError(t, err)
	list, err := serv.List(ctx, "2024-05-07")
	require.NoError(t, err)
	assert.Equal(t, []*entity.Reflection{created}, list)
	_, err = serv.List(ctx, "7 May")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)

	require.NoError(t, serv.Delete(ctx, created.ID))
	assert.ErrorIs(t, serv.Delete(ctx, created.ID), errorvalues.ErrReflectionNotFound)
}

func TestWeeklyReviewsService(t *testing.T) {
	storage := repository.NewMemoryStorage()
	serv := service.NewWeeklyReviewsService(storage.WeeklyReviews)
	ctx := context.Background()

	created, err := serv.Create(ctx, &service.CreateWeeklyReviewRequest{WeekStart: "2024-05-06", WeekEnd: "2024-05-12"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.GrowthLevel)
	assert.Equal(t, 0, created.PromisesKept)
	assert.Equal(t, 0, created.TotalPromises)

	_, err = serv.Create(ctx, &service.CreateWeeklyReviewRequest{WeekStart: "2024-05-06", WeekEnd: "2024-05-12", GrowthLevel: ptr(6)})
	assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	_, err = serv.Update(ctx, created.ID, &service.UpdateWeeklyReviewRequest{PromisesKept: ptr(-1)})
	assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)

	updated, err := serv.Update(ctx, created.ID, &service.UpdateWeeklyReviewRequest{Patterns: entity.NullableOf("mornings")})
	require.NoError(t, err)
	assert.Equal(t, created.WeekEnd, updated.WeekEnd)
	assert.Equal(t, ptr("mornings"), updated.Patterns)

	got, err := serv.GetByWeekStart(ctx, "2024-05-06")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	_, err = serv.GetByWeekStart(ctx, "2024-05-13")
	assert.ErrorIs(t, err, errorvalues.ErrWeeklyReviewNotFound)
}
