package client_test

import (
	"context"
	"testing"

	"github.com/limbo/tenminute/internal/client"
	"github.com/limbo/tenminute/internal/service"
	"github.com/limbo/tenminute/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	task, err := c.CreateTask(ctx, &service.CreateTaskRequest{Title: "Write my novel chapter", WeekStart: "2024-05-06"})
	require.NoError(t, err)
	entry, err := c.CreateDailyEntry(ctx, &service.CreateDailyEntryRequest{
		Date:              "2024-05-08",
		TenMinuteActivity: ptr("Write for 10 minutes"),
		PromiseKept:       ptr(entity.PromiseKeptYes),
		Photos:            []string{"a.png", "b.png"},
	})
	require.NoError(t, err)
	reflection, err := c.CreateReflection(ctx, &service.CreateReflectionRequest{
		PromptID:   "release",
		PromptText: "What are you ready to release or forgive?",
		Response:   "old habits",
		Date:       "2024-05-09",
	})
	require.NoError(t, err)
	review, err := c.CreateWeeklyReview(ctx, &service.CreateWeeklyReviewRequest{
		WeekStart:    "2024-05-06",
		WeekEnd:      "2024-05-12",
		ProudActions: ptr("kept going"),
	})
	require.NoError(t, err)

	items, err := c.Journal(ctx, client.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, client.KindReflection, items[0].Kind)
	assert.Equal(t, reflection.ID, items[0].ID)
	assert.Equal(t, client.KindDaily, items[1].Kind)
	assert.Equal(t, "Daily Journal - May 08, 2024", items[1].Title)
	assert.Equal(t, "Activity: Write for 10 minutes • Promise kept: yes • 2 photo(s) attached", items[1].Summary)
	assert.Equal(t, entry.ID, items[1].Payload.(*entity.DailyEntry).ID)
	// task and review share a date and keep their merge order
	assert.Equal(t, client.KindTask, items[2].Kind)
	assert.Equal(t, "Goal: Write my novel chapter", items[2].Title)
	assert.Equal(t, "In progress • Created for week of May 06", items[2].Summary)
	assert.Equal(t, client.KindReview, items[3].Kind)
	assert.Equal(t, "Weekly Review - Week of May 06", items[3].Title)

	onlyReviews, err := c.Journal(ctx, client.JournalFilter{Kind: client.KindReview})
	require.NoError(t, err)
	require.Len(t, onlyReviews, 1)
	assert.Equal(t, review.ID, onlyReviews[0].ID)

	search, err := c.Journal(ctx, client.JournalFilter{Search: "OLD HABITS"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, client.KindReflection, search[0].Kind)

	for _, item := range items {
		require.NoError(t, c.DeleteJournalItem(ctx, item), item.Kind)
	}
	items, err = c.Journal(ctx, client.JournalFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)

	tasks, err := c.ListTasks(ctx, "2024-05-06")
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NotEqual(t, "", task.ID)
}

func TestDeleteJournalItemUnknownKind(t *testing.T) {
	c := client.New("http://127.0.0.1:0")
	err := c.DeleteJournalItem(context.Background(), client.JournalItem{Kind: "habit", ID: "x"})
	assert.ErrorIs(t, err, client.ErrUnknownKind)
	_, err = c.Journal(context.Background(), client.JournalFilter{Kind: "habit"})
	assert.ErrorIs(t, err, client.ErrUnknownKind)
}
