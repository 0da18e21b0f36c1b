package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/limbo/tenminute/pkg/entity"
	"golang.org/x/sync/errgroup"
)

type Kind string

const (
	KindTask       Kind = "task"
	KindDaily      Kind = "daily"
	KindReflection Kind = "reflection"
	KindReview     Kind = "review"
)

var ErrUnknownKind = errors.New("unknown journal item kind")

// JournalItem is one row of the merged timeline. Payload holds the record
// itself: *entity.Task, *entity.DailyEntry, *entity.Reflection or
// *entity.WeeklyReview according to Kind.
type JournalItem struct {
	Kind    Kind
	ID      string
	Date    string
	Title   string
	Summary string
	Payload any
}

type JournalFilter struct {
	// Empty means every kind
	Kind Kind
	// Case-insensitive match against title and summary
	Search string
}

func (f JournalFilter) match(item JournalItem) bool {
	if f.Kind != "" && item.Kind != f.Kind {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Summary), needle)
}

// Journal merges every task, daily entry, reflection and weekly review into
// one list ordered by date, newest first.
func (c *Client) Journal(ctx context.Context, filter JournalFilter) ([]JournalItem, error) {
	switch filter.Kind {
	case "", KindTask, KindDaily, KindReflection, KindReview:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, filter.Kind)
	}
	var (
		tasks       []*entity.Task
		entries     []*entity.DailyEntry
		reflections []*entity.Reflection
		reviews     []*entity.WeeklyReview
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tasks, err = c.ListAllTasks(gctx)
		return err
	})
	g.Go(func() (err error) {
		entries, err = c.ListAllDailyEntries(gctx)
		return err
	})
	g.Go(func() (err error) {
		reflections, err = c.ListAllReflections(gctx)
		return err
	})
	g.Go(func() (err error) {
		reviews, err = c.ListAllWeeklyReviews(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]JournalItem, 0, len(tasks)+len(entries)+len(reflections)+len(reviews))
	for _, e := range entries {
		items = append(items, dailyItem(e))
	}
	for _, t := range tasks {
		items = append(items, taskItem(t))
	}
	for _, r := range reflections {
		items = append(items, reflectionItem(r))
	}
	for _, r := range reviews {
		items = append(items, reviewItem(r))
	}
	items = slices.DeleteFunc(items, func(item JournalItem) bool { return !filter.match(item) })
	slices.SortStableFunc(items, func(a, b JournalItem) int {
		return strings.Compare(b.Date, a.Date)
	})
	return items, nil
}

// DeleteJournalItem removes the record behind item, dispatching on its Kind.
func (c *Client) DeleteJournalItem(ctx context.Context, item JournalItem) error {
	var err error
	switch item.Kind {
	case KindTask:
		err = c.DeleteTask(ctx, item.ID)
	case KindDaily:
		err = c.DeleteDailyEntry(ctx, item.ID)
	case KindReflection:
		err = c.DeleteReflection(ctx, item.ID)
	case KindReview:
		err = c.DeleteWeeklyReview(ctx, item.ID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, item.Kind)
	}
	if err != nil {
		return err
	}
	for _, key := range []string{"/api/daily-all", "/api/tasks-all", "/api/reflections-all", "/api/weekly-reviews-all"} {
		c.cache.Invalidate(key)
	}
	return nil
}

func dailyItem(e *entity.DailyEntry) JournalItem {
	var parts []string
	if e.TenMinuteActivity != nil && *e.TenMinuteActivity != "" {
		parts = append(parts, "Activity: "+*e.TenMinuteActivity)
	}
	if e.EveningReflection != nil && *e.EveningReflection != "" {
		parts = append(parts, "Reflection: "+*e.EveningReflection)
	}
	if e.FollowUpResponse != nil && *e.FollowUpResponse != "" {
		parts = append(parts, "Follow-up: "+*e.FollowUpResponse)
	}
	if e.PromiseKept != nil && *e.PromiseKept != "" {
		parts = append(parts, "Promise kept: "+*e.PromiseKept)
	}
	if len(e.VoiceNotes) > 0 {
		parts = append(parts, "Voice notes recorded")
	}
	if len(e.Photos) > 0 {
		parts = append(parts, fmt.Sprintf("%d photo(s) attached", len(e.Photos)))
	}
	return JournalItem{
		Kind:    KindDaily,
		ID:      e.ID,
		Date:    e.Date,
		Title:   "Daily Journal - " + formatDate(e.Date, "January 02, 2006"),
		Summary: strings.Join(parts, " • "),
		Payload: e,
	}
}

func taskItem(t *entity.Task) JournalItem {
	title := t.Title
	if t.Description != nil && *t.Description != "" {
		title = *t.Description
	}
	status := "In progress"
	if t.IsCompleted {
		status = "Completed"
	}
	return JournalItem{
		Kind:    KindTask,
		ID:      t.ID,
		Date:    t.WeekStart,
		Title:   "Goal: " + title,
		Summary: status + " • Created for week of " + formatDate(t.WeekStart, "Jan 02"),
		Payload: t,
	}
}

func reflectionItem(r *entity.Reflection) JournalItem {
	parts := []string{}
	if r.Response != "" {
		parts = append(parts, r.Response)
	}
	if r.FollowUpResponse != nil && *r.FollowUpResponse != "" {
		parts = append(parts, *r.FollowUpResponse)
	}
	return JournalItem{
		Kind:    KindReflection,
		ID:      r.ID,
		Date:    r.Date,
		Title:   r.PromptText,
		Summary: strings.Join(parts, " • "),
		Payload: r,
	}
}

func reviewItem(r *entity.WeeklyReview) JournalItem {
	var parts []string
	add := func(label string, v *string) {
		if v != nil && *v != "" {
			parts = append(parts, label+": "+truncate(*v, 100)+"...")
		}
	}
	add("Proud actions", r.ProudActions)
	add("Self-respect", r.SelfRespectMoments)
	add("Patterns", r.Patterns)
	return JournalItem{
		Kind:    KindReview,
		ID:      r.ID,
		Date:    r.WeekStart,
		Title:   "Weekly Review - Week of " + formatDate(r.WeekStart, "Jan 02"),
		Summary: strings.Join(parts, " • "),
		Payload: r,
	}
}

func formatDate(date, layout string) string {
	t, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(layout)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
