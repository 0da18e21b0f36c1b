// Package progress derives streaks and weekly aggregates from daily entries.
package progress

import (
	"time"

	"github.com/limbo/tenminute/pkg/entity"
)

// MilestoneDays is the streak length celebrated as the first habit milestone.
const MilestoneDays = 66

const (
	minGrowthLevel = 1
	maxGrowthLevel = 5
)

type Stats struct {
	PromisesKept  int `json:"promisesKept"`
	TotalPromises int `json:"totalPromises"`
	GrowthLevel   int `json:"growthLevel"`
}

// ConsecutiveDays counts kept-promise days walking back from today one
// calendar day at a time, stopping at the first day without a kept promise.
// Only the calendar date of today is used. Several entries for the same day
// count once.
func ConsecutiveDays(entries []*entity.DailyEntry, today time.Time) int {
	kept := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e != nil && e.KeptPromise() {
			kept[e.Date] = struct{}{}
		}
	}
	if len(kept) == 0 {
		return 0
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	count := 0
	for {
		if _, ok := kept[day.Format(entity.DateLayout)]; !ok {
			return count
		}
		count++
		day = day.AddDate(0, 0, -1)
	}
}

func MilestoneReached(days int) bool {
	return days >= MilestoneDays
}

// WeeklyStats aggregates the entries of one week. Only substantive entries
// count toward the totals.
func WeeklyStats(entries []*entity.DailyEntry) Stats {
	var s Stats
	for _, e := range entries {
		if e == nil || !e.Substantive() {
			continue
		}
		s.TotalPromises++
		if e.KeptPromise() {
			s.PromisesKept++
		}
	}
	s.GrowthLevel = GrowthLevel(s.PromisesKept, s.TotalPromises)
	return s
}

// GrowthLevel is ceil(kept/max(total,1)*5) clamped to 1..5.
func GrowthLevel(kept, total int) int {
	if total < 1 {
		total = 1
	}
	level := (kept*maxGrowthLevel + total - 1) / total
	return max(minGrowthLevel, min(maxGrowthLevel, level))
}

// WeekOf returns the Monday and Sunday bounding the week of day.
func WeekOf(day time.Time) (start, end string) {
	offset := (int(day.Weekday()) + 6) % 7
	monday := time.Date(day.Year(), day.Month(), day.Day()-offset, 0, 0, 0, 0, time.UTC)
	return monday.Format(entity.DateLayout), monday.AddDate(0, 0, 6).Format(entity.DateLayout)
}
