package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/limbo/tenminute/internal/activity"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/internal/progress"
	"github.com/limbo/tenminute/internal/repository"
	"github.com/limbo/tenminute/pkg/entity"
)

type StreakInsight struct {
	ConsecutiveDays  int    `json:"consecutiveDays"`
	MilestoneDays    int    `json:"milestoneDays"`
	MilestoneReached bool   `json:"milestoneReached"`
	Anchor           string `json:"anchor"`
}

// Suggestion carries both kinds of ten-minute activity. Task fields are nil
// when the week has no incomplete task.
type Suggestion struct {
	TaskID         *string       `json:"taskId"`
	TaskTitle      *string       `json:"taskTitle"`
	TaskActivity   *string       `json:"taskActivity"`
	Category       string        `json:"category,omitempty"`
	EnergyLevel    int           `json:"energyLevel"`
	EnergyBand     activity.Band `json:"energyBand"`
	EnergyActivity string        `json:"energyActivity"`
}

type InsightsService struct {
	tasks     repository.TasksRepositoryI
	entries   repository.DailyEntriesRepositoryI
	suggester *activity.Suggester
}

func NewInsightsService(tasksRepo repository.TasksRepositoryI, dailyRepo repository.DailyEntriesRepositoryI, suggester *activity.Suggester) *InsightsService {
	if tasksRepo == nil || dailyRepo == nil {
		log.Fatal("provided nil repository")
	}
	if suggester == nil {
		suggester = activity.NewSuggester(nil)
	}
	return &InsightsService{
		tasks:     tasksRepo,
		entries:   dailyRepo,
		suggester: suggester,
	}
}

func (is *InsightsService) Streak(ctx context.Context, today time.Time) (*StreakInsight, error) {
	entries, err := is.entries.ListAll(ctx)
	if err != nil {
		return nil, errors.New("daily entries repository error: " + err.Error())
	}
	days := progress.ConsecutiveDays(entries, today)
	return &StreakInsight{
		ConsecutiveDays:  days,
		MilestoneDays:    progress.MilestoneDays,
		MilestoneReached: progress.MilestoneReached(days),
		Anchor:           today.Format(entity.DateLayout),
	}, nil
}

func (is *InsightsService) Week(ctx context.Context, weekStart, weekEnd string) (*progress.Stats, error) {
	if err := errors.Join(validateDate("weekStart", weekStart), validateDate("weekEnd", weekEnd)); err != nil {
		return nil, err
	}
	entries, err := is.entries.ListForDateRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, errors.New("daily entries repository error: " + err.Error())
	}
	stats := progress.WeeklyStats(entries)
	return &stats, nil
}

func (is *InsightsService) Suggestion(ctx context.Context, weekStart string, energy int) (*Suggestion, error) {
	if err := validateDate("weekStart", weekStart); err != nil {
		return nil, err
	}
	if energy < 0 || energy > 10 {
		return nil, errors.Join(errorvalues.ErrInvalidInput, errors.New("energy must be between 0 and 10"))
	}
	tasks, err := is.tasks.List(ctx, repository.TaskFilter{WeekStart: weekStart})
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	result := &Suggestion{
		EnergyLevel:    energy,
		EnergyBand:     activity.EnergyBand(energy),
		EnergyActivity: is.suggester.SuggestEnergyActivity(energy),
	}
	incomplete := make([]*entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsCompleted {
			incomplete = append(incomplete, t)
		}
	}
	if len(incomplete) == 0 {
		return result, nil
	}
	task := incomplete[is.suggester.Choose(len(incomplete))]
	taskActivity := is.suggester.SuggestActivity(task.Title)
	result.TaskID = &task.ID
	result.TaskTitle = &task.Title
	result.TaskActivity = &taskActivity
	result.Category = activity.MatchCategory(task.Title)
	return result, nil
}
