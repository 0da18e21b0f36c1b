package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/limbo/tenminute/internal/activity"
	"github.com/limbo/tenminute/internal/client"
	"github.com/limbo/tenminute/internal/progress"
	"github.com/limbo/tenminute/internal/service"
	"github.com/limbo/tenminute/pkg/entity"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("114")).
			Padding(0, 1)
)

type JournalCmd struct {
	Kind   string `help:"Only show one kind of item: task, daily, reflection or review."`
	Search string `help:"Case-insensitive text filter." short:"s"`
}

func (c *JournalCmd) Run(ctx *Context) error {
	items, err := ctx.Client.Journal(ctx, client.JournalFilter{Kind: client.Kind(c.Kind), Search: c.Search})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(ctx.Out, mutedStyle.Render("Your journal is empty."))
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(ctx.Out, "%s %s %s\n", mutedStyle.Render(item.Date), kindStyle.Render(string(item.Kind)), titleStyle.Render(item.Title))
		if item.Summary != "" {
			fmt.Fprintf(ctx.Out, "    %s\n", item.Summary)
		}
		fmt.Fprintf(ctx.Out, "    %s\n", mutedStyle.Render("id "+item.ID))
	}
	return nil
}

type StreakCmd struct {
	Today string `help:"Count back from this YYYY-MM-DD date instead of today."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	if c.Today == "" {
		c.Today = time.Now().Format(entity.DateLayout)
	}
	streak, err := ctx.Client.Streak(ctx, c.Today)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s %d of %d days\n", titleStyle.Render("Streak:"), streak.ConsecutiveDays, streak.MilestoneDays)
	if streak.MilestoneReached {
		fmt.Fprintln(ctx.Out, "You kept your promise for 66 days in a row. The habit is yours.")
	}
	return nil
}

type WeekCmd struct {
	Start string `arg:"" optional:"" help:"Any YYYY-MM-DD date of the week; defaults to this week."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	day := time.Now()
	if c.Start != "" {
		parsed, err := time.Parse(entity.DateLayout, c.Start)
		if err != nil {
			return errors.New("week must be a YYYY-MM-DD date")
		}
		day = parsed
	}
	start, end := progress.WeekOf(day)
	ctx.Log.Debug("week range", "start", start, "end", end)
	stats, err := ctx.Client.WeekStats(ctx, start, end)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s %s to %s\n", titleStyle.Render("Week"), start, end)
	fmt.Fprintf(ctx.Out, "Promises kept: %d/%d\n", stats.PromisesKept, stats.TotalPromises)
	fmt.Fprintf(ctx.Out, "Growth level:  %d/5\n", stats.GrowthLevel)
	return nil
}

type SuggestCmd struct {
	Title  string `arg:"" optional:"" help:"Suggest for this task title locally instead of asking the server."`
	Energy int    `help:"Energy level 1-10." short:"e"`
	Week   string `help:"Week start (YYYY-MM-DD) to pick a task from."`
}

func (c *SuggestCmd) Run(ctx *Context) error {
	if c.Title != "" {
		fmt.Fprintf(ctx.Out, "%s %s\n", mutedStyle.Render("["+activity.MatchCategory(c.Title)+"]"), activity.SuggestActivity(c.Title))
		if c.Energy != 0 {
			fmt.Fprintf(ctx.Out, "%s %s\n", mutedStyle.Render("[energy]"), activity.SuggestEnergyActivity(c.Energy))
		}
		return nil
	}
	s, err := ctx.Client.Suggestion(ctx, c.Week, c.Energy)
	if err != nil {
		return err
	}
	if s.TaskActivity != nil {
		fmt.Fprintf(ctx.Out, "%s %s\n", titleStyle.Render(*s.TaskTitle+":"), *s.TaskActivity)
	} else {
		fmt.Fprintln(ctx.Out, mutedStyle.Render("No open tasks this week."))
	}
	fmt.Fprintf(ctx.Out, "%s %s\n", mutedStyle.Render("["+string(s.EnergyBand)+" energy]"), s.EnergyActivity)
	return nil
}

type TaskListCmd struct {
	Week string `help:"Week start (YYYY-MM-DD); defaults to this week."`
	All  bool   `help:"List every active task."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	var (
		tasks []*entity.Task
		err   error
	)
	if c.All {
		tasks, err = ctx.Client.ListAllTasks(ctx)
	} else {
		week := c.Week
		if week == "" {
			week, _ = progress.WeekOf(time.Now())
		}
		tasks, err = ctx.Client.ListTasks(ctx, week)
	}
	if err != nil {
		return err
	}
	for _, t := range tasks {
		mark := "[ ]"
		if t.IsCompleted {
			mark = "[x]"
		}
		fmt.Fprintf(ctx.Out, "%s %s %s\n", mark, t.Title, mutedStyle.Render(t.ID))
	}
	return nil
}

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `help:"Longer description." short:"d"`
	Week        string `help:"Week start (YYYY-MM-DD); defaults to this week."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	week := c.Week
	if week == "" {
		week, _ = progress.WeekOf(time.Now())
	}
	req := &service.CreateTaskRequest{Title: c.Title, WeekStart: week}
	if c.Description != "" {
		req.Description = &c.Description
	}
	task, err := ctx.Client.CreateTask(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Added %s %s\n", titleStyle.Render(task.Title), mutedStyle.Render(task.ID))
	return nil
}

type TaskDoneCmd struct {
	ID   string `arg:"" help:"Task id."`
	Undo bool   `help:"Mark the task as not completed."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	task, err := ctx.Client.CompleteTask(ctx, c.ID, !c.Undo)
	if err != nil {
		return err
	}
	state := "completed"
	if !task.IsCompleted {
		state = "reopened"
	}
	fmt.Fprintf(ctx.Out, "%s %s\n", titleStyle.Render(task.Title), state)
	return nil
}

type TaskRmCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskRmCmd) Run(ctx *Context) error {
	if err := ctx.Client.DeleteTask(ctx, c.ID); err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, "Removed", c.ID)
	return nil
}
