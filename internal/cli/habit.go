package cli

import (
	"fmt"
	"time"

	"github.com/kavocado/bloom/internal/models"
	"github.com/kavocado/bloom/internal/schedule"
	"github.com/kavocado/bloom/internal/stats"
	"github.com/kavocado/bloom/internal/validation"
)

type HabitAddCmd struct {
	Name        string  `arg:"" help:"Habit name."`
	Emoji       string  `help:"Display emoji." default:"🌱"`
	Color       string  `help:"Display color (hex)." default:"#ec4899"`
	Personality string  `short:"p" help:"Advisor tone (soft|strict|funny)." default:"soft"`
	Frequency   string  `short:"f" help:"Frequency (daily|weekly|custom)." default:"daily"`
	Days        string  `short:"w" help:"Comma-separated weekdays for custom frequency."`
	GoalType    string  `help:"Goal type (time|count|streak)." default:"count"`
	Target      float64 `short:"t" help:"Goal target." default:"1"`
	Unit        string  `short:"u" help:"Goal unit label." default:"times"`
}

func (c *HabitAddCmd) Validate() error {
	switch models.Personality(c.Personality) {
	case models.PersonalitySoft, models.PersonalityStrict, models.PersonalityFunny:
	default:
		return fmt.Errorf("invalid personality: %s", c.Personality)
	}
	switch models.Frequency(c.Frequency) {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyCustom:
	default:
		return fmt.Errorf("invalid frequency: %s", c.Frequency)
	}
	switch models.GoalType(c.GoalType) {
	case models.GoalTime, models.GoalCount, models.GoalStreak:
	default:
		return fmt.Errorf("invalid goal type: %s", c.GoalType)
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:          models.NewID(),
		Name:        c.Name,
		Emoji:       c.Emoji,
		Color:       c.Color,
		Personality: models.Personality(c.Personality),
		Frequency:   models.Frequency(c.Frequency),
		GoalType:    models.GoalType(c.GoalType),
		GoalTarget:  c.Target,
		Unit:        c.Unit,
		CreatedAt:   models.NowMillis(time.Now()),
	}

	if habit.Frequency == models.FrequencyCustom {
		days, err := parseWeekdays(c.Days)
		if err != nil {
			return err
		}
		habit.CustomDays = days
	}

	if result := validation.CheckHabit(habit); result.HasIssues() {
		return fmt.Errorf("invalid habit:\n%s", result.FormatReport())
	}

	added, err := t.AddHabit(habit)
	if err != nil {
		return err
	}
	if !added {
		return fmt.Errorf("habit was rejected")
	}

	fmt.Printf("Planted habit: %s %s (ID: %s)\n", habit.Emoji, habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct {
	Due bool `help:"Only show habits due today."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	now := time.Now()
	habits := t.Habits()
	if c.Due {
		habits = schedule.DueToday(habits, now)
	}

	if len(habits) == 0 {
		fmt.Println("Your garden is empty. Plant one with 'bloom habit add'.")
		return nil
	}

	today := models.Day(now)
	for _, h := range habits {
		logs := t.LogsFor(h.ID)
		streak := stats.Streak(logs)
		progress := stats.SevenDayProgress(logs, now)
		stage := stats.GrowthStage(progress)

		mark := "○"
		if log, ok := t.LogFor(h.ID, today); ok && log.Completed {
			mark = "✓"
		}

		fmt.Printf("%s %s %s %-20s  %2d day streak  %3.0f%%  %s  (%s, %g %s)\n",
			mark, stage.Glyph(), h.Emoji, h.Name, streak, progress,
			formatFrequency(h), h.GoalType, h.GoalTarget, h.Unit)
	}

	fmt.Printf("\nGrowth level: LV %d\n", stats.GrowthLevel(t.TotalCompleted()))
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	h, err := resolveHabit(t, c.Habit)
	if err != nil {
		return err
	}

	if err := t.DeleteHabit(h.ID); err != nil {
		return err
	}
	fmt.Printf("Removed habit %s and its logs.\n", h.Name)
	return nil
}

type HabitEditCmd struct {
	Habit       string   `arg:"" help:"Habit name or ID."`
	Name        string   `help:"New name."`
	Emoji       string   `help:"New emoji."`
	Color       string   `help:"New color."`
	Personality string   `short:"p" help:"New advisor tone (soft|strict|funny)."`
	Target      *float64 `short:"t" help:"New goal target."`
	Unit        string   `short:"u" help:"New unit label."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	h, err := resolveHabit(t, c.Habit)
	if err != nil {
		return err
	}

	if c.Name != "" {
		h.Name = c.Name
	}
	if c.Emoji != "" {
		h.Emoji = c.Emoji
	}
	if c.Color != "" {
		h.Color = c.Color
	}
	if c.Personality != "" {
		h.Personality = models.Personality(c.Personality)
	}
	if c.Target != nil {
		h.GoalTarget = *c.Target
	}
	if c.Unit != "" {
		h.Unit = c.Unit
	}

	if result := validation.CheckHabit(h); result.HasIssues() {
		return fmt.Errorf("invalid habit:\n%s", result.FormatReport())
	}

	if err := t.UpdateHabit(h); err != nil {
		return err
	}
	fmt.Printf("Updated habit %s.\n", h.Name)
	return nil
}
