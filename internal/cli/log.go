package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/kavocado/bloom/internal/models"
	"github.com/kavocado/bloom/internal/stats"
)

type LogCmd struct {
	Habit string   `arg:"" help:"Habit name or ID."`
	Value *float64 `short:"v" help:"Value to record (defaults to the habit's goal target)."`
	Quiet bool     `short:"q" help:"Skip the motivational message."`
}

func (c *LogCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	h, err := resolveHabit(t, c.Habit)
	if err != nil {
		return err
	}

	value := h.GoalTarget
	if c.Value != nil {
		value = *c.Value
	}

	today := models.Day(time.Now())
	if err := t.ToggleHabitCompletion(h.ID, value, today); err != nil {
		return err
	}

	log, _ := t.LogFor(h.ID, today)
	logs := t.LogsFor(h.ID)
	if log.Completed {
		fmt.Printf("✓ %s completed for %s (streak: %d)\n", h.Name, today, stats.Streak(logs))
		if !c.Quiet {
			fmt.Println(ctx.Advisor.Motivation(context.Background(), h, stats.Streak(logs), logs))
		}
	} else {
		fmt.Printf("○ %s unmarked for %s\n", h.Name, today)
	}
	return nil
}
