package cli

import (
	"context"
	"fmt"

	"github.com/kavocado/bloom/internal/stats"
)

type SummaryCmd struct{}

func (c *SummaryCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	if len(t.Habits()) == 0 {
		fmt.Println("Your garden is empty; nothing to summarize yet.")
		return nil
	}

	fmt.Println(ctx.Advisor.WeeklySummary(context.Background(), t.Habits(), t.Logs()))
	return nil
}

type LevelCmd struct{}

func (c *LevelCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	total := t.TotalCompleted()
	fmt.Printf("LV %d (%d completions)\n", stats.GrowthLevel(total), total)
	return nil
}
