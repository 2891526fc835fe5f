package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Println("⚠️  This will clear all your growth progress. This cannot be undone.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := t.ClearAll(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	fmt.Println("✓ All data cleared. Your garden awaits new seeds.")
	return nil
}
