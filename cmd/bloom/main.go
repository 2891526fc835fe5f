package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/kavocado/bloom/internal/advisor"
	"github.com/kavocado/bloom/internal/cli"
	"github.com/kavocado/bloom/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path." type:"path" default:"~/.config/bloom/bloom.db"`

	Init cli.InitCmd `cmd:"" help:"Initialize bloom storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive garden." default:"1"`

	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Plant a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits with streaks and growth."`
		Edit   cli.HabitEditCmd   `cmd:"" help:"Edit a habit."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit and its logs."`
	} `cmd:"" help:"Manage habits."`
	Log cli.LogCmd `cmd:"" help:"Toggle today's completion for a habit."`

	Todo struct {
		Add    cli.TodoAddCmd    `cmd:"" help:"Add a todo."`
		List   cli.TodoListCmd   `cmd:"" help:"List todos."`
		Done   cli.TodoDoneCmd   `cmd:"" help:"Toggle a todo."`
		Delete cli.TodoDeleteCmd `cmd:"" help:"Delete a todo."`
	} `cmd:"" help:"Manage the to-do list."`
	Summary cli.SummaryCmd `cmd:"" help:"Generate the weekly AI summary."`
	Level   cli.LevelCmd   `cmd:"" help:"Show the garden's growth level."`
	Reset   cli.ResetCmd   `cmd:"" help:"Clear all data."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bloom"),
		kong.Description("Habit garden — grow a little every day"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.2.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:   store,
		Advisor: advisor.NewFromEnv(),
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
