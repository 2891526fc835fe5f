package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/kavocado/bloom/internal/models"
)

func findTodo(todos []models.Todo, id string) (models.Todo, bool) {
	for _, todo := range todos {
		if todo.ID == id {
			return todo, true
		}
	}
	return models.Todo{}, false
}

type TodoAddCmd struct {
	Text []string `arg:"" help:"Todo text."`
}

func (c *TodoAddCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	added, err := t.AddTodo(strings.Join(c.Text, " "), time.Now())
	if err != nil {
		return err
	}
	if !added {
		fmt.Println("Nothing to add.")
		return nil
	}
	fmt.Printf("Added: %s\n", t.Todos()[0].Text)
	return nil
}

type TodoListCmd struct{}

func (c *TodoListCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	todos := t.Todos()
	if len(todos) == 0 {
		fmt.Println("No tasks yet. Enjoy the quiet! ✨")
		return nil
	}

	for i, todo := range todos {
		mark := "○"
		if todo.Completed {
			mark = "✓"
		}
		fmt.Printf("%3d. %s %s\n", i+1, mark, todo.Text)
	}
	return nil
}

type TodoDoneCmd struct {
	Index int `arg:"" help:"Todo number from 'bloom todo list'."`
}

func (c *TodoDoneCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	todos := t.Todos()
	if c.Index < 1 || c.Index > len(todos) {
		return fmt.Errorf("no todo numbered %d", c.Index)
	}

	todo := todos[c.Index-1]
	if err := t.ToggleTodo(todo.ID); err != nil {
		return err
	}

	updated, _ := findTodo(t.Todos(), todo.ID)
	mark := "○"
	if updated.Completed {
		mark = "✓"
	}
	fmt.Printf("%s %s\n", mark, updated.Text)
	return nil
}

type TodoDeleteCmd struct {
	Index int `arg:"" help:"Todo number from 'bloom todo list'."`
}

func (c *TodoDeleteCmd) Run(ctx *Context) error {
	t, err := ctx.openTracker()
	if err != nil {
		return err
	}

	todos := t.Todos()
	if c.Index < 1 || c.Index > len(todos) {
		return fmt.Errorf("no todo numbered %d", c.Index)
	}

	todo := todos[c.Index-1]
	if err := t.DeleteTodo(todo.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted: %s\n", todo.Text)
	return nil
}
