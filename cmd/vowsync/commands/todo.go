package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vowsync/vowsync/internal/api"
)

// parseDue accepts a bare date or a full date-time in the API's layouts.
func parseDue(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(api.DateTimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(api.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("due date must be %q or %q", api.DateLayout, api.DateTimeLayout)
	}
	// A bare date means end of that day, so the task is not instantly
	// overdue on the timeline.
	return t.Add(24*time.Hour - time.Second), nil
}

func todoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the wedding checklist",
	}
	cmd.AddCommand(todoListCmd(), todoAddCmd(), todoDoneCmd(), todoDueCmd(), todoRmCmd())
	return cmd
}

func todoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List checklist items with completion progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.state.Todos.Fetch(cmd.Context()); err != nil {
				return err
			}
			for _, item := range app.state.Todos.List() {
				mark := " "
				if item.Completed {
					mark = "x"
				}
				due := ""
				if item.DueDate != nil {
					due = "  due " + item.DueDate.Format(api.DateLayout)
				}
				fmt.Printf("[%s] %s  %s%s\n", mark, item.ID, item.Title, due)
			}
			fmt.Printf("%d%% complete\n", app.state.Todos.CompletionPercentage())
			return nil
		},
	}
}

func todoAddCmd() *cobra.Command {
	var dueFlag string
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var due *time.Time
			if dueFlag != "" {
				t, err := parseDue(dueFlag)
				if err != nil {
					return err
				}
				due = &t
			}
			item, err := app.state.Todos.Create(cmd.Context(), args[0], due)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s\n", item.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&dueFlag, "due", "", "due date (YYYY-MM-DD)")
	return cmd
}

func todoDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle an item's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.state.Todos.Fetch(cmd.Context()); err != nil {
				return err
			}
			return app.state.Todos.ToggleComplete(cmd.Context(), args[0])
		},
	}
}

func todoDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due [id] [date]",
		Short: "Set an item's due date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := parseDue(args[1])
			if err != nil {
				return err
			}
			if err := app.state.Todos.Fetch(cmd.Context()); err != nil {
				return err
			}
			return app.state.Todos.SetDueDate(cmd.Context(), args[0], &due)
		},
	}
}

func todoRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.state.Todos.Fetch(cmd.Context()); err != nil {
				return err
			}
			return app.state.Todos.Remove(cmd.Context(), args[0])
		},
	}
}
