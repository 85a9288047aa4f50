package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vowsync/vowsync/internal/api"
	"github.com/vowsync/vowsync/internal/models"
	"github.com/vowsync/vowsync/internal/timeline"
)

func timelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "Show open tasks bucketed by due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.state.Todos.Fetch(cmd.Context()); err != nil {
				return err
			}
			groups := timeline.Group(app.state.Todos.Incomplete(), time.Now())

			printSection := func(name string, items []models.ToDoItem) {
				if len(items) == 0 {
					return
				}
				fmt.Printf("%s:\n", name)
				for _, item := range items {
					fmt.Printf("  %s  (due %s)\n", item.Title, item.DueDate.Format(api.DateTimeLayout))
				}
			}
			printSection(timeline.BucketToday.String(), groups.Today)
			printSection(timeline.BucketTomorrow.String(), groups.Tomorrow)
			printSection(timeline.BucketNextWeek.String(), groups.NextWeek)
			printSection(timeline.BucketNextMonth.String(), groups.NextMonth)
			printSection(timeline.BucketUpcoming.String(), groups.Upcoming)
			return nil
		},
	}
}
