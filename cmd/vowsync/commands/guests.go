package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vowsync/vowsync/internal/models"
)

func guestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guests",
		Short: "Manage the guest list",
	}
	cmd.AddCommand(guestsListCmd(), guestsAddCmd(), guestsRsvpCmd(), guestsRmCmd(), guestsCountsCmd())
	return cmd
}

func guestsRsvpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rsvp [id] [status]",
		Short: "Record a guest's RSVP (accepted or declined)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.state.Guests.Fetch(cmd.Context()); err != nil {
				return err
			}
			app.state.Guests.UpdateStatus(args[0], models.GuestStatus(args[1]))
			total, confirmed, declined := app.state.Guests.Counts()
			fmt.Printf("total %d, confirmed %d, declined %d\n", total, confirmed, declined)
			return nil
		},
	}
}

func guestsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Drop a guest from the local list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.state.Guests.Fetch(cmd.Context()); err != nil {
				return err
			}
			app.state.Guests.Remove(args[0])
			fmt.Printf("%d guests remain\n", len(app.state.Guests.All()))
			return nil
		},
	}
}

func guestsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List guests alphabetically with RSVP status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.state.Guests.Fetch(cmd.Context()); err != nil {
				return err
			}
			for _, g := range app.state.Guests.All() {
				fmt.Printf("%-30s %s\n", g.Name, g.Status)
			}
			return nil
		},
	}
}

func guestsAddCmd() *cobra.Command {
	var email, status string
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a guest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.state.Guests.Create(cmd.Context(), args[0], email, models.GuestStatus(status))
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", g.Name, g.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "guest email")
	cmd.Flags().StringVar(&status, "status", string(models.GuestInvited), "invited, accepted or declined")
	return cmd
}

func guestsCountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Show RSVP totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.state.Guests.Fetch(cmd.Context()); err != nil {
				return err
			}
			total, confirmed, declined := app.state.Guests.Counts()
			fmt.Printf("total %d, confirmed %d, declined %d\n", total, confirmed, declined)
			return nil
		},
	}
}
