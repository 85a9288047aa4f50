package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vowsync/vowsync/internal/api"
	"github.com/vowsync/vowsync/internal/models"
)

func detailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details",
		Short: "View or set the wedding details",
	}
	cmd.AddCommand(detailsShowCmd(), detailsSetCmd())
	return cmd
}

func detailsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved wedding details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.state.Wedding.Fetch(cmd.Context()); err != nil {
				if errors.Is(err, api.ErrNotOnboarded) {
					fmt.Println("No wedding details yet, run `vowsync details set`")
					return nil
				}
				return err
			}
			d := app.state.Wedding.Details()
			fmt.Printf("%s & %s\n", d.BrideName, d.GroomName)
			fmt.Printf("on %s at %s\n", d.WeddingDate, d.Time)
			fmt.Printf("location: %s", d.Location)
			if d.Venue != "" {
				fmt.Printf(" (%s)", d.Venue)
			}
			fmt.Println()
			fmt.Printf("guests: %d, dress code: %s\n", d.GuestCount, d.DressCode)
			return nil
		},
	}
}

func detailsSetCmd() *cobra.Command {
	var d models.WeddingDetails
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save the wedding details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.state.Wedding.Submit(cmd.Context(), d)
		},
	}
	cmd.Flags().StringVar(&d.BrideName, "bride", "", "bride's name")
	cmd.Flags().StringVar(&d.GroomName, "groom", "", "groom's name")
	cmd.Flags().StringVar(&d.WeddingDate, "date", "", "wedding date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&d.Time, "time", "", "ceremony time (HH:MM:SS)")
	cmd.Flags().StringVar(&d.Location, "location", "", "city or area")
	cmd.Flags().StringVar(&d.Venue, "venue", "", "venue name")
	cmd.Flags().IntVar(&d.GuestCount, "guests", 0, "expected guest count")
	cmd.Flags().StringVar(&d.DressCode, "dress-code", "", "dress code")
	return cmd
}
