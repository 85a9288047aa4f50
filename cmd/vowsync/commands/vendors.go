package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vowsync/vowsync/internal/models"
	"github.com/vowsync/vowsync/internal/vendors"
)

func vendorsCmd() *cobra.Command {
	var category, location string
	cmd := &cobra.Command{
		Use:   "vendors [text...]",
		Short: "Search wedding vendors by category and location",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vendors.CategoryQuery(category) == "" {
				return fmt.Errorf("unknown category %q, one of: %s",
					category, strings.Join(vendors.Categories(), ", "))
			}

			results := make(chan []models.Vendor, 1)
			errs := make(chan error, 1)
			searcher := vendors.NewSearcher(app.client.SearchVendors,
				func(v []models.Vendor) { results <- v },
				vendors.WithDebounce(0),
				vendors.WithErrorHandler(func(err error) { errs <- err }),
			)
			defer searcher.Close()

			searcher.SetLocation(location)
			searcher.SetCategory(category)
			if len(args) > 0 {
				searcher.SetQuery(strings.Join(args, " "))
			}

			select {
			case found := <-results:
				for _, v := range found {
					fmt.Printf("%-30s %.1f stars (%d reviews)  %s\n",
						v.Name, v.Rating, v.NumberOfReviews, v.Location)
				}
				return nil
			case err := <-errs:
				return err
			case <-time.After(30 * time.Second):
				return fmt.Errorf("vendor search timed out")
			}
		},
	}
	cmd.Flags().StringVar(&category, "category", "Venues", "vendor category")
	cmd.Flags().StringVar(&location, "location", "", "city to search in")
	return cmd
}
