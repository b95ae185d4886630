package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <perfume-id>",
	Short: "Show details for a perfume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		perfume, err := client.Service().FetchByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s by %s\n", perfume.Name, perfume.Brand.Name)
		fmt.Fprintf(out, "  ID:            %s\n", perfume.ID)
		if perfume.Year != 0 {
			fmt.Fprintf(out, "  Year:          %d\n", perfume.Year)
		}
		fmt.Fprintf(out, "  Gender:        %s\n", perfume.Gender)
		fmt.Fprintf(out, "  Concentration: %s\n", perfume.Concentration)
		fmt.Fprintf(out, "  Price:         %s\n", formatPrice(perfume.Price))
		fmt.Fprintf(out, "  Rating:        %s\n", formatRating(perfume.Rating, perfume.ReviewCount))
		fmt.Fprintln(out, "  Notes:")
		for _, note := range perfume.Notes {
			fmt.Fprintf(out, "    %-8s %s (%s)\n", note.Type, note.Name, note.Family)
		}
		if perfume.Description != "" {
			fmt.Fprintf(out, "\n%s\n", perfume.Description)
		}

		if client.Collections().IsFavorite(perfume.ID) {
			fmt.Fprintln(out, "\n★ In your favorites")
		}
		if reviews := client.Collections().ReviewsFor(perfume.ID); len(reviews) > 0 {
			fmt.Fprintf(out, "\nYour reviews (average %.1f):\n", client.Collections().AverageRating(perfume.ID))
			for _, review := range reviews {
				fmt.Fprintf(out, "  [%d/5] %s: %s\n", review.Rating, review.UserName, review.Comment)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
