package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reviewUser    string
	reviewRating  int
	reviewComment string
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Manage your perfume reviews",
}

var reviewAddCmd = &cobra.Command{
	Use:   "add <perfume-id>",
	Short: "Add a review for a perfume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := client.Catalog().Perfume(args[0]); err != nil {
			return err
		}
		review, err := client.Collections().AddReview(args[0], reviewUser, reviewRating, reviewComment)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added review %s.\n", review.ID)
		return nil
	},
}

var reviewListCmd = &cobra.Command{
	Use:   "list <perfume-id>",
	Short: "List your reviews for a perfume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		reviews := client.Collections().ReviewsFor(args[0])
		if len(reviews) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No reviews yet.")
			return nil
		}
		for _, review := range reviews {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t[%d/5] %s: %s (%s)\n",
				review.ID, review.Rating, review.UserName, review.Comment,
				review.CreatedAt.Format("2006-01-02"))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nAverage rating: %.1f\n", client.Collections().AverageRating(args[0]))
		return nil
	},
}

var reviewDeleteCmd = &cobra.Command{
	Use:   "delete <review-id>",
	Short: "Delete one of your reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.Collections().DeleteReview(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted review %s.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.AddCommand(reviewAddCmd)
	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewDeleteCmd)

	reviewAddCmd.Flags().StringVar(&reviewUser, "user", "anonymous", "reviewer name")
	reviewAddCmd.Flags().IntVar(&reviewRating, "rating", 5, "rating from 1 to 5")
	reviewAddCmd.Flags().StringVar(&reviewComment, "comment", "", "review text")
}
