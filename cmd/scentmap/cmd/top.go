package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scentmap/scentmap/pkg/catalogs"
)

var (
	topBy    string
	topLimit int
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most popular or highest rated perfumes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		var perfumes []catalogs.Perfume
		switch topBy {
		case "reviews":
			perfumes, err = client.Service().Popular(cmd.Context(), topLimit)
		case "rating":
			perfumes, err = client.Service().TopRated(cmd.Context(), topLimit)
		default:
			return fmt.Errorf("unknown ranking %q: use \"reviews\" or \"rating\"", topBy)
		}
		if err != nil {
			return err
		}

		renderPerfumeTable(cmd.OutOrStdout(), perfumes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topCmd)

	topCmd.Flags().StringVar(&topBy, "by", "reviews", "ranking to use: reviews or rating")
	topCmd.Flags().IntVar(&topLimit, "limit", 10, "number of perfumes to show")
}
