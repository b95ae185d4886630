package cmd

import (
	stderrors "errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/scentmap/scentmap/pkg/errors"
)

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List brands represented in the catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		options, err := client.Service().AvailableBrands(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tCOUNTRY")
		for _, option := range options {
			country := "-"
			if brand, err := client.Catalog().Brand(option.ID); err == nil {
				country = brand.Country
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", option.ID, option.Name, country)
		}
		tw.Flush()

		priceRange, err := client.Service().PriceRange(cmd.Context())
		switch {
		case err == nil:
			fmt.Fprintf(cmd.OutOrStdout(), "\nCatalog price range: %.2f - %.2f\n", priceRange.Min, priceRange.Max)
		case stderrors.Is(err, errors.ErrNoPricedPerfumes):
			// Nothing to report for an unpriced catalog.
		default:
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(brandsCmd)
}
