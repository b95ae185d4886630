package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scentmap/scentmap/pkg/catalogs"
)

var (
	listBrands   []string
	listFamilies []string
	listGenders  []string
	listMinPrice float64
	listMaxPrice float64
	listPage     int
	listPageSize int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List perfumes in the catalog",
	Long: `List perfumes with optional brand, note family, gender, and price
filters. Results are paginated; use --page to move through them.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		filter := catalogs.Filter{BrandIDs: listBrands}
		for _, family := range listFamilies {
			filter.NoteFamilies = append(filter.NoteFamilies, catalogs.NoteFamily(family))
		}
		for _, gender := range listGenders {
			filter.Genders = append(filter.Genders, catalogs.Gender(gender))
		}
		if cmd.Flags().Changed("min-price") || cmd.Flags().Changed("max-price") {
			filter.PriceRange = &catalogs.PriceRange{Min: listMinPrice, Max: listMaxPrice}
		}

		result, err := client.Service().Search(cmd.Context(), "", filter, listPage, listPageSize)
		if err != nil {
			return err
		}

		renderPerfumeTable(cmd.OutOrStdout(), result.Perfumes)
		fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d perfumes)\n",
			result.Page, result.TotalPages(), result.Total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringSliceVar(&listBrands, "brand", nil, "filter by brand ID (repeatable)")
	listCmd.Flags().StringSliceVar(&listFamilies, "family", nil, "filter by note family (repeatable)")
	listCmd.Flags().StringSliceVar(&listGenders, "gender", nil, "filter by gender (repeatable)")
	listCmd.Flags().Float64Var(&listMinPrice, "min-price", 0, "minimum price")
	listCmd.Flags().Float64Var(&listMaxPrice, "max-price", 1_000_000, "maximum price")
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "results per page")
}
