package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scentmap/scentmap/pkg/catalogs"
)

var (
	searchBrands   []string
	searchFamilies []string
	searchGenders  []string
	searchPage     int
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search perfumes by keyword",
	Long: `Search perfumes by a case-insensitive keyword matched against name,
brand name, and description. Filters narrow the results further.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		// Drive the query through the browse state so selections compose
		// the same way an interactive session would.
		state := client.Browse()
		state.SetKeyword(strings.Join(args, " "))
		for _, id := range searchBrands {
			state.ToggleBrand(id)
		}
		for _, family := range searchFamilies {
			state.ToggleNoteFamily(catalogs.NoteFamily(family))
		}
		for _, gender := range searchGenders {
			state.ToggleGender(catalogs.Gender(gender))
		}
		if searchPage > 1 {
			// Run once to learn the page count, then jump.
			state.Search(cmd.Context())
			if msg := state.Err(); msg != "" {
				return fmt.Errorf("search failed: %s", msg)
			}
			state.SetPage(searchPage)
		}

		state.Search(cmd.Context())
		if msg := state.Err(); msg != "" {
			return fmt.Errorf("search failed: %s", msg)
		}

		renderPerfumeTable(cmd.OutOrStdout(), state.Perfumes())
		fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d matches)\n",
			state.CurrentPage(), state.TotalPages(), state.TotalResults())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringSliceVar(&searchBrands, "brand", nil, "filter by brand ID (repeatable)")
	searchCmd.Flags().StringSliceVar(&searchFamilies, "family", nil, "filter by note family (repeatable)")
	searchCmd.Flags().StringSliceVar(&searchGenders, "gender", nil, "filter by gender (repeatable)")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "page number")
}
