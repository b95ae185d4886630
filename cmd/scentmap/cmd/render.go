package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/scentmap/scentmap/pkg/catalogs"
)

// renderPerfumeTable writes perfumes as an aligned table.
func renderPerfumeTable(w io.Writer, perfumes []catalogs.Perfume) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBRAND\tGENDER\tPRICE\tRATING")
	for _, p := range perfumes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Brand.Name, p.Gender, formatPrice(p.Price), formatRating(p.Rating, p.ReviewCount))
	}
	tw.Flush()
}

func formatPrice(price *float64) string {
	if price == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *price)
}

func formatRating(rating *float64, reviewCount *int) string {
	if rating == nil {
		return "-"
	}
	if reviewCount == nil {
		return fmt.Sprintf("%.1f", *rating)
	}
	return fmt.Sprintf("%.1f (%d)", *rating, *reviewCount)
}
