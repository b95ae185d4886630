package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage your favorite perfumes",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite perfumes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ids := client.Collections().FavoriteIDs()
		if len(ids) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")
			return nil
		}
		for _, id := range ids {
			if perfume, err := client.Catalog().Perfume(id); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s by %s\n", id, perfume.Name, perfume.Brand.Name)
			} else {
				// Favorites survive catalog changes; show the bare ID.
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
		}
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <perfume-id>",
	Short: "Add a perfume to favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if _, err := client.Catalog().Perfume(args[0]); err != nil {
			return err
		}
		if err := client.Collections().AddFavorite(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites.\n", args[0])
		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <perfume-id>",
	Short: "Remove a perfume from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.Collections().RemoveFavorite(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites.\n", args[0])
		return nil
	},
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all favorites",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.Collections().ClearFavorites(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Favorites cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesClearCmd)
}
