package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mirajehossain/ecom-customer/internal/app"
)

func newWishlistCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the wishlist",
	}
	cmd.AddCommand(
		newWishlistShowCmd(a),
		newWishlistAddCmd(a),
		newWishlistRemoveCmd(a),
		newWishlistClearCmd(a),
	)
	return cmd
}

func newWishlistShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := a.Wishlist.Items()
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "wishlist is empty")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE")
			for _, p := range items {
				fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, p.Price)
			}
			return w.Flush()
		},
	}
}

func newWishlistAddCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			product, err := a.API.Products.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if a.Wishlist.Add(cmd.Context(), *product) {
				fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", product.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already on the wishlist\n", product.Name)
			}
			return nil
		},
	}
}

func newWishlistRemoveCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			if a.Wishlist.Remove(cmd.Context(), id) {
				fmt.Fprintln(cmd.OutOrStdout(), "removed")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "not on the wishlist")
			}
			return nil
		},
	}
}

func newWishlistClearCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Wishlist.Clear(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "wishlist cleared")
			return nil
		},
	}
}
