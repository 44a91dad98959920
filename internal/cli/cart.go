package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mirajehossain/ecom-customer/internal/app"
	"github.com/mirajehossain/ecom-customer/internal/domain"
)

func newCartCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}
	cmd.AddCommand(
		newCartShowCmd(a),
		newCartAddCmd(a),
		newCartRemoveCmd(a),
		newCartUpdateCmd(a),
		newCartClearCmd(a),
	)
	return cmd
}

func newCartShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := a.Cart.Get(cmd.Context())
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "cart is empty")
				return nil
			}
			printCart(cmd, items)
			return nil
		},
	}
}

func newCartAddCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
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

			items := a.Cart.Add(cmd.Context(), *product)
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%d items in cart)\n",
				product.Name, items.Count())
			return nil
		},
	}
}

func newCartRemoveCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			items := a.Cart.Remove(cmd.Context(), id)
			fmt.Fprintf(cmd.OutOrStdout(), "removed (%d items in cart)\n", items.Count())
			return nil
		},
	}
}

func newCartUpdateCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set the quantity of a cart line",
		Long:  "Set the quantity of a cart line. A quantity of zero or less removes the line.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}

			// The store keeps quantities verbatim; translating a
			// non-positive quantity into a removal happens here.
			var items domain.CartItems
			if qty <= 0 {
				items = a.Cart.Remove(cmd.Context(), id)
			} else {
				items = a.Cart.Update(cmd.Context(), id, qty)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated (%d items in cart)\n", items.Count())
			return nil
		},
	}
}

func newCartClearCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Cart.Clear(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "cart cleared")
			return nil
		},
	}
}

func printCart(cmd *cobra.Command, items domain.CartItems) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", item.ID, item.Name, item.Price, item.Quantity)
	}
	fmt.Fprintf(w, "\tsubtotal\t%s\t%d\n", items.Subtotal(), items.Count())
	w.Flush()
}
