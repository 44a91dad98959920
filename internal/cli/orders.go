package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mirajehossain/ecom-customer/internal/app"
)

func newOrdersCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "View order history",
	}
	cmd.AddCommand(newOrdersListCmd(a), newOrdersShowCmd(a))
	return cmd
}

func newOrdersListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := a.API.Orders.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no orders yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNUMBER\tSTATUS\tTOTAL\tPLACED")
			for _, o := range orders {
				placed := ""
				if !o.CreatedAt.IsZero() {
					placed = o.CreatedAt.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					o.ID, o.OrderNumber, o.Status, o.Total, placed)
			}
			return w.Flush()
		},
	}
}

func newOrdersShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one order with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}

			detail, err := a.API.Orders.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			o := detail.Order
			fmt.Fprintf(out, "order %s (#%d) %s\n", o.OrderNumber, o.ID, o.Status)
			fmt.Fprintf(out, "subtotal %s, tax %s, shipping %s, total %s\n",
				o.Subtotal, o.Tax, o.Shipping, o.Total)

			if addr, err := o.DecodeShippingAddress(); err == nil {
				fmt.Fprintf(out, "ship to: %s %s, %s, %s %s\n",
					addr.FirstName, addr.LastName, addr.Address, addr.City, addr.PostalCode)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRODUCT\tNAME\tPRICE\tQTY")
			for _, item := range detail.Items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n",
					item.ProductID, item.Name, item.Price, item.Quantity)
			}
			return w.Flush()
		},
	}
}
