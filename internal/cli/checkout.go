package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirajehossain/ecom-customer/internal/app"
	"github.com/mirajehossain/ecom-customer/internal/domain"
)

func newCheckoutCmd(a *app.App) *cobra.Command {
	var (
		addr  domain.ShippingAddress
		notes string
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.Checkout.Submit(cmd.Context(), addr, notes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order #%d created\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&addr.FirstName, "first-name", "", "recipient first name")
	cmd.Flags().StringVar(&addr.LastName, "last-name", "", "recipient last name")
	cmd.Flags().StringVar(&addr.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&addr.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&addr.Address, "address", "", "street address")
	cmd.Flags().StringVar(&addr.City, "city", "", "city")
	cmd.Flags().StringVar(&addr.State, "state", "", "state or region")
	cmd.Flags().StringVar(&addr.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&addr.Country, "country", "", "country")
	cmd.Flags().StringVar(&notes, "notes", "", "delivery notes")
	return cmd
}
