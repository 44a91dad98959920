// Package cli implements the storefront command line front end. Commands are
// presentation only: they format what the underlying stores and services
// return and never contain business rules of their own.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mirajehossain/ecom-customer/internal/app"
)

// New builds the root command over a wired application.
func New(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront client for the commerce API",
		Long:          "Browse products, manage a cart and wishlist, and place orders against the commerce API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProductsCmd(a),
		newCartCmd(a),
		newWishlistCmd(a),
		newOrdersCmd(a),
		newCheckoutCmd(a),
		newLoginCmd(a),
		newRegisterCmd(a),
		newMeCmd(a),
		newLogoutCmd(a),
	)
	return root
}
