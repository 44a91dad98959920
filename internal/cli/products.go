package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mirajehossain/ecom-customer/internal/app"
	"github.com/mirajehossain/ecom-customer/internal/catalog"
	"github.com/mirajehossain/ecom-customer/internal/domain"
)

func newProductsCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
	}
	cmd.AddCommand(
		newProductsListCmd(a),
		newProductsShowCmd(a),
		newProductsFeaturedCmd(a),
		newCategoriesCmd(a),
	)
	return cmd
}

func newProductsListCmd(a *app.App) *cobra.Command {
	var (
		search   string
		category int64
		sort     string
		minPrice string
		maxPrice string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			<-a.Catalog.SetFilters(ctx, catalog.Filters{
				Search:     search,
				CategoryID: category,
				Sort:       sort,
				MinPrice:   minPrice,
				MaxPrice:   maxPrice,
			})
			if err := a.Catalog.Err(); err != nil {
				return err
			}

			for all && a.Catalog.HasMore() {
				<-a.Catalog.LoadMore(ctx)
				if err := a.Catalog.Err(); err != nil {
					return err
				}
			}

			if a.Catalog.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "no products found")
				return nil
			}

			printProducts(cmd, a.Catalog.Products())
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d total)\n",
				a.Catalog.Page(), a.Catalog.Pages(), a.Catalog.Total())
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "free-text search term")
	cmd.Flags().Int64Var(&category, "category", 0, "category id (includes subcategories)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "minimum price")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "maximum price")
	cmd.Flags().BoolVar(&all, "all", false, "walk every result page")
	return cmd
}

func newProductsShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			p, err := a.API.Products.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (#%d)\n", p.Name, p.ID)
			fmt.Fprintf(out, "price: %s\n", p.Price)
			if p.Description != "" {
				fmt.Fprintln(out, p.Description)
			}
			if img := p.PrimaryImage(); img != "" {
				fmt.Fprintf(out, "image: %s\n", img)
			}
			return nil
		},
	}
}

func newProductsFeaturedCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "Show featured products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.API.Products.GetFeatured(cmd.Context(), a.Config.FeaturedLimit)
			if err != nil {
				return err
			}
			printProducts(cmd, products)
			return nil
		},
	}
}

func newCategoriesCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.API.Categories.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPARENT")
			for _, c := range categories {
				parent := "-"
				if !c.IsTopLevel() {
					parent = strconv.FormatInt(c.ParentID, 10)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, parent)
			}
			return w.Flush()
		},
	}
}

func printProducts(cmd *cobra.Command, products []domain.Product) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, p.Price)
	}
	w.Flush()
}
