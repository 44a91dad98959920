package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirajehossain/ecom-customer/pkg/validator"

	"github.com/mirajehossain/ecom-customer/internal/api"
	"github.com/mirajehossain/ecom-customer/internal/app"
)

func newLoginCmd(a *app.App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store session tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds := api.Credentials{Email: email, Password: password}
			if err := validator.Validate(creds); err != nil {
				return err
			}
			if err := a.API.Auth.Login(cmd.Context(), creds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app.App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.RegisterRequest{Name: name, Email: email, Password: password}
			if err := validator.Validate(req); err != nil {
				return err
			}
			if err := a.API.Auth.Register(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "account created, sign in with `storefront login`")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newMeCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in account profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.Session.LoggedIn(cmd.Context()) {
				return fmt.Errorf("not signed in")
			}

			user, err := a.API.Auth.Me(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s> (#%d)\n", user.Name, user.Email, user.ID)
			if user.Phone != "" {
				fmt.Fprintf(out, "phone: %s\n", user.Phone)
			}
			if user.Address != "" {
				fmt.Fprintf(out, "address: %s\n", user.Address)
			}
			return nil
		},
	}
}

func newLogoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard session tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.API.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}
