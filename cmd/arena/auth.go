package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/AbdelhakNemri/sports-arena-client/internal/errors"
	"github.com/AbdelhakNemri/sports-arena-client/internal/service"
)

func newLoginCmd(cc *cmdContext) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username == "" {
				return apperrors.Validation("--username is required")
			}
			if password == "" {
				var err error
				password, err = readPassword()
				if err != nil {
					return err
				}
			}

			if err := cc.app.Auth.Login(cmd.Context(), username, password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := cc.app.Auth.RedirectToDashboard(cmd.Context()); err != nil {
				return err
			}

			info, _ := cc.app.Session.AuthUser()
			return printJSON(info)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
	return cmd
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLogoutCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and drop the stored token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc.app.Auth.Logout(cmd.Context())
			return nil
		},
	}
}

func newWhoamiCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity and roles",
		RunE: func(*cobra.Command, []string) error {
			info, ok := cc.app.Session.AuthUser()
			if !ok {
				return fmt.Errorf("not signed in")
			}
			return printJSON(info)
		},
	}
}

func newDashboardCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Resolve the dashboard route for the primary role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			return cc.app.Auth.RedirectToDashboard(cmd.Context())
		},
	}
}

func newRouteCmd(cc *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route <path>",
		Short: "Evaluate route guards for a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, route := range service.Routes() {
				if route.Path != args[0] {
					continue
				}
				decision, err := cc.app.Guards.CheckRoute(cmd.Context(), route)
				if err != nil {
					return err
				}
				return printJSON(decision)
			}
			return fmt.Errorf("unknown route %q", args[0])
		},
	}
	return cmd
}
