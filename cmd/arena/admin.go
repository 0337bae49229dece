package main

import (
	"github.com/spf13/cobra"

	apperrors "github.com/AbdelhakNemri/sports-arena-client/internal/errors"
)

func newAdminCmd(cc *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administration dashboard",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Run the root wiring first; cobra only executes the innermost hook.
			if parent := cmd.Root(); parent.PersistentPreRunE != nil {
				if err := parent.PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}
			if err := requireSignIn(cc); err != nil {
				return err
			}
			if !cc.app.Session.IsAdmin() {
				return apperrors.Forbidden("requires the ADMIN role")
			}
			return nil
		},
	}

	health := &cobra.Command{
		Use:   "health",
		Short: "Probe every backend service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cc.app.Gateway.Admin().AllServicesHealth(cmd.Context()))
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show platform-wide statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cc.app.Gateway.Admin().SystemStats(cmd.Context()))
		},
	}

	users := &cobra.Command{
		Use:   "users",
		Short: "List every registered user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := cc.app.Gateway.Admin().AllUsers(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.AddCommand(health, stats, users)
	return cmd
}
