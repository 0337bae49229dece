package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/AbdelhakNemri/sports-arena-client/internal/bootstrap"
	apperrors "github.com/AbdelhakNemri/sports-arena-client/internal/errors"
)

// cmdContext carries the wired application into subcommands. It is populated
// once by the root PersistentPreRunE.
type cmdContext struct {
	app *bootstrap.App
}

func newRootCmd() *cobra.Command {
	cc := &cmdContext{}

	root := &cobra.Command{
		Use:           "arena",
		Short:         "Sports arena platform client",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			logger := bootstrap.InitLogger(cfg.IsDev)

			app, err := bootstrap.NewApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			cc.app = app
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if cc.app == nil {
				return nil
			}
			return cc.app.Close()
		},
	}

	root.AddCommand(
		newLoginCmd(cc),
		newLogoutCmd(cc),
		newWhoamiCmd(cc),
		newDashboardCmd(cc),
		newRouteCmd(cc),
		newNotificationsCmd(cc),
		newProfileCmd(cc),
		newFieldsCmd(cc),
		newBookingsCmd(cc),
		newEventsCmd(cc),
		newAdminCmd(cc),
	)
	return root
}

// printJSON writes the value as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// requireSignIn fails fast with a uniform message for commands that need an
// authenticated session.
func requireSignIn(cc *cmdContext) error {
	if !cc.app.Session.IsAuthenticated() {
		return apperrors.Unauthorized("not signed in, run 'arena login' first")
	}
	return nil
}
