package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	apperrors "github.com/AbdelhakNemri/sports-arena-client/internal/errors"
)

func newNotificationsCmd(cc *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Read and manage the notification feed",
	}

	cmd.AddCommand(
		newNotificationsListCmd(cc),
		newNotificationsCountCmd(cc),
		newNotificationsWatchCmd(cc),
		newNotificationsReadCmd(cc),
		newNotificationsReadAllCmd(cc),
		newNotificationsDeleteCmd(cc),
	)
	return cmd
}

func newNotificationsListCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Fetch the feed once and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			cc.app.Poller.Refresh(cmd.Context())
			return printJSON(cc.app.Poller.Notifications())
		},
	}
}

func newNotificationsCountCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the unread count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			cc.app.Poller.Refresh(cmd.Context())
			fmt.Println(cc.app.Poller.UnreadCount())
			return nil
		},
	}
}

func newNotificationsWatchCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Poll the feed until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}

			cc.app.Poller.Start()
			defer cc.app.Poller.Stop()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sig)

			select {
			case <-cmd.Context().Done():
			case <-sig:
			}
			return nil
		},
	}
}

func newNotificationsReadCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark one notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := cc.app.Poller.MarkAsRead(cmd.Context(), id); err != nil {
				if apperrors.IsNotFound(err) {
					return fmt.Errorf("notification %d not found", id)
				}
				return err
			}
			return nil
		},
	}
}

func newNotificationsReadAllCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification read",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			return cc.app.Poller.MarkAllAsRead(cmd.Context())
		},
	}
}

func newNotificationsDeleteCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := cc.app.Poller.DeleteNotification(cmd.Context(), id); err != nil {
				if apperrors.IsNotFound(err) {
					return fmt.Errorf("notification %d not found", id)
				}
				return err
			}
			return nil
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Validationf("invalid id %q", raw)
	}
	return id, nil
}
