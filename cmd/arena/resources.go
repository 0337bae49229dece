package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
	apperrors "github.com/AbdelhakNemri/sports-arena-client/internal/errors"
)

func newProfileCmd(cc *cmdContext) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the player profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			players := cc.app.Gateway.Players()

			if email != "" {
				user, err := players.ByEmail(cmd.Context(), email)
				if err != nil {
					return err
				}
				return printJSON(user)
			}

			user, err := players.Me(cmd.Context())
			if err != nil {
				return err
			}
			cc.app.Session.SetCurrentUser(&user)
			return printJSON(user)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "look up another player by email")
	cmd.AddCommand(newProfileUpdateCmd(cc))
	return cmd
}

func newProfileUpdateCmd(cc *cmdContext) *cobra.Command {
	var firstName, lastName, position, phone, bio string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the signed-in player's profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			players := cc.app.Gateway.Players()

			me, err := players.Me(cmd.Context())
			if err != nil {
				return err
			}

			var patch model.UserPatch
			set := func(dst **string, flag string, value *string) {
				if cmd.Flags().Changed(flag) {
					*dst = value
				}
			}
			set(&patch.FirstName, "first-name", &firstName)
			set(&patch.LastName, "last-name", &lastName)
			set(&patch.Position, "position", &position)
			set(&patch.Phone, "phone", &phone)
			set(&patch.Bio, "bio", &bio)

			if patch == (model.UserPatch{}) {
				return apperrors.Validation("nothing to update, pass at least one flag")
			}

			updated, err := players.Update(cmd.Context(), me.ID, patch)
			if err != nil {
				return err
			}
			cc.app.Session.SetCurrentUser(&updated)
			return printJSON(updated)
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&position, "position", "", "playing position")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&bio, "bio", "", "short bio")
	return cmd
}

func newFieldsCmd(cc *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Browse sports fields",
	}

	var city, fieldType string
	list := &cobra.Command{
		Use:   "list",
		Short: "List fields, optionally filtered by city or type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			fields := cc.app.Gateway.Fields()

			if city != "" || fieldType != "" {
				found, err := fields.Search(cmd.Context(), city, fieldType)
				if err != nil {
					return err
				}
				return printJSON(found)
			}

			all, err := fields.All(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(all)
		},
	}
	list.Flags().StringVar(&city, "city", "", "filter by city")
	list.Flags().StringVar(&fieldType, "type", "", "filter by field type")

	mine := &cobra.Command{
		Use:   "mine",
		Short: "List fields owned by the signed-in owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			fields, err := cc.app.Gateway.Fields().Mine(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(fields)
		},
	}

	availability := &cobra.Command{
		Use:   "availability <id>",
		Short: "Show availability slots for a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			slots, err := cc.app.Gateway.Fields().Availability(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(slots)
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			field, err := cc.app.Gateway.Fields().Get(cmd.Context(), id)
			if err != nil {
				if apperrors.IsNotFound(err) {
					return fmt.Errorf("field %d not found", id)
				}
				return err
			}
			return printJSON(field)
		},
	}

	cmd.AddCommand(list, mine, availability, show, newFieldCreateCmd(cc), newFieldDeleteCmd(cc))
	return cmd
}

func newFieldCreateCmd(cc *cmdContext) *cobra.Command {
	var req model.CreateFieldRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new field (owner)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			if req.Name == "" {
				return apperrors.Validation("--name is required")
			}
			field, err := cc.app.Gateway.Fields().Create(cmd.Context(), req)
			if err != nil {
				if apperrors.IsForbidden(err) {
					return fmt.Errorf("creating fields requires the OWNER role: %w", err)
				}
				return err
			}
			return printJSON(field)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "field name")
	cmd.Flags().StringVar(&req.Type, "type", "", "field type, e.g. FOOTBALL")
	cmd.Flags().StringVar(&req.City, "city", "", "city")
	cmd.Flags().StringVar(&req.Address, "address", "", "street address")
	cmd.Flags().StringVar(&req.Description, "description", "", "description")
	cmd.Flags().Float64Var(&req.PricePerHour, "price", 0, "price per hour")
	cmd.Flags().IntVar(&req.Capacity, "capacity", 0, "player capacity")
	return cmd
}

func newFieldDeleteCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a field (owner)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := cc.app.Gateway.Fields().Delete(cmd.Context(), id); err != nil {
				if apperrors.IsNotFound(err) {
					return fmt.Errorf("field %d not found", id)
				}
				return err
			}
			return nil
		},
	}
}

func newBookingsCmd(cc *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Browse bookings",
	}

	mine := &cobra.Command{
		Use:   "mine",
		Short: "List the signed-in player's bookings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			bookings, err := cc.app.Gateway.Bookings().Mine(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(bookings)
		},
	}

	ownerAll := &cobra.Command{
		Use:   "owner",
		Short: "List bookings across the owner's fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			bookings, err := cc.app.Gateway.Bookings().OwnerAll(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(bookings)
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show booking statistics for the owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			s, err := cc.app.Gateway.Bookings().OwnerStats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(s)
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			booking, err := cc.app.Gateway.Bookings().Get(cmd.Context(), id)
			if err != nil {
				if apperrors.IsNotFound(err) {
					return fmt.Errorf("booking %d not found", id)
				}
				return err
			}
			return printJSON(booking)
		},
	}

	cmd.AddCommand(mine, ownerAll, stats, show, newBookingCreateCmd(cc), newBookingStatusCmd(cc))
	return cmd
}

func newBookingCreateCmd(cc *cmdContext) *cobra.Command {
	var req model.CreateBookingRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a field slot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			if req.FieldID == 0 || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
				return apperrors.Validation("--field, --date, --start and --end are required")
			}
			booking, err := cc.app.Gateway.Bookings().Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(booking)
		},
	}

	cmd.Flags().Int64Var(&req.FieldID, "field", 0, "field id")
	cmd.Flags().StringVar(&req.Date, "date", "", "booking date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.StartTime, "start", "", "start time, HH:MM")
	cmd.Flags().StringVar(&req.EndTime, "end", "", "end time, HH:MM")
	return cmd
}

func newBookingStatusCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <PENDING|CONFIRMED|CANCELLED|COMPLETED>",
		Short: "Update a booking's status (owner)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := parseBookingStatus(args[1])
			if err != nil {
				return err
			}
			booking, err := cc.app.Gateway.Bookings().UpdateStatus(cmd.Context(), id, status)
			if err != nil {
				if apperrors.IsForbidden(err) {
					return fmt.Errorf("updating booking status requires the OWNER role: %w", err)
				}
				return err
			}
			return printJSON(booking)
		},
	}
}

func parseBookingStatus(raw string) (model.BookingStatus, error) {
	switch status := model.BookingStatus(strings.ToUpper(raw)); status {
	case model.BookingPending, model.BookingConfirmed, model.BookingCancelled, model.BookingCompleted:
		return status, nil
	default:
		return "", apperrors.Validationf("unknown booking status %q", raw)
	}
}

func newEventsCmd(cc *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Browse and join events",
	}

	available := &cobra.Command{
		Use:   "list",
		Short: "List events open for participation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			events, err := cc.app.Gateway.Events().Available(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(events)
		},
	}

	mine := &cobra.Command{
		Use:   "mine",
		Short: "List events created by the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			events, err := cc.app.Gateway.Events().Mine(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(events)
		},
	}

	participations := &cobra.Command{
		Use:   "participations",
		Short: "List events the signed-in user joined",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			events, err := cc.app.Gateway.Events().MyParticipations(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(events)
		},
	}

	join := &cobra.Command{
		Use:   "join <id>",
		Short: "Join an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return cc.app.Gateway.Events().Join(cmd.Context(), id)
		},
	}

	cmd.AddCommand(available, mine, participations, join, newEventCreateCmd(cc), newEventRespondCmd(cc))
	return cmd
}

func newEventCreateCmd(cc *cmdContext) *cobra.Command {
	var req model.CreateEventRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			if req.Title == "" || req.Date == "" {
				return apperrors.Validation("--title and --date are required")
			}
			event, err := cc.app.Gateway.Events().Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(event)
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "event title")
	cmd.Flags().StringVar(&req.Description, "description", "", "description")
	cmd.Flags().Int64Var(&req.FieldID, "field", 0, "field id")
	cmd.Flags().StringVar(&req.Date, "date", "", "event date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.StartTime, "start", "", "start time, HH:MM")
	cmd.Flags().IntVar(&req.MaxParticipants, "max", 0, "participant cap")
	return cmd
}

func newEventRespondCmd(cc *cmdContext) *cobra.Command {
	var accept, decline bool
	var message string

	cmd := &cobra.Command{
		Use:   "respond <id>",
		Short: "Accept or decline an event invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSignIn(cc); err != nil {
				return err
			}
			if accept == decline {
				return apperrors.Validation("pass exactly one of --accept or --decline")
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp := model.EventResponse{Accepted: accept, Message: message}
			if err := cc.app.Gateway.Events().Respond(cmd.Context(), id, resp); err != nil {
				if apperrors.IsNotFound(err) {
					return fmt.Errorf("event %d not found", id)
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&accept, "accept", false, "accept the invitation")
	cmd.Flags().BoolVar(&decline, "decline", false, "decline the invitation")
	cmd.Flags().StringVar(&message, "message", "", "optional note to the organizer")
	return cmd
}
