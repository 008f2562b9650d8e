package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyon/pkg/commands/options"
	"tableflip.dev/studyon/pkg/runner/reminders"
)

func addReminder(topLevel *cobra.Command) {
	so := &options.SessionOptions{}

	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddSessionArgs(cmd, so)

	cmd.AddCommand(&cobra.Command{
		Use:   "add TEXT",
		Short: "Add a reminder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			a := reminders.Add{Email: so.Email, Credential: so.Credential, Text: strings.Join(args, " "), Service: svc}
			return a.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			l := reminders.List{Email: so.Email, Credential: so.Credential, Service: svc}
			return l.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit NUMBER TEXT",
		Short: "Rewrite a reminder",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := number("reminder", args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			e := reminders.Edit{
				Email:      so.Email,
				Credential: so.Credential,
				Position:   pos,
				Text:       strings.Join(args[1:], " "),
				Service:    svc,
			}
			return e.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm NUMBER",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := number("reminder", args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := reminders.Remove{Email: so.Email, Credential: so.Credential, Position: pos, Service: svc}
			return r.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "search TERM",
		Short: "Search reminders by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := reminders.Search{Email: so.Email, Credential: so.Credential, Term: strings.Join(args, " "), Service: svc}
			return s.Do(context.Background())
		},
	})

	topLevel.AddCommand(cmd)
}
