package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyon/pkg/commands/options"
	"tableflip.dev/studyon/pkg/runner/notes"
)

func addNote(topLevel *cobra.Command) {
	so := &options.SessionOptions{}

	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage free-text notes",
		Example: `
studyon note add "Revisar capítulo 3" -e ana@exemplo.com -p abc123
studyon note search capítulo -e ana@exemplo.com -p abc123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddSessionArgs(cmd, so)

	cmd.AddCommand(&cobra.Command{
		Use:   "add TEXT",
		Short: "Add a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			a := notes.Add{Email: so.Email, Credential: so.Credential, Text: strings.Join(args, " "), Service: svc}
			return a.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			l := notes.List{Email: so.Email, Credential: so.Credential, Service: svc}
			return l.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm NUMBER",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := number("note", args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := notes.Remove{Email: so.Email, Credential: so.Credential, Position: pos, Service: svc}
			return r.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "search TERM",
		Short: "Search notes by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := notes.Search{Email: so.Email, Credential: so.Credential, Term: strings.Join(args, " "), Service: svc}
			return s.Do(context.Background())
		},
	})

	topLevel.AddCommand(cmd)
}
