package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyon/pkg/commands/options"
	"tableflip.dev/studyon/pkg/runner/supportq"
)

func addSupport(topLevel *cobra.Command) {
	so := &options.SessionOptions{}

	cmd := &cobra.Command{
		Use:   "support",
		Short: "File and follow support requests",
		Example: `
studyon support send "Não consigo editar o cronograma" -e ana@exemplo.com -p abc123
studyon support list --all -e admin@sistema.com -p 123456
studyon support answer 1 "Tente reiniciar" -e admin@sistema.com -p 123456
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddSessionArgs(cmd, so)

	cmd.AddCommand(&cobra.Command{
		Use:   "send QUESTION",
		Short: "File a new support request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			f := supportq.File{
				Email:      so.Email,
				Credential: so.Credential,
				Question:   strings.Join(args, " "),
				Service:    svc,
			}
			return f.Do(context.Background())
		},
	})

	addSupportList(cmd, so)

	cmd.AddCommand(&cobra.Command{
		Use:   "answer NUMBER TEXT",
		Short: "Answer a support request (admin only)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := number("ticket", args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			a := supportq.Answer{
				Email:      so.Email,
				Credential: so.Credential,
				Position:   pos,
				Text:       strings.Join(args[1:], " "),
				Service:    svc,
			}
			return a.Do(context.Background())
		},
	})

	topLevel.AddCommand(cmd)
}

func addSupportList(topLevel *cobra.Command, so *options.SessionOptions) {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your requests, or every request with --all (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			if all {
				a := supportq.All{Email: so.Email, Credential: so.Credential, Service: svc}
				return a.Do(context.Background())
			}
			m := supportq.Mine{Email: so.Email, Credential: so.Credential, Service: svc}
			return m.Do(context.Background())
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "List every account's requests.")
	topLevel.AddCommand(cmd)
}
