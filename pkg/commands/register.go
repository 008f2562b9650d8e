package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyon/pkg/runner/register"
)

func addRegister(topLevel *cobra.Command) {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Example: `
studyon register --name Ana --email ana@exemplo.com --password abc123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := register.Register{
				Name:       name,
				Email:      email,
				Credential: password,
				Service:    svc,
			}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name for the account.")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email.")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (min 6 chars, 1 digit).")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	topLevel.AddCommand(cmd)
}
