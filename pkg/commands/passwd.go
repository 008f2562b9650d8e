package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyon/pkg/runner/passwd"
)

func addPasswd(topLevel *cobra.Command) {
	var email, newPassword, confirmation string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Reset an account password",
		Example: `
studyon passwd --email ana@exemplo.com --new abc1234 --confirm abc1234
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := passwd.Reset{
				Email:        email,
				New:          newPassword,
				Confirmation: confirmation,
				Service:      svc,
			}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email.")
	cmd.Flags().StringVar(&newPassword, "new", "", "New password (min 6 chars, 1 digit).")
	cmd.Flags().StringVar(&confirmation, "confirm", "", "New password again.")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("new")
	_ = cmd.MarkFlagRequired("confirm")

	topLevel.AddCommand(cmd)
}
