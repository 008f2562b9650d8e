// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// SessionOptions carries the credentials every authenticated command needs.
type SessionOptions struct {
	Email      string
	Credential string
}

// AddSessionArgs wires the credential flags as required persistent flags so
// every subcommand inherits them.
func AddSessionArgs(cmd *cobra.Command, o *SessionOptions) {
	cmd.PersistentFlags().StringVarP(&o.Email, "email", "e", "",
		"Account email.")
	cmd.PersistentFlags().StringVarP(&o.Credential, "password", "p", "",
		"Account password.")
	_ = cmd.MarkPersistentFlagRequired("email")
	_ = cmd.MarkPersistentFlagRequired("password")
}

// PriorityOptions selects a goal priority.
type PriorityOptions struct {
	Priority string
}

func AddPriorityArgs(cmd *cobra.Command, o *PriorityOptions) {
	cmd.Flags().StringVar(&o.Priority, "priority", "media",
		"Goal priority: alta, media or baixa.")
}
