package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/studyon/pkg/app"
	"tableflip.dev/studyon/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "studyon",
		Short: base.Wrap80("Study goals, weekly schedule, notes and support on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addRegister(topLevel)
	addPasswd(topLevel)
	addGoal(topLevel)
	addSchedule(topLevel)
	addNote(topLevel)
	addReminder(topLevel)
	addSupport(topLevel)
	addPomodoro(topLevel)
	addVersion(topLevel)
}

// newService loads the configured persistence and wraps it in the service
// facade.
func newService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p}, nil
}

// number parses a 1-based positional argument.
func number(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, raw)
	}
	return n, nil
}
