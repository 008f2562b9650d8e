package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyon/pkg/commands/options"
	"tableflip.dev/studyon/pkg/runner/grid"
	"tableflip.dev/studyon/pkg/schedule"
)

func addSchedule(topLevel *cobra.Command) {
	so := &options.SessionOptions{}

	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"cron"},
		Short:   "Manage the weekly schedule grid",
		Example: `
studyon schedule view -e ana@exemplo.com -p abc123
studyon schedule set "07:00 - 08:00" Segunda "Matemática" -e ana@exemplo.com -p abc123
studyon schedule report Segunda -e ana@exemplo.com -p abc123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddSessionArgs(cmd, so)

	addScheduleView(cmd, so)
	addScheduleReport(cmd, so)
	addScheduleSet(cmd, so)
	addScheduleActivities(cmd, so)
	addScheduleEdit(cmd, so)
	addScheduleRm(cmd, so)
	addScheduleSlot(cmd, so)

	topLevel.AddCommand(cmd)
}

func addScheduleView(topLevel *cobra.Command, so *options.SessionOptions) {
	var watch bool

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print the full schedule grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			v := grid.View{Email: so.Email, Credential: so.Credential, Watch: watch, Service: svc}
			return v.Do(context.Background())
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep the grid on screen and reprint when the store changes.")
	topLevel.AddCommand(cmd)
}

func addScheduleReport(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "report DAY",
		Short: "Print the daily report for a weekday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := grid.Report{Email: so.Email, Credential: so.Credential, Day: args[0], Service: svc}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addScheduleSet(topLevel *cobra.Command, so *options.SessionOptions) {
	var appendMode bool

	cmd := &cobra.Command{
		Use:   "set SLOT DAY ACTIVITY",
		Short: "Write an activity into a cell",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			mode := schedule.Replace
			if appendMode {
				mode = schedule.Append
			}
			s := grid.Set{
				Email:      so.Email,
				Credential: so.Credential,
				Slot:       args[0],
				Day:        args[1],
				Text:       strings.Join(args[2:], " "),
				Mode:       mode,
				Service:    svc,
			}
			return s.Do(context.Background())
		},
	}
	cmd.Flags().BoolVarP(&appendMode, "append", "a", false,
		"Add the activity alongside existing cell content instead of replacing it.")
	topLevel.AddCommand(cmd)
}

func addScheduleActivities(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "activities SLOT DAY",
		Short: "List the activities inside one cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			a := grid.Activities{Email: so.Email, Credential: so.Credential, Slot: args[0], Day: args[1], Service: svc}
			return a.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addScheduleEdit(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "edit SLOT DAY POSITION ACTIVITY",
		Short: "Rewrite one activity inside a cell",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := number("position", args[2])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			e := grid.EditActivity{
				Email:      so.Email,
				Credential: so.Credential,
				Slot:       args[0],
				Day:        args[1],
				Position:   pos,
				Text:       strings.Join(args[3:], " "),
				Service:    svc,
			}
			return e.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addScheduleRm(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "rm SLOT DAY POSITION",
		Short: "Remove one activity from a cell",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := number("position", args[2])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := grid.RemoveActivity{
				Email:      so.Email,
				Credential: so.Credential,
				Slot:       args[0],
				Day:        args[1],
				Position:   pos,
				Service:    svc,
			}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addScheduleSlot(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Manage time-slot rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add LABEL",
		Short: "Add a time slot (grid re-sorts by label)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			a := grid.AddSlot{Email: so.Email, Credential: so.Credential, Label: args[0], Service: svc}
			return a.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit OLD NEW",
		Short: "Rename a time slot in place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			e := grid.EditSlot{Email: so.Email, Credential: so.Credential, Old: args[0], New: args[1], Service: svc}
			return e.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm LABEL",
		Short: "Delete a time slot and its row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := grid.RemoveSlot{Email: so.Email, Credential: so.Credential, Label: args[0], Service: svc}
			return r.Do(context.Background())
		},
	})

	topLevel.AddCommand(cmd)
}
