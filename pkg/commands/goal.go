package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyon/pkg/commands/options"
	"tableflip.dev/studyon/pkg/runner/goals"
)

func addGoal(topLevel *cobra.Command) {
	so := &options.SessionOptions{}

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals and sub-goals",
		Example: `
studyon goal add "Estudar Go" --priority alta -e ana@exemplo.com -p abc123
studyon goal list -e ana@exemplo.com -p abc123
studyon goal sub progress 1 2 50 -e ana@exemplo.com -p abc123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddSessionArgs(cmd, so)

	addGoalAdd(cmd, so)
	addGoalList(cmd, so)
	addGoalProgress(cmd, so)
	addGoalDone(cmd, so)
	addGoalRename(cmd, so)
	addGoalRm(cmd, so)
	addGoalPriority(cmd, so)
	addGoalSub(cmd, so)

	topLevel.AddCommand(cmd)
}

func addGoalAdd(topLevel *cobra.Command, so *options.SessionOptions) {
	po := &options.PriorityOptions{}

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			a := goals.Add{
				Email:      so.Email,
				Credential: so.Credential,
				Name:       strings.Join(args, " "),
				Priority:   po.Priority,
				Service:    svc,
			}
			return a.Do(context.Background())
		},
	}
	options.AddPriorityArgs(cmd, po)
	topLevel.AddCommand(cmd)
}

func addGoalList(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals with status and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			l := goals.List{Email: so.Email, Credential: so.Credential, Service: svc}
			return l.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addGoalProgress(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show overall goal progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := goals.Progress{Email: so.Email, Credential: so.Credential, Service: svc}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addGoalDone(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "done GOAL",
		Short: "Toggle a goal's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := number("goal", args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			t := goals.Toggle{Email: so.Email, Credential: so.Credential, Goal: i, Service: svc}
			return t.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addGoalRename(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "rename GOAL NAME",
		Short: "Rename a goal",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := number("goal", args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := goals.Rename{
				Email:      so.Email,
				Credential: so.Credential,
				Goal:       i,
				Name:       strings.Join(args[1:], " "),
				Service:    svc,
			}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addGoalRm(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "rm GOAL",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := number("goal", args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := goals.Remove{Email: so.Email, Credential: so.Credential, Goal: i, Service: svc}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addGoalPriority(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "priority GOAL PRIORITY",
		Short: "Change a goal's priority",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := number("goal", args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s := goals.SetPriority{
				Email:      so.Email,
				Credential: so.Credential,
				Goal:       i,
				Priority:   args[1],
				Service:    svc,
			}
			return s.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addGoalSub(topLevel *cobra.Command, so *options.SessionOptions) {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Manage sub-goals of a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add GOAL NAME",
		Short: "Add a sub-goal",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := number("goal", args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			a := goals.AddSub{
				Email:      so.Email,
				Credential: so.Credential,
				Goal:       i,
				Name:       strings.Join(args[1:], " "),
				Service:    svc,
			}
			return a.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list GOAL",
		Short: "List a goal's sub-goals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := number("goal", args[0])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			l := goals.ListSubs{Email: so.Email, Credential: so.Credential, Goal: i, Service: svc}
			return l.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "progress GOAL SUB VALUE",
		Short: "Set a sub-goal's progress (0-100)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := number("goal", args[0])
			if err != nil {
				return err
			}
			j, err := number("sub-goal", args[1])
			if err != nil {
				return err
			}
			v, err := number("progress", args[2])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s := goals.SetSubProgress{
				Email:      so.Email,
				Credential: so.Credential,
				Goal:       i,
				Sub:        j,
				Value:      v,
				Service:    svc,
			}
			return s.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "done GOAL SUB",
		Short: "Toggle a sub-goal's completed flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := number("goal", args[0])
			if err != nil {
				return err
			}
			j, err := number("sub-goal", args[1])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			t := goals.ToggleSub{Email: so.Email, Credential: so.Credential, Goal: i, Sub: j, Service: svc}
			return t.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename GOAL SUB NAME",
		Short: "Rename a sub-goal",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := number("goal", args[0])
			if err != nil {
				return err
			}
			j, err := number("sub-goal", args[1])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := goals.RenameSub{
				Email:      so.Email,
				Credential: so.Credential,
				Goal:       i,
				Sub:        j,
				Name:       strings.Join(args[2:], " "),
				Service:    svc,
			}
			return r.Do(context.Background())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm GOAL SUB",
		Short: "Delete a sub-goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := number("goal", args[0])
			if err != nil {
				return err
			}
			j, err := number("sub-goal", args[1])
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := goals.RemoveSub{Email: so.Email, Credential: so.Credential, Goal: i, Sub: j, Service: svc}
			return r.Do(context.Background())
		},
	})

	topLevel.AddCommand(cmd)
}
