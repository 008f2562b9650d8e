package commands

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/studyon/pkg/pomodoro"
)

func addPomodoro(topLevel *cobra.Command) {
	var focus, pause, cycles int

	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Run focus/break countdown cycles",
		Example: `
studyon pomodoro --focus 25 --break 5 --cycles 4
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			t := pomodoro.Timer{
				Focus:  time.Duration(focus) * time.Minute,
				Break:  time.Duration(pause) * time.Minute,
				Cycles: cycles,
			}
			if err := t.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&focus, "focus", 25, "Focus minutes per cycle.")
	cmd.Flags().IntVar(&pause, "break", 5, "Break minutes between cycles.")
	cmd.Flags().IntVar(&cycles, "cycles", 1, "Number of cycles.")

	topLevel.AddCommand(cmd)
}
