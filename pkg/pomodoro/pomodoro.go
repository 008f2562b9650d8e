// Package pomodoro implements the focus/break countdown cycles.
package pomodoro

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

var ErrBadCycle = errors.New("pomodoro: focus, break and cycles must be positive")

// Timer runs alternating focus and break countdowns. The break after the
// final cycle is skipped.
type Timer struct {
	Focus  time.Duration
	Break  time.Duration
	Cycles int
	Out    io.Writer
}

// Run counts down each cycle, printing the remaining time once per second,
// until all cycles complete or ctx is cancelled.
func (t *Timer) Run(ctx context.Context) error {
	if t.Focus <= 0 || t.Break <= 0 || t.Cycles <= 0 {
		return ErrBadCycle
	}
	out := t.Out
	if out == nil {
		out = os.Stdout
	}

	for cycle := 1; cycle <= t.Cycles; cycle++ {
		fmt.Fprintf(out, "== Ciclo %d de %d ==\n", cycle, t.Cycles)

		fmt.Fprintln(out, "Foco:")
		if err := countdown(ctx, out, t.Focus); err != nil {
			return err
		}
		fmt.Fprintln(out, "Foco concluído!")

		if cycle < t.Cycles {
			fmt.Fprintln(out, "Pausa:")
			if err := countdown(ctx, out, t.Break); err != nil {
				return err
			}
			fmt.Fprintln(out, "Pausa encerrada! Volte ao foco.")
		}
	}
	return nil
}

func countdown(ctx context.Context, out io.Writer, d time.Duration) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for remaining := int(d.Seconds()); remaining > 0; remaining-- {
		fmt.Fprintln(out, clock(remaining))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// clock formats seconds as MM:SS.
func clock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
