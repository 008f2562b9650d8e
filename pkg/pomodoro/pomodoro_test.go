package pomodoro

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRunRejectsBadCycle(t *testing.T) {
	cases := []Timer{
		{Focus: 0, Break: time.Second, Cycles: 1},
		{Focus: time.Second, Break: 0, Cycles: 1},
		{Focus: time.Second, Break: time.Second, Cycles: 0},
	}
	for i, tt := range cases {
		if err := tt.Run(context.Background()); !errors.Is(err, ErrBadCycle) {
			t.Fatalf("case %d: expected ErrBadCycle, got %v", i, err)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	timer := Timer{Focus: time.Minute, Break: time.Minute, Cycles: 2, Out: &out}
	if err := timer.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !strings.Contains(out.String(), "== Ciclo 1 de 2 ==") {
		t.Fatalf("cycle header missing: %q", out.String())
	}
}

func TestRunSkipsBreakAfterLastCycle(t *testing.T) {
	var out bytes.Buffer
	timer := Timer{Focus: time.Second, Break: time.Second, Cycles: 1, Out: &out}
	if err := timer.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Foco concluído!") {
		t.Fatalf("focus end marker missing: %q", text)
	}
	if strings.Contains(text, "Pausa:") {
		t.Fatalf("single cycle must not take a break: %q", text)
	}
}

func TestClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		59:   "00:59",
		60:   "01:00",
		1500: "25:00",
	}
	for in, want := range cases {
		if got := clock(in); got != want {
			t.Fatalf("clock(%d) = %q, want %q", in, got, want)
		}
	}
}
