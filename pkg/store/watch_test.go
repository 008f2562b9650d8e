package store

import (
	"context"
	"testing"
	"time"
)

func TestWatchSeesSave(t *testing.T) {
	cfg := &testConfig{path: t.TempDir()}
	p, err := Load(cfg)
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := p.Save(DefaultSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatal("event channel closed before an event arrived")
		}
		if ev.Key != SnapshotKey {
			t.Fatalf("event key = %q, want %q", ev.Key, SnapshotKey)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a change event")
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// A buffered event may still be in flight; the channel must
			// close right after.
			if _, ok := <-events; ok {
				t.Fatal("channel still open after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the channel to close")
	}
}
