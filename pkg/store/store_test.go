package store

import (
	"context"
	"testing"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string {
	return c.path
}

func TestLoadOnEmptyDir(t *testing.T) {
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	s, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if s.Accounts.Find("admin@sistema.com") == nil {
		t.Fatal("empty store should start from the seeded default")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	cfg := &testConfig{path: t.TempDir()}
	p, err := Load(cfg)
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	s := DefaultSnapshot()
	if _, err := s.Accounts.Register("Ana", "a@x.com", "abc123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := p.Save(s); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Reopen against the same path to defeat the in-process cache.
	p2, err := Load(cfg)
	if err != nil {
		t.Fatalf("reload persistence: %v", err)
	}
	round, err := p2.Load(context.Background())
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if round.Accounts.Find("a@x.com") == nil {
		t.Fatal("saved account not found after reload")
	}
}
