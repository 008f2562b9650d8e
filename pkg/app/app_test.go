package app

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/studyon/pkg/account"
	"tableflip.dev/studyon/pkg/profile"
	"tableflip.dev/studyon/pkg/store"
)

// memoryPersistence keeps the snapshot in memory and counts writes so tests
// can assert that failed operations never persist.
type memoryPersistence struct {
	snap  *store.Snapshot
	saves int
}

func (m *memoryPersistence) Load(_ context.Context) (*store.Snapshot, error) {
	if m.snap == nil {
		m.snap = store.DefaultSnapshot()
	}
	return m.snap, nil
}

func (m *memoryPersistence) Save(s *store.Snapshot) error {
	m.snap = s
	m.saves++
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newService() (*Service, *memoryPersistence) {
	m := &memoryPersistence{}
	return &Service{Persistence: m}, m
}

func TestRegisterCreatesProfileAndSaves(t *testing.T) {
	s, m := newService()
	ctx := context.Background()

	acc, err := s.Register(ctx, "Ana", "Ana@X.com", "abc123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if acc.Admin {
		t.Fatal("registered accounts are never admin")
	}
	if m.saves != 1 {
		t.Fatalf("expected 1 save, got %d", m.saves)
	}
	if _, ok := m.snap.Profiles["ana@x.com"]; !ok {
		t.Fatal("registration should eagerly create the profile")
	}

	if _, err := s.Register(ctx, "Outra", "ana@x.com", "xyz789"); !errors.Is(err, account.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if m.saves != 1 {
		t.Fatalf("failed register must not save, got %d saves", m.saves)
	}
}

func TestWithProfileFailureDoesNotSave(t *testing.T) {
	s, m := newService()
	ctx := context.Background()
	if _, err := s.Register(ctx, "Ana", "a@x.com", "abc123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	saves := m.saves

	boom := errors.New("boom")
	err := s.WithProfile(ctx, "a@x.com", "abc123", func(_ *profile.Profile) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error, got %v", err)
	}
	if m.saves != saves {
		t.Fatal("failed mutation must not save")
	}

	err = s.WithProfile(ctx, "a@x.com", "abc123", func(p *profile.Profile) error {
		return p.AddNote("ok")
	})
	if err != nil {
		t.Fatalf("with profile: %v", err)
	}
	if m.saves != saves+1 {
		t.Fatalf("successful mutation should save once, got %d", m.saves-saves)
	}
}

func TestWithProfileRequiresCredentials(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	if _, err := s.Register(ctx, "Ana", "a@x.com", "abc123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := s.WithProfile(ctx, "a@x.com", "wrong1", func(_ *profile.Profile) error { return nil })
	if !errors.Is(err, account.ErrWrongCredential) {
		t.Fatalf("expected ErrWrongCredential, got %v", err)
	}
}

func TestFileTicket(t *testing.T) {
	s, m := newService()
	ctx := context.Background()
	if _, err := s.Register(ctx, "Ana", "a@x.com", "abc123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	saves := m.saves

	if err := s.FileTicket(ctx, "a@x.com", "abc123", "  "); err != nil {
		t.Fatalf("blank question should be a silent no-op, got %v", err)
	}
	if m.saves != saves {
		t.Fatal("no-op must not save")
	}

	if err := s.FileTicket(ctx, "a@x.com", "abc123", "dúvida"); err != nil {
		t.Fatalf("file ticket: %v", err)
	}
	if m.saves != saves+1 {
		t.Fatal("filed ticket should save")
	}

	if err := s.FileTicket(ctx, "admin@sistema.com", "123456", "q"); !errors.Is(err, ErrAdminAccount) {
		t.Fatalf("expected ErrAdminAccount, got %v", err)
	}
}

func TestTicketVisibilityAndAnswering(t *testing.T) {
	s, _ := newService()
	ctx := context.Background()
	if _, err := s.Register(ctx, "Ana", "a@x.com", "abc123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Register(ctx, "Bia", "b@x.com", "abc123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := s.FileTicket(ctx, "a@x.com", "abc123", "first"); err != nil {
		t.Fatalf("file: %v", err)
	}
	if err := s.FileTicket(ctx, "b@x.com", "abc123", "second"); err != nil {
		t.Fatalf("file: %v", err)
	}

	mine, err := s.MyTickets(ctx, "a@x.com", "abc123")
	if err != nil {
		t.Fatalf("my tickets: %v", err)
	}
	if len(mine) != 1 || mine[0].Question != "first" {
		t.Fatalf("unexpected tickets: %+v", mine)
	}

	if _, err := s.AllTickets(ctx, "a@x.com", "abc123"); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
	all, err := s.AllTickets(ctx, "admin@sistema.com", "123456")
	if err != nil {
		t.Fatalf("all tickets: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(all))
	}

	if err := s.AnswerTicket(ctx, "a@x.com", "abc123", 1, "no"); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
	if err := s.AnswerTicket(ctx, "admin@sistema.com", "123456", 2, "done"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !all[1].Answered || all[1].Answer != "done" {
		t.Fatalf("ticket 2 not resolved: %+v", all[1])
	}
}

func TestResetCredentialPersists(t *testing.T) {
	s, m := newService()
	ctx := context.Background()
	if _, err := s.Register(ctx, "Ana", "a@x.com", "abc123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	saves := m.saves

	if err := s.ResetCredential(ctx, "a@x.com", "abc123", "abc123"); !errors.Is(err, account.ErrSameCredential) {
		t.Fatalf("expected ErrSameCredential, got %v", err)
	}
	if m.saves != saves {
		t.Fatal("failed reset must not save")
	}

	if err := s.ResetCredential(ctx, "a@x.com", "new456", "new456"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := s.Authenticate(ctx, "a@x.com", "new456"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
}

func TestNilPersistence(t *testing.T) {
	s := &Service{}
	if _, err := s.Register(context.Background(), "a", "a@x.com", "abc123"); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
	if _, err := s.Watch(context.Background()); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}
