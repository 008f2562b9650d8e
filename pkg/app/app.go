// Package app provides high-level operations over the snapshot store. Each
// operation loads the snapshot, applies the change in memory, and rewrites
// the whole document, so a failed operation never touches disk.
package app

import (
	"context"
	"errors"

	"tableflip.dev/studyon/pkg/account"
	"tableflip.dev/studyon/pkg/profile"
	"tableflip.dev/studyon/pkg/store"
	"tableflip.dev/studyon/pkg/support"
)

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrNotAdmin      = errors.New("app: administrator account required")
	ErrAdminAccount  = errors.New("app: administrator accounts do not file tickets")
)

// Service wraps persistence with the account, profile and support
// operations so CLIs share one implementation.
type Service struct {
	Persistence store.Persistence
}

func (s *Service) load(ctx context.Context) (*store.Snapshot, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Load(ctx)
}

// Register creates a non-admin account and its default profile, then
// persists the snapshot.
func (s *Service) Register(ctx context.Context, name, email, credential string) (*account.Account, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	acc, err := snap.Accounts.Register(name, email, credential)
	if err != nil {
		return nil, err
	}
	snap.Profile(acc.Email)
	if err := s.Persistence.Save(snap); err != nil {
		return nil, err
	}
	return acc, nil
}

// Authenticate verifies the credentials and returns the matching account.
func (s *Service) Authenticate(ctx context.Context, email, credential string) (*account.Account, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Accounts.Authenticate(email, credential)
}

// ResetCredential replaces an account's credential and persists.
func (s *Service) ResetCredential(ctx context.Context, email, newCredential, confirmation string) error {
	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := snap.Accounts.ResetCredential(email, newCredential, confirmation); err != nil {
		return err
	}
	return s.Persistence.Save(snap)
}

// WithProfile authenticates, applies fn to the account's profile, and
// persists the snapshot. When fn fails nothing is written.
func (s *Service) WithProfile(ctx context.Context, email, credential string, fn func(*profile.Profile) error) error {
	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	acc, err := snap.Accounts.Authenticate(email, credential)
	if err != nil {
		return err
	}
	if err := fn(snap.Profile(acc.Email)); err != nil {
		return err
	}
	return s.Persistence.Save(snap)
}

// ReadProfile authenticates and returns the account's profile without
// persisting anything.
func (s *Service) ReadProfile(ctx context.Context, email, credential string) (*profile.Profile, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	acc, err := snap.Accounts.Authenticate(email, credential)
	if err != nil {
		return nil, err
	}
	return snap.Profile(acc.Email), nil
}

// FileTicket appends a support ticket for the authenticated non-admin
// account. A blank question is silently dropped without an error.
func (s *Service) FileTicket(ctx context.Context, email, credential, question string) error {
	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	acc, err := snap.Accounts.Authenticate(email, credential)
	if err != nil {
		return err
	}
	if acc.Admin {
		return ErrAdminAccount
	}
	before := len(snap.Tickets)
	snap.Tickets.File(acc.Name, acc.Email, question)
	if len(snap.Tickets) == before {
		return nil
	}
	return s.Persistence.Save(snap)
}

// MyTickets lists the authenticated account's tickets in insertion order.
func (s *Service) MyTickets(ctx context.Context, email, credential string) ([]*support.Ticket, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	acc, err := snap.Accounts.Authenticate(email, credential)
	if err != nil {
		return nil, err
	}
	return snap.Tickets.For(acc.Email), nil
}

// AllTickets lists every ticket. Admin only.
func (s *Service) AllTickets(ctx context.Context, email, credential string) ([]*support.Ticket, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	acc, err := snap.Accounts.Authenticate(email, credential)
	if err != nil {
		return nil, err
	}
	if !acc.Admin {
		return nil, ErrNotAdmin
	}
	return snap.Tickets, nil
}

// AnswerTicket resolves the ticket at the 1-based position. Admin only.
func (s *Service) AnswerTicket(ctx context.Context, email, credential string, pos int, answer string) error {
	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	acc, err := snap.Accounts.Authenticate(email, credential)
	if err != nil {
		return err
	}
	if !acc.Admin {
		return ErrNotAdmin
	}
	if err := snap.Tickets.Answer(pos, answer); err != nil {
		return err
	}
	return s.Persistence.Save(snap)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
