// Package reminders implements the reminder operations.
package reminders

import (
	"context"

	"tableflip.dev/studyon/pkg/app"
	"tableflip.dev/studyon/pkg/printers"
	"tableflip.dev/studyon/pkg/profile"
)

// Add appends a reminder.
type Add struct {
	Email      string
	Credential string
	Text       string

	Service *app.Service
}

func (a *Add) Do(ctx context.Context) error {
	return a.Service.WithProfile(ctx, a.Email, a.Credential, func(p *profile.Profile) error {
		return p.AddReminder(a.Text)
	})
}

// List prints all reminders, numbered.
type List struct {
	Email      string
	Credential string

	Service *app.Service
}

func (l *List) Do(ctx context.Context) error {
	p, err := l.Service.ReadProfile(ctx, l.Email, l.Credential)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Lista de Lembretes")
	pp.List(p.Reminders)
	return nil
}

// Edit replaces the reminder at the 1-based position.
type Edit struct {
	Email      string
	Credential string
	Position   int
	Text       string

	Service *app.Service
}

func (e *Edit) Do(ctx context.Context) error {
	return e.Service.WithProfile(ctx, e.Email, e.Credential, func(p *profile.Profile) error {
		return p.EditReminder(e.Position-1, e.Text)
	})
}

// Remove deletes the reminder at the 1-based position.
type Remove struct {
	Email      string
	Credential string
	Position   int

	Service *app.Service
}

func (r *Remove) Do(ctx context.Context) error {
	return r.Service.WithProfile(ctx, r.Email, r.Credential, func(p *profile.Profile) error {
		return p.DeleteReminder(r.Position - 1)
	})
}

// Search prints reminders containing the term.
type Search struct {
	Email      string
	Credential string
	Term       string

	Service *app.Service
}

func (s *Search) Do(ctx context.Context) error {
	p, err := s.Service.ReadProfile(ctx, s.Email, s.Credential)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Resultados da pesquisa")
	pp.List(p.SearchReminders(s.Term))
	return nil
}
