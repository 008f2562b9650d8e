// Package notes implements the free-text note operations.
package notes

import (
	"context"

	"tableflip.dev/studyon/pkg/app"
	"tableflip.dev/studyon/pkg/printers"
	"tableflip.dev/studyon/pkg/profile"
)

// Add appends a note.
type Add struct {
	Email      string
	Credential string
	Text       string

	Service *app.Service
}

func (a *Add) Do(ctx context.Context) error {
	return a.Service.WithProfile(ctx, a.Email, a.Credential, func(p *profile.Profile) error {
		return p.AddNote(a.Text)
	})
}

// List prints all notes, numbered.
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
	pp.Title("Minhas Anotações")
	pp.List(p.Notes)
	return nil
}

// Remove deletes the note at the 1-based position.
type Remove struct {
	Email      string
	Credential string
	Position   int

	Service *app.Service
}

func (r *Remove) Do(ctx context.Context) error {
	return r.Service.WithProfile(ctx, r.Email, r.Credential, func(p *profile.Profile) error {
		return p.DeleteNote(r.Position - 1)
	})
}

// Search prints notes containing the term.
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
	pp.List(p.SearchNotes(s.Term))
	return nil
}
