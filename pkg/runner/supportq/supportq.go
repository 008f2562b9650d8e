// Package supportq implements the support-queue operations.
package supportq

import (
	"context"
	"fmt"

	"tableflip.dev/studyon/pkg/app"
	"tableflip.dev/studyon/pkg/printers"
)

// File sends a new support request.
type File struct {
	Email      string
	Credential string
	Question   string

	Service *app.Service
}

func (f *File) Do(ctx context.Context) error {
	if err := f.Service.FileTicket(ctx, f.Email, f.Credential, f.Question); err != nil {
		return err
	}
	fmt.Println("Obrigado por relatar seu problema! Nosso suporte responderá em breve.")
	return nil
}

// Mine lists the caller's own tickets.
type Mine struct {
	Email      string
	Credential string

	Service *app.Service
}

func (m *Mine) Do(ctx context.Context) error {
	tickets, err := m.Service.MyTickets(ctx, m.Email, m.Credential)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Minhas Solicitações")
	pp.Tickets(tickets, false)
	return nil
}

// All lists every ticket. Admin only.
type All struct {
	Email      string
	Credential string

	Service *app.Service
}

func (a *All) Do(ctx context.Context) error {
	tickets, err := a.Service.AllTickets(ctx, a.Email, a.Credential)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Solicitações de Suporte")
	pp.Tickets(tickets, true)
	return nil
}

// Answer resolves a ticket by its 1-based number. Admin only.
type Answer struct {
	Email      string
	Credential string
	Position   int
	Text       string

	Service *app.Service
}

func (a *Answer) Do(ctx context.Context) error {
	if err := a.Service.AnswerTicket(ctx, a.Email, a.Credential, a.Position, a.Text); err != nil {
		return err
	}
	fmt.Println("Solicitação marcada como respondida!")
	return nil
}
