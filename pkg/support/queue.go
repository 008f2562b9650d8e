// Package support implements the append-only support ticket queue.
package support

import (
	"errors"
	"strings"
)

var ErrIndexRange = errors.New("support: ticket number out of range")

// Ticket is one support request. Answer and Answered are only ever set by an
// administrator; tickets are never deleted.
type Ticket struct {
	RequesterName  string `json:"usuario"`
	RequesterEmail string `json:"email"`
	Question       string `json:"duvida"`
	Answered       bool   `json:"respondida"`
	Answer         string `json:"resposta"`
}

// Status is the display status for the ticket.
func (t *Ticket) Status() string {
	if t.Answered {
		return "Respondida"
	}
	return "Pendente"
}

// Queue holds tickets in insertion order.
type Queue []*Ticket

// File appends a ticket for the requester. A blank question is silently
// dropped.
func (q *Queue) File(requesterName, requesterEmail, question string) {
	if strings.TrimSpace(question) == "" {
		return
	}
	*q = append(*q, &Ticket{
		RequesterName:  requesterName,
		RequesterEmail: requesterEmail,
		Question:       question,
	})
}

// For returns the tickets filed by the given email, insertion order
// preserved. Matching is exact: tickets store the email as registered.
func (q Queue) For(email string) []*Ticket {
	out := make([]*Ticket, 0, len(q))
	for _, t := range q {
		if t.RequesterEmail == email {
			out = append(out, t)
		}
	}
	return out
}

// Answer resolves the ticket at the 1-based position with the given text.
func (q Queue) Answer(pos int, answer string) error {
	if pos < 1 || pos > len(q) {
		return ErrIndexRange
	}
	t := q[pos-1]
	t.Answer = answer
	t.Answered = true
	return nil
}
