package support

import (
	"errors"
	"testing"
)

func TestFileDropsBlankQuestion(t *testing.T) {
	q := Queue{}
	q.File("Ana", "a@x.com", "   ")
	if len(q) != 0 {
		t.Fatalf("blank question should be dropped, queue has %d tickets", len(q))
	}
	q.File("Ana", "a@x.com", "Como edito uma meta?")
	if len(q) != 1 {
		t.Fatalf("expected 1 ticket, got %d", len(q))
	}
	if q[0].Status() != "Pendente" {
		t.Fatalf("new ticket status = %q", q[0].Status())
	}
}

func TestAnswerByPosition(t *testing.T) {
	q := Queue{}
	q.File("Ana", "a@x.com", "App won't start")

	if err := q.Answer(1, "Try restarting"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !q[0].Answered || q[0].Answer != "Try restarting" {
		t.Fatalf("ticket not resolved: %+v", q[0])
	}
	if q[0].Status() != "Respondida" {
		t.Fatalf("answered ticket status = %q", q[0].Status())
	}

	if err := q.Answer(2, "x"); !errors.Is(err, ErrIndexRange) {
		t.Fatalf("expected ErrIndexRange, got %v", err)
	}
	if err := q.Answer(0, "x"); !errors.Is(err, ErrIndexRange) {
		t.Fatalf("expected ErrIndexRange, got %v", err)
	}
}

func TestForFiltersByExactEmail(t *testing.T) {
	q := Queue{}
	q.File("Ana", "a@x.com", "first")
	q.File("Bia", "b@x.com", "second")
	q.File("Ana", "a@x.com", "third")

	mine := q.For("a@x.com")
	if len(mine) != 2 || mine[0].Question != "first" || mine[1].Question != "third" {
		t.Fatalf("unexpected tickets: %+v", mine)
	}
	if got := q.For("A@X.COM"); len(got) != 0 {
		t.Fatalf("matching is exact, got %d tickets", len(got))
	}
}
