package profile

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"tableflip.dev/studyon/pkg/schedule"
)

func TestNewHasDefaultLabels(t *testing.T) {
	p := New()
	if got := p.Grid.TimeSlots(); len(got) != 8 {
		t.Fatalf("expected 8 default time slots, got %d", len(got))
	}
	days := p.Grid.Days()
	if len(days) != 7 || days[0] != "Domingo" || days[6] != "Sábado" {
		t.Fatalf("unexpected default days: %v", days)
	}
}

func TestUnmarshalEmptyObjectFallsBackToDefaults(t *testing.T) {
	p := &Profile{}
	if err := json.Unmarshal([]byte(`{}`), p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(p.Grid.TimeSlots(), DefaultTimeSlots()) {
		t.Fatalf("missing horarios should fall back to defaults, got %v", p.Grid.TimeSlots())
	}
	if !reflect.DeepEqual(p.Grid.Days(), DefaultDays()) {
		t.Fatalf("missing dias should fall back to defaults, got %v", p.Grid.Days())
	}
	if p.Goals == nil || p.Notes == nil || p.Reminders == nil {
		t.Fatal("missing collections should decode to empty, not nil")
	}
}

func TestMarshalUsesPersistedKeys(t *testing.T) {
	p := New()
	if err := p.AddNote("revisar capítulo 3"); err != nil {
		t.Fatalf("add note: %v", err)
	}
	if err := p.Grid.SetActivity("07:00 - 08:00", "Segunda", "Matemática", schedule.Replace); err != nil {
		t.Fatalf("set activity: %v", err)
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"metas"`, `"horarios"`, `"dias"`, `"matriz_cronograma"`, `"anotacoes"`, `"lembretes"`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("serialized profile missing %s: %s", key, data)
		}
	}

	round := &Profile{}
	if err := json.Unmarshal(data, round); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cell, _ := round.Grid.Cell("07:00 - 08:00", "Segunda"); cell != "Matemática" {
		t.Fatalf("grid content lost in round trip: %q", cell)
	}
	if !reflect.DeepEqual(round.Notes, p.Notes) {
		t.Fatalf("notes lost in round trip: %v", round.Notes)
	}
}

func TestNoteOperations(t *testing.T) {
	p := New()
	if err := p.AddNote("  "); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	_ = p.AddNote("ler sobre grafos")
	_ = p.AddNote("Revisar GRAFOS amanhã")
	_ = p.AddNote("pagar boleto")

	if got := p.SearchNotes("grafos"); len(got) != 2 {
		t.Fatalf("search should be case-insensitive, got %v", got)
	}

	if err := p.DeleteNote(3); !errors.Is(err, ErrIndexRange) {
		t.Fatalf("expected ErrIndexRange, got %v", err)
	}
	if err := p.DeleteNote(0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(p.Notes) != 2 || p.Notes[0] != "Revisar GRAFOS amanhã" {
		t.Fatalf("unexpected notes after delete: %v", p.Notes)
	}
}

func TestReminderOperations(t *testing.T) {
	p := New()
	if err := p.AddReminder(""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	_ = p.AddReminder("prova sexta")

	if err := p.EditReminder(1, "x"); !errors.Is(err, ErrIndexRange) {
		t.Fatalf("expected ErrIndexRange, got %v", err)
	}
	if err := p.EditReminder(0, "prova adiada"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if p.Reminders[0] != "prova adiada" {
		t.Fatalf("unexpected reminder: %v", p.Reminders)
	}

	if got := p.SearchReminders("PROVA"); len(got) != 1 {
		t.Fatalf("search = %v", got)
	}
	if err := p.DeleteReminder(0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(p.Reminders) != 0 {
		t.Fatalf("unexpected reminders after delete: %v", p.Reminders)
	}
}
