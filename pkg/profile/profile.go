// Package profile aggregates one account's study data: the goal tree, the
// schedule grid, free-text notes and reminders.
package profile

import (
	"encoding/json"
	"errors"
	"strings"

	"tableflip.dev/studyon/pkg/goal"
	"tableflip.dev/studyon/pkg/schedule"
)

var (
	ErrEmptyText  = errors.New("profile: text cannot be empty")
	ErrIndexRange = errors.New("profile: index out of range")
)

// DefaultTimeSlots returns the 8 time-slot labels a fresh profile starts
// with.
func DefaultTimeSlots() []string {
	return []string{
		"07:00 - 08:00",
		"08:00 - 09:00",
		"09:00 - 10:00",
		"10:00 - 11:00",
		"11:00 - 12:00",
		"14:00 - 16:00",
		"16:00 - 17:00",
		"17:00 - 18:00",
	}
}

// DefaultDays returns the 7 fixed weekday labels.
func DefaultDays() []string {
	return []string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}
}

// Profile is one account's study data. The zero value is not usable; build
// profiles with New or by unmarshalling.
type Profile struct {
	Goals     goal.Tree
	Grid      *schedule.Grid
	Notes     []string
	Reminders []string
}

// New returns a profile with the default schedule labels and an all-empty
// grid.
func New() *Profile {
	return &Profile{
		Goals:     goal.Tree{},
		Grid:      schedule.New(DefaultTimeSlots(), DefaultDays()),
		Notes:     []string{},
		Reminders: []string{},
	}
}

// wire is the persisted profile shape.
type wire struct {
	Metas     goal.Tree  `json:"metas"`
	Horarios  []string   `json:"horarios"`
	Dias      []string   `json:"dias"`
	Matriz    [][]string `json:"matriz_cronograma"`
	Anotacoes []string   `json:"anotacoes"`
	Lembretes []string   `json:"lembretes"`
}

func (p *Profile) MarshalJSON() ([]byte, error) {
	w := wire{
		Metas:     p.Goals,
		Horarios:  p.Grid.TimeSlots(),
		Dias:      p.Grid.Days(),
		Matriz:    p.Grid.Rows(),
		Anotacoes: p.Notes,
		Lembretes: p.Reminders,
	}
	if w.Metas == nil {
		w.Metas = goal.Tree{}
	}
	if w.Anotacoes == nil {
		w.Anotacoes = []string{}
	}
	if w.Lembretes == nil {
		w.Lembretes = []string{}
	}
	return json.Marshal(w)
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Horarios == nil {
		w.Horarios = DefaultTimeSlots()
	}
	if w.Dias == nil {
		w.Dias = DefaultDays()
	}
	grid, err := schedule.FromRows(w.Horarios, w.Dias, w.Matriz)
	if err != nil {
		return err
	}
	p.Goals = w.Metas
	if p.Goals == nil {
		p.Goals = goal.Tree{}
	}
	p.Grid = grid
	p.Notes = w.Anotacoes
	if p.Notes == nil {
		p.Notes = []string{}
	}
	p.Reminders = w.Lembretes
	if p.Reminders == nil {
		p.Reminders = []string{}
	}
	return nil
}

// AddNote appends a note; blank text is rejected.
func (p *Profile) AddNote(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	p.Notes = append(p.Notes, text)
	return nil
}

// DeleteNote removes the note at i.
func (p *Profile) DeleteNote(i int) error {
	if i < 0 || i >= len(p.Notes) {
		return ErrIndexRange
	}
	p.Notes = append(p.Notes[:i], p.Notes[i+1:]...)
	return nil
}

// SearchNotes returns notes containing the term, case-insensitively.
func (p *Profile) SearchNotes(term string) []string {
	return search(p.Notes, term)
}

// AddReminder appends a reminder; blank text is rejected.
func (p *Profile) AddReminder(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	p.Reminders = append(p.Reminders, text)
	return nil
}

// EditReminder replaces the reminder at i.
func (p *Profile) EditReminder(i int, text string) error {
	if i < 0 || i >= len(p.Reminders) {
		return ErrIndexRange
	}
	p.Reminders[i] = text
	return nil
}

// DeleteReminder removes the reminder at i.
func (p *Profile) DeleteReminder(i int) error {
	if i < 0 || i >= len(p.Reminders) {
		return ErrIndexRange
	}
	p.Reminders = append(p.Reminders[:i], p.Reminders[i+1:]...)
	return nil
}

// SearchReminders returns reminders containing the term, case-insensitively.
func (p *Profile) SearchReminders(term string) []string {
	return search(p.Reminders, term)
}

func search(items []string, term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it), term) {
			out = append(out, it)
		}
	}
	return out
}
