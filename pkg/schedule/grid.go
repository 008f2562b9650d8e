// Package schedule implements the time-slot by weekday activity grid. Cells
// hold ordered lists of activities; the " + " joined form only exists at the
// persistence boundary.
package schedule

import (
	"errors"
	"sort"
	"strings"
)

// Separator joins multiple activities inside one serialized cell. Activities
// containing the separator itself cannot be represented unambiguously; the
// persisted format has no escaping.
const Separator = " + "

var (
	ErrEmptyLabel    = errors.New("schedule: label required")
	ErrUnknownSlot   = errors.New("schedule: unknown time slot")
	ErrUnknownDay    = errors.New("schedule: unknown day")
	ErrDuplicateSlot = errors.New("schedule: time slot already exists")
	ErrPositionRange = errors.New("schedule: activity position out of range")
	ErrShape         = errors.New("schedule: grid shape does not match labels")
)

// Mode selects how SetActivity treats existing cell content.
type Mode int

const (
	Replace Mode = iota
	Append
)

// Grid is one profile's schedule matrix. Rows follow timeSlots, columns
// follow days, and the label indexes are kept in lock-step with every
// structural mutation.
type Grid struct {
	slots []string
	days  []string
	cells [][][]string

	slotIndex map[string]int
	dayIndex  map[string]int
}

// New builds an all-empty grid for the given labels.
func New(slots, days []string) *Grid {
	g := &Grid{
		slots: append([]string(nil), slots...),
		days:  append([]string(nil), days...),
	}
	g.cells = make([][][]string, len(g.slots))
	for i := range g.cells {
		g.cells[i] = make([][]string, len(g.days))
	}
	g.reindex()
	return g
}

// FromRows rebuilds a grid from its persisted form, splitting joined cells
// back into activity lists. An empty matrix is replaced by an all-empty grid;
// anything else must match the label dimensions.
func FromRows(slots, days []string, rows [][]string) (*Grid, error) {
	if len(rows) == 0 {
		return New(slots, days), nil
	}
	if len(rows) != len(slots) {
		return nil, ErrShape
	}
	g := New(slots, days)
	for i, row := range rows {
		if len(row) != len(days) {
			return nil, ErrShape
		}
		for j, cell := range row {
			if cell == "" {
				continue
			}
			g.cells[i][j] = strings.Split(cell, Separator)
		}
	}
	return g, nil
}

func (g *Grid) reindex() {
	g.slotIndex = make(map[string]int, len(g.slots))
	for i, s := range g.slots {
		g.slotIndex[s] = i
	}
	g.dayIndex = make(map[string]int, len(g.days))
	for j, d := range g.days {
		g.dayIndex[d] = j
	}
}

// TimeSlots returns the slot labels in row order.
func (g *Grid) TimeSlots() []string {
	return append([]string(nil), g.slots...)
}

// Days returns the day labels in column order.
func (g *Grid) Days() []string {
	return append([]string(nil), g.days...)
}

// Rows returns the serialized matrix, one joined string per cell.
func (g *Grid) Rows() [][]string {
	rows := make([][]string, len(g.cells))
	for i, row := range g.cells {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = strings.Join(cell, Separator)
		}
	}
	return rows
}

func (g *Grid) locate(slot, day string) (int, int, error) {
	i, ok := g.slotIndex[slot]
	if !ok {
		return 0, 0, ErrUnknownSlot
	}
	j, ok := g.dayIndex[day]
	if !ok {
		return 0, 0, ErrUnknownDay
	}
	return i, j, nil
}

// Cell returns the joined content of the cell, empty string when no activity
// is scheduled.
func (g *Grid) Cell(slot, day string) (string, error) {
	i, j, err := g.locate(slot, day)
	if err != nil {
		return "", err
	}
	return strings.Join(g.cells[i][j], Separator), nil
}

// SetActivity writes text into the cell. Replace overwrites; Append adds the
// text as one more activity, or sets it directly when the cell is empty.
func (g *Grid) SetActivity(slot, day, text string, mode Mode) error {
	i, j, err := g.locate(slot, day)
	if err != nil {
		return err
	}
	if mode == Append && len(g.cells[i][j]) > 0 {
		g.cells[i][j] = append(g.cells[i][j], text)
		return nil
	}
	g.cells[i][j] = []string{text}
	return nil
}

// Activities lists the cell's activities. An empty cell yields a single
// empty string, matching the split of the serialized form.
func (g *Grid) Activities(slot, day string) ([]string, error) {
	i, j, err := g.locate(slot, day)
	if err != nil {
		return nil, err
	}
	if len(g.cells[i][j]) == 0 {
		return []string{""}, nil
	}
	return append([]string(nil), g.cells[i][j]...), nil
}

// EditActivity replaces the activity at the 1-based position within the cell.
func (g *Grid) EditActivity(slot, day string, pos int, text string) error {
	i, j, err := g.locate(slot, day)
	if err != nil {
		return err
	}
	list, err := positioned(g.cells[i][j], pos)
	if err != nil {
		return err
	}
	list[pos-1] = text
	g.cells[i][j] = list
	return nil
}

// RemoveActivity deletes the activity at the 1-based position. Removing the
// last activity leaves the cell empty.
func (g *Grid) RemoveActivity(slot, day string, pos int) error {
	i, j, err := g.locate(slot, day)
	if err != nil {
		return err
	}
	list, err := positioned(g.cells[i][j], pos)
	if err != nil {
		return err
	}
	list = append(list[:pos-1], list[pos:]...)
	if len(list) == 0 {
		list = nil
	}
	g.cells[i][j] = list
	return nil
}

// positioned materializes the cell as the caller-visible activity list (an
// empty cell splits to one empty string) and validates the position.
func positioned(cell []string, pos int) ([]string, error) {
	if len(cell) == 0 {
		cell = []string{""}
	}
	if pos < 1 || pos > len(cell) {
		return nil, ErrPositionRange
	}
	return cell, nil
}

// AddTimeSlot appends a new empty row for the label and re-sorts the grid so
// slot labels are in ascending lexicographic order, moving each row with its
// label.
func (g *Grid) AddTimeSlot(label string) error {
	if strings.TrimSpace(label) == "" {
		return ErrEmptyLabel
	}
	if _, ok := g.slotIndex[label]; ok {
		return ErrDuplicateSlot
	}
	g.slots = append(g.slots, label)
	g.cells = append(g.cells, make([][]string, len(g.days)))
	sort.Stable(bySlot{g})
	g.reindex()
	return nil
}

// EditTimeSlot renames a slot in place. Row contents stay put and no re-sort
// happens on this path, so label order may become locally inconsistent until
// the next AddTimeSlot.
func (g *Grid) EditTimeSlot(oldLabel, newLabel string) error {
	i, ok := g.slotIndex[oldLabel]
	if !ok {
		return ErrUnknownSlot
	}
	if strings.TrimSpace(newLabel) == "" {
		return ErrEmptyLabel
	}
	g.slots[i] = newLabel
	g.reindex()
	return nil
}

// DeleteTimeSlot removes the label and its row, preserving the order of the
// remaining rows.
func (g *Grid) DeleteTimeSlot(label string) error {
	i, ok := g.slotIndex[label]
	if !ok {
		return ErrUnknownSlot
	}
	g.slots = append(g.slots[:i], g.slots[i+1:]...)
	g.cells = append(g.cells[:i], g.cells[i+1:]...)
	g.reindex()
	return nil
}

// bySlot sorts rows by slot label, swapping label and row together so
// row-to-label alignment is never broken.
type bySlot struct{ g *Grid }

func (b bySlot) Len() int           { return len(b.g.slots) }
func (b bySlot) Less(i, j int) bool { return b.g.slots[i] < b.g.slots[j] }
func (b bySlot) Swap(i, j int) {
	b.g.slots[i], b.g.slots[j] = b.g.slots[j], b.g.slots[i]
	b.g.cells[i], b.g.cells[j] = b.g.cells[j], b.g.cells[i]
}

// ReportRow is one daily-report line. Empty distinguishes a truly empty cell
// from an activity that happens to be blank text.
type ReportRow struct {
	Slot     string
	Activity string
	Empty    bool
}

// DailyReport returns one row per time slot, in current slot order, for the
// given day.
func (g *Grid) DailyReport(day string) ([]ReportRow, error) {
	j, ok := g.dayIndex[day]
	if !ok {
		return nil, ErrUnknownDay
	}
	rows := make([]ReportRow, len(g.slots))
	for i, slot := range g.slots {
		cell := g.cells[i][j]
		rows[i] = ReportRow{
			Slot:     slot,
			Activity: strings.Join(cell, Separator),
			Empty:    len(cell) == 0,
		}
	}
	return rows, nil
}
