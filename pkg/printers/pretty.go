// Package printers renders snapshot state for the terminal.
package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/studyon/pkg/bar"
	"tableflip.dev/studyon/pkg/goal"
	"tableflip.dev/studyon/pkg/support"
)

// Placeholder marks an empty schedule cell in rendered output.
const Placeholder = "-"

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Goals prints one numbered line per goal with priority, status and the
// computed percentage.
func (pp *PrettyPrint) Goals(goals goal.Tree) {
	if len(goals) == 0 {
		pp.none()
		return
	}
	t := color.New()
	for i, g := range goals {
		_, _ = t.Printf("%d. %s | Prioridade: %s | %s - %.1f%%\n", i+1, g.Name, g.Priority, g.Status(), g.Percent())
	}
	_, _ = t.Println("")
}

// SubGoals prints one numbered line per sub-goal of the goal.
func (pp *PrettyPrint) SubGoals(g *goal.Goal) {
	if len(g.SubGoals) == 0 {
		pp.none()
		return
	}
	t := color.New()
	for i, s := range g.SubGoals {
		check := ""
		if s.Completed {
			check = " ✓"
		}
		_, _ = t.Printf("%d. %s - %d%%%s\n", i+1, s.Name, s.Progress, check)
	}
	_, _ = t.Println("")
}

// OverallProgress prints the aggregate percentage as a proportional bar.
func (pp *PrettyPrint) OverallProgress(percent float64) {
	t := color.New(color.FgHiGreen)
	_, _ = t.Println(bar.Render(percent))
}

// Tickets prints numbered tickets. Requester details are included when the
// admin view is requested.
func (pp *PrettyPrint) Tickets(tickets []*support.Ticket, admin bool) {
	if len(tickets) == 0 {
		pp.none()
		return
	}
	t := color.New()
	f := color.New(color.Faint)
	for i, tk := range tickets {
		if admin {
			_, _ = t.Printf("%d. %s <%s> - %s (%s)\n", i+1, tk.RequesterName, tk.RequesterEmail, tk.Question, tk.Status())
		} else {
			_, _ = t.Printf("%d. %s (%s)\n", i+1, tk.Question, tk.Status())
		}
		if tk.Answered {
			_, _ = f.Printf("   ↳ %s\n", tk.Answer)
		}
	}
	_, _ = t.Println("")
}

// List prints a numbered list of plain strings (notes, reminders, search
// results).
func (pp *PrettyPrint) List(items []string) {
	if len(items) == 0 {
		pp.none()
		return
	}
	t := color.New()
	for i, it := range items {
		_, _ = t.Printf("%d. %s\n", i+1, it)
	}
	_, _ = t.Println("")
}

// cellOrPlaceholder renders empty cell content as the placeholder marker.
func cellOrPlaceholder(content string, empty bool) string {
	if empty || content == "" {
		return Placeholder
	}
	return content
}
