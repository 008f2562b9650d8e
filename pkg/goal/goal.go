// Package goal implements the two-level goal hierarchy: goals hold ordered
// sub-goals and completion percentages roll up from sub-goal progress.
package goal

import "strings"

// Priority ranks a goal. The persisted labels are the lower-cased
// Portuguese forms.
type Priority string

const (
	High   Priority = "alta"
	Medium Priority = "media"
	Low    Priority = "baixa"
)

var accentFolder = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

// ParsePriority normalizes raw input (case and accents folded) to one of the
// three priorities. Unrecognized values fall back to Medium.
func ParsePriority(raw string) Priority {
	p := Priority(accentFolder.Replace(strings.ToLower(strings.TrimSpace(raw))))
	switch p {
	case High, Medium, Low:
		return p
	}
	return Medium
}

// SubGoal tracks a single unit of work under a goal.
type SubGoal struct {
	Name      string `json:"nome"`
	Progress  int    `json:"progresso"`
	Completed bool   `json:"concluida"`
}

// Goal is a named objective with ordered sub-goals. Completed is independent
// of sub-goal state and short-circuits the percentage to 100.
type Goal struct {
	Name      string     `json:"nome"`
	SubGoals  []*SubGoal `json:"submetas"`
	Completed bool       `json:"concluida"`
	Priority  Priority   `json:"prioridade"`
}

// Percent reports the goal's completion percentage: 100 when the goal is
// marked complete, 0 when it has no sub-goals, otherwise the arithmetic mean
// of sub-goal progress.
func (g *Goal) Percent() float64 {
	if g.Completed {
		return 100
	}
	if len(g.SubGoals) == 0 {
		return 0
	}
	total := 0
	for _, s := range g.SubGoals {
		total += s.Progress
	}
	return float64(total) / float64(len(g.SubGoals))
}

// Status is the display status for the goal.
func (g *Goal) Status() string {
	if g.Completed {
		return "concluída"
	}
	return "em andamento"
}
