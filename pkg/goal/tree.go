package goal

import "errors"

var (
	ErrEmptyName     = errors.New("goal: name required")
	ErrIndexRange    = errors.New("goal: index out of range")
	ErrProgressRange = errors.New("goal: progress must be between 0 and 100")
)

// Tree is one profile's ordered list of goals. All mutations validate their
// indices first and leave the tree untouched on failure.
type Tree []*Goal

// Add appends a goal with no sub-goals. The priority string is normalized
// with ParsePriority.
func (t *Tree) Add(name string, priority string) error {
	if name == "" {
		return ErrEmptyName
	}
	*t = append(*t, &Goal{
		Name:     name,
		SubGoals: []*SubGoal{},
		Priority: ParsePriority(priority),
	})
	return nil
}

// Goal returns the goal at i.
func (t Tree) Goal(i int) (*Goal, error) {
	if i < 0 || i >= len(t) {
		return nil, ErrIndexRange
	}
	return t[i], nil
}

// Rename sets a new name on the goal at i.
func (t Tree) Rename(i int, name string) error {
	g, err := t.Goal(i)
	if err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}
	g.Name = name
	return nil
}

// Delete removes the goal at i, shifting later goals down.
func (t *Tree) Delete(i int) error {
	if _, err := t.Goal(i); err != nil {
		return err
	}
	*t = append((*t)[:i], (*t)[i+1:]...)
	return nil
}

// SetPriority normalizes and assigns the priority of the goal at i.
func (t Tree) SetPriority(i int, priority string) error {
	g, err := t.Goal(i)
	if err != nil {
		return err
	}
	g.Priority = ParsePriority(priority)
	return nil
}

// ToggleCompleted flips the goal's own completed flag. Sub-goal state is
// untouched.
func (t Tree) ToggleCompleted(i int) error {
	g, err := t.Goal(i)
	if err != nil {
		return err
	}
	g.Completed = !g.Completed
	return nil
}

// AddSub appends a sub-goal at zero progress under the goal at i.
func (t Tree) AddSub(i int, name string) error {
	g, err := t.Goal(i)
	if err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}
	g.SubGoals = append(g.SubGoals, &SubGoal{Name: name})
	return nil
}

// Sub returns the sub-goal at j under the goal at i.
func (t Tree) Sub(i, j int) (*SubGoal, error) {
	g, err := t.Goal(i)
	if err != nil {
		return nil, err
	}
	if j < 0 || j >= len(g.SubGoals) {
		return nil, ErrIndexRange
	}
	return g.SubGoals[j], nil
}

// SetSubProgress sets the sub-goal's progress. Reaching 100 marks it
// completed; dropping below 100 later does not clear the flag.
func (t Tree) SetSubProgress(i, j, value int) error {
	s, err := t.Sub(i, j)
	if err != nil {
		return err
	}
	if value < 0 || value > 100 {
		return ErrProgressRange
	}
	s.Progress = value
	if value == 100 {
		s.Completed = true
	}
	return nil
}

// ToggleSubCompleted flips the sub-goal's completed flag. Completing forces
// progress to 100; un-completing leaves progress as-is.
func (t Tree) ToggleSubCompleted(i, j int) error {
	s, err := t.Sub(i, j)
	if err != nil {
		return err
	}
	s.Completed = !s.Completed
	if s.Completed {
		s.Progress = 100
	}
	return nil
}

// RenameSub sets a new name on the sub-goal at j under the goal at i.
func (t Tree) RenameSub(i, j int, name string) error {
	s, err := t.Sub(i, j)
	if err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}
	s.Name = name
	return nil
}

// DeleteSub removes the sub-goal at j under the goal at i.
func (t Tree) DeleteSub(i, j int) error {
	g, err := t.Goal(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(g.SubGoals) {
		return ErrIndexRange
	}
	g.SubGoals = append(g.SubGoals[:j], g.SubGoals[j+1:]...)
	return nil
}

// OverallProgress is the arithmetic mean of every goal's percentage, 0 when
// no goals exist.
func (t Tree) OverallProgress() float64 {
	if len(t) == 0 {
		return 0
	}
	total := 0.0
	for _, g := range t {
		total += g.Percent()
	}
	return total / float64(len(t))
}
