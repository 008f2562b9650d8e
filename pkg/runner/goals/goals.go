// Package goals implements the goal-tree operations behind the `studyon
// goal` commands. Indexes are 1-based at this layer, matching the numbered
// listings.
package goals

import (
	"context"
	"fmt"

	"tableflip.dev/studyon/pkg/app"
	"tableflip.dev/studyon/pkg/printers"
	"tableflip.dev/studyon/pkg/profile"
)

// Add appends a new goal.
type Add struct {
	Email      string
	Credential string
	Name       string
	Priority   string

	Service *app.Service
}

func (a *Add) Do(ctx context.Context) error {
	return a.Service.WithProfile(ctx, a.Email, a.Credential, func(p *profile.Profile) error {
		return p.Goals.Add(a.Name, a.Priority)
	})
}

// List prints every goal with priority, status and percentage.
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
	pp.Title("Minhas Metas")
	pp.Goals(p.Goals)
	return nil
}

// Progress prints the overall progress bar.
type Progress struct {
	Email      string
	Credential string

	Service *app.Service
}

func (r *Progress) Do(ctx context.Context) error {
	p, err := r.Service.ReadProfile(ctx, r.Email, r.Credential)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Progresso geral")
	pp.OverallProgress(p.Goals.OverallProgress())
	return nil
}

// Toggle flips a goal's completed flag.
type Toggle struct {
	Email      string
	Credential string
	Goal       int

	Service *app.Service
}

func (t *Toggle) Do(ctx context.Context) error {
	return t.Service.WithProfile(ctx, t.Email, t.Credential, func(p *profile.Profile) error {
		return p.Goals.ToggleCompleted(t.Goal - 1)
	})
}

// Rename sets a new name on a goal.
type Rename struct {
	Email      string
	Credential string
	Goal       int
	Name       string

	Service *app.Service
}

func (r *Rename) Do(ctx context.Context) error {
	return r.Service.WithProfile(ctx, r.Email, r.Credential, func(p *profile.Profile) error {
		return p.Goals.Rename(r.Goal-1, r.Name)
	})
}

// Remove deletes a goal.
type Remove struct {
	Email      string
	Credential string
	Goal       int

	Service *app.Service
}

func (r *Remove) Do(ctx context.Context) error {
	return r.Service.WithProfile(ctx, r.Email, r.Credential, func(p *profile.Profile) error {
		return p.Goals.Delete(r.Goal - 1)
	})
}

// SetPriority reassigns a goal's priority.
type SetPriority struct {
	Email      string
	Credential string
	Goal       int
	Priority   string

	Service *app.Service
}

func (s *SetPriority) Do(ctx context.Context) error {
	return s.Service.WithProfile(ctx, s.Email, s.Credential, func(p *profile.Profile) error {
		return p.Goals.SetPriority(s.Goal-1, s.Priority)
	})
}

// AddSub appends a sub-goal under a goal.
type AddSub struct {
	Email      string
	Credential string
	Goal       int
	Name       string

	Service *app.Service
}

func (a *AddSub) Do(ctx context.Context) error {
	return a.Service.WithProfile(ctx, a.Email, a.Credential, func(p *profile.Profile) error {
		return p.Goals.AddSub(a.Goal-1, a.Name)
	})
}

// ListSubs prints a goal's sub-goals.
type ListSubs struct {
	Email      string
	Credential string
	Goal       int

	Service *app.Service
}

func (l *ListSubs) Do(ctx context.Context) error {
	p, err := l.Service.ReadProfile(ctx, l.Email, l.Credential)
	if err != nil {
		return err
	}
	g, err := p.Goals.Goal(l.Goal - 1)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Submetas de %s", g.Name))
	pp.SubGoals(g)
	return nil
}

// SetSubProgress updates a sub-goal's progress value.
type SetSubProgress struct {
	Email      string
	Credential string
	Goal       int
	Sub        int
	Value      int

	Service *app.Service
}

func (s *SetSubProgress) Do(ctx context.Context) error {
	return s.Service.WithProfile(ctx, s.Email, s.Credential, func(p *profile.Profile) error {
		return p.Goals.SetSubProgress(s.Goal-1, s.Sub-1, s.Value)
	})
}

// ToggleSub flips a sub-goal's completed flag.
type ToggleSub struct {
	Email      string
	Credential string
	Goal       int
	Sub        int

	Service *app.Service
}

func (t *ToggleSub) Do(ctx context.Context) error {
	return t.Service.WithProfile(ctx, t.Email, t.Credential, func(p *profile.Profile) error {
		return p.Goals.ToggleSubCompleted(t.Goal-1, t.Sub-1)
	})
}

// RenameSub sets a new name on a sub-goal.
type RenameSub struct {
	Email      string
	Credential string
	Goal       int
	Sub        int
	Name       string

	Service *app.Service
}

func (r *RenameSub) Do(ctx context.Context) error {
	return r.Service.WithProfile(ctx, r.Email, r.Credential, func(p *profile.Profile) error {
		return p.Goals.RenameSub(r.Goal-1, r.Sub-1, r.Name)
	})
}

// RemoveSub deletes a sub-goal.
type RemoveSub struct {
	Email      string
	Credential string
	Goal       int
	Sub        int

	Service *app.Service
}

func (r *RemoveSub) Do(ctx context.Context) error {
	return r.Service.WithProfile(ctx, r.Email, r.Credential, func(p *profile.Profile) error {
		return p.Goals.DeleteSub(r.Goal-1, r.Sub-1)
	})
}
