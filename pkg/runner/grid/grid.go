// Package grid implements the schedule operations behind the `studyon
// schedule` commands.
package grid

import (
	"context"

	"tableflip.dev/studyon/pkg/app"
	"tableflip.dev/studyon/pkg/printers"
	"tableflip.dev/studyon/pkg/profile"
	"tableflip.dev/studyon/pkg/schedule"
)

// View prints the full schedule table. With Watch set it keeps reprinting
// whenever the store is rewritten, until the context is cancelled.
type View struct {
	Email      string
	Credential string
	Watch      bool

	Service *app.Service
}

func (v *View) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	print := func() error {
		p, err := v.Service.ReadProfile(ctx, v.Email, v.Credential)
		if err != nil {
			return err
		}
		pp.Title("CRONOGRAMA")
		pp.ScheduleGrid(p.Grid)
		return nil
	}
	if err := print(); err != nil {
		return err
	}
	if !v.Watch {
		return nil
	}

	events, err := v.Service.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			pp.NewLine()
			if err := print(); err != nil {
				return err
			}
		}
	}
}

// Report prints the daily report for one weekday.
type Report struct {
	Email      string
	Credential string
	Day        string

	Service *app.Service
}

func (r *Report) Do(ctx context.Context) error {
	p, err := r.Service.ReadProfile(ctx, r.Email, r.Credential)
	if err != nil {
		return err
	}
	day := schedule.NormalizeDay(r.Day)
	rows, err := p.Grid.DailyReport(day)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.DailyReport(day, rows)
	return nil
}

// Set writes an activity into a cell, replacing or appending.
type Set struct {
	Email      string
	Credential string
	Slot       string
	Day        string
	Text       string
	Mode       schedule.Mode

	Service *app.Service
}

func (s *Set) Do(ctx context.Context) error {
	return s.Service.WithProfile(ctx, s.Email, s.Credential, func(p *profile.Profile) error {
		return p.Grid.SetActivity(s.Slot, schedule.NormalizeDay(s.Day), s.Text, s.Mode)
	})
}

// Activities lists a cell's activities, numbered.
type Activities struct {
	Email      string
	Credential string
	Slot       string
	Day        string

	Service *app.Service
}

func (a *Activities) Do(ctx context.Context) error {
	p, err := a.Service.ReadProfile(ctx, a.Email, a.Credential)
	if err != nil {
		return err
	}
	list, err := p.Grid.Activities(a.Slot, schedule.NormalizeDay(a.Day))
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title(a.Slot + " / " + schedule.NormalizeDay(a.Day))
	pp.List(list)
	return nil
}

// EditActivity rewrites one activity within a cell by its 1-based position.
type EditActivity struct {
	Email      string
	Credential string
	Slot       string
	Day        string
	Position   int
	Text       string

	Service *app.Service
}

func (e *EditActivity) Do(ctx context.Context) error {
	return e.Service.WithProfile(ctx, e.Email, e.Credential, func(p *profile.Profile) error {
		return p.Grid.EditActivity(e.Slot, schedule.NormalizeDay(e.Day), e.Position, e.Text)
	})
}

// RemoveActivity deletes one activity within a cell by its 1-based position.
type RemoveActivity struct {
	Email      string
	Credential string
	Slot       string
	Day        string
	Position   int

	Service *app.Service
}

func (r *RemoveActivity) Do(ctx context.Context) error {
	return r.Service.WithProfile(ctx, r.Email, r.Credential, func(p *profile.Profile) error {
		return p.Grid.RemoveActivity(r.Slot, schedule.NormalizeDay(r.Day), r.Position)
	})
}

// AddSlot adds a time-slot row.
type AddSlot struct {
	Email      string
	Credential string
	Label      string

	Service *app.Service
}

func (a *AddSlot) Do(ctx context.Context) error {
	return a.Service.WithProfile(ctx, a.Email, a.Credential, func(p *profile.Profile) error {
		return p.Grid.AddTimeSlot(a.Label)
	})
}

// EditSlot renames a time-slot label.
type EditSlot struct {
	Email      string
	Credential string
	Old        string
	New        string

	Service *app.Service
}

func (e *EditSlot) Do(ctx context.Context) error {
	return e.Service.WithProfile(ctx, e.Email, e.Credential, func(p *profile.Profile) error {
		return p.Grid.EditTimeSlot(e.Old, e.New)
	})
}

// RemoveSlot deletes a time-slot row.
type RemoveSlot struct {
	Email      string
	Credential string
	Label      string

	Service *app.Service
}

func (r *RemoveSlot) Do(ctx context.Context) error {
	return r.Service.WithProfile(ctx, r.Email, r.Credential, func(p *profile.Profile) error {
		return p.Grid.DeleteTimeSlot(r.Label)
	})
}
