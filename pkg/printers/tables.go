package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyon/pkg/schedule"
)

// ScheduleGrid prints the full time-slot by weekday table.
func (pp *PrettyPrint) ScheduleGrid(g *schedule.Grid) {
	tbl := uitable.New()
	tbl.Separator = "  "

	days := g.Days()
	header := make([]interface{}, 0, len(days)+1)
	header = append(header, "HORÁRIO")
	for _, d := range days {
		header = append(header, d)
	}
	tbl.AddRow(header...)

	rows := g.Rows()
	for i, slot := range g.TimeSlots() {
		row := make([]interface{}, 0, len(days)+1)
		row = append(row, slot)
		for _, cell := range rows[i] {
			row = append(row, cellOrPlaceholder(cell, cell == ""))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// DailyReport prints one line per time slot for the day.
func (pp *PrettyPrint) DailyReport(day string, rows []schedule.ReportRow) {
	pp.Title("Atividades de " + day)

	tbl := uitable.New()
	tbl.Separator = " | "
	for _, r := range rows {
		tbl.AddRow(r.Slot, cellOrPlaceholder(r.Activity, r.Empty))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
