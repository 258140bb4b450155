package core

import (
	"time"

	"github.com/huangsam/reef/schema"
)

// nextSaturday returns d when it is a Saturday, else the following Saturday.
func nextSaturday(d schema.Date) schema.Date {
	daysToSaturday := (int(time.Saturday) - int(d.Weekday()) + schema.DaysPerWeek) % schema.DaysPerWeek
	return d.AddDays(daysToSaturday)
}

// DateRange returns weeks*7 consecutive days in chronological order, ending on
// the Saturday at or after end. Callers must validate weeks (1-104).
func DateRange(weeks int, end schema.Date) []schema.Date {
	last := nextSaturday(end)
	total := weeks * schema.DaysPerWeek
	days := make([]schema.Date, 0, total)
	for i := total - 1; i >= 0; i-- {
		days = append(days, last.AddDays(-i))
	}
	return days
}

// BuildGrid lays the window ending on or after end into week columns, joining
// counts onto each day. Missing days count as zero. Each week closes after a
// Saturday; a trailing run without a Saturday is kept as a shorter week.
func BuildGrid(weeks int, end schema.Date, counts schema.DailyCount) schema.Grid {
	var grid schema.Grid
	var current schema.Week

	for _, d := range DateRange(weeks, end) {
		cell := schema.DayCell{
			Date:      d,
			Count:     counts[d],
			DayOfWeek: d.Weekday(),
		}
		current = append(current, cell)
		if cell.DayOfWeek == time.Saturday {
			grid = append(grid, current)
			current = nil
		}
	}
	if len(current) > 0 {
		grid = append(grid, current)
	}
	return grid
}

// WeeklyTotals sums each week of the grid, in week order.
func WeeklyTotals(grid schema.Grid) []int {
	totals := make([]int, len(grid))
	for i, week := range grid {
		for _, d := range week {
			totals[i] += d.Count
		}
	}
	return totals
}
