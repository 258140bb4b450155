package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/huangsam/reef/core/algo"
	"github.com/huangsam/reef/schema"
)

// jsonDay is one grid day in machine-readable output.
type jsonDay struct {
	Date    schema.Date `json:"date"`
	Weekday string      `json:"weekday"`
	Count   int         `json:"count"`
	Level   int         `json:"level"`
	Color   string      `json:"color"`
}

// jsonReport is the JSON document for one run.
type jsonReport struct {
	Repository   string               `json:"repository"`
	Filters      schema.Filters       `json:"filters"`
	Weeks        int                  `json:"weeks"`
	Start        *schema.Date         `json:"start,omitempty"`
	End          *schema.Date         `json:"end,omitempty"`
	TotalCommits int                  `json:"total_commits"`
	Days         []jsonDay            `json:"days"`
	Statistics   *schema.Statistics   `json:"statistics,omitempty"`
	Authors      []schema.AuthorCount `json:"authors,omitempty"`
}

// reportDays flattens the grid and attaches each day's intensity level and its palette color.
func reportDays(grid schema.Grid) []jsonDay {
	maxCommits := max(1, grid.MaxCount())
	days := make([]jsonDay, 0, len(grid)*schema.DaysPerWeek)
	for _, d := range grid.Days() {
		level := algo.ClassifyLevel(d.Count, maxCommits)
		days = append(days, jsonDay{
			Date:    d.Date,
			Weekday: d.DayOfWeek.String(),
			Count:   d.Count,
			Level:   level,
			Color:   HexForLevel(level),
		})
	}
	return days
}

func buildJSONReport(report schema.Report) jsonReport {
	days := reportDays(report.Grid)
	out := jsonReport{
		Repository:   report.RepoPath,
		Filters:      report.Filters,
		Weeks:        report.Weeks,
		TotalCommits: report.TotalCommits,
		Days:         days,
		Statistics:   report.Stats,
		Authors:      report.Authors,
	}
	if len(days) > 0 {
		out.Start = &days[0].Date
		out.End = &days[len(days)-1].Date
	}
	return out
}

// writeReportJSON writes the report as one indented JSON object.
func writeReportJSON(w io.Writer, report schema.Report) error {
	return writeJSON(w, buildJSONReport(report))
}

// writeReportCSV writes one row per grid day in chronological order.
func writeReportCSV(w io.Writer, report schema.Report) error {
	header := []string{"date", "weekday", "count", "level"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, d := range reportDays(report.Grid) {
			row := []string{
				d.Date.String(),
				d.Weekday,
				strconv.Itoa(d.Count),
				strconv.Itoa(d.Level),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
