package outwriter

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/reef/core/algo"
	"github.com/huangsam/reef/schema"
)

const (
	blockChar = "█"
	waveChar  = "~"

	// gridIndent is the width of the day label column ("Sun" padded to 4, then a space).
	gridIndent  = 5
	cellWidth   = 2
	maxWaveRuns = 60
)

var dayLabels = [schema.DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RenderOptions tunes RenderReef.
type RenderOptions struct {
	MaxCommits int // 0 = busiest day of the grid
}

// GridWidth is the number of terminal columns the reef needs for weeks.
func GridWidth(weeks int) int {
	return gridIndent + cellWidth*weeks
}

// RenderReef draws the grid as seven day-of-week rows, one glyph per week
// column, under a wave banner and a row of month labels.
func RenderReef(grid schema.Grid, opts RenderOptions) string {
	maxCommits := opts.MaxCommits
	if maxCommits <= 0 {
		maxCommits = max(1, grid.MaxCount())
	}

	wave := waveColor.Sprint("  " + strings.Repeat(waveChar, min(len(grid)*2+10, maxWaveRuns)))
	lines := []string{
		"",
		wave,
		titleColor.Sprint("  🐚 Coral Reef - Git Activity Visualization 🪸"),
		wave,
		"",
		strings.Repeat(" ", gridIndent) + monthLabels(grid),
	}

	for dow, name := range dayLabels {
		var row strings.Builder
		row.WriteString(labelColor.Sprintf("%-4s", name))
		row.WriteString(" ")
		for _, week := range grid {
			cell, ok := cellFor(week, dow)
			if !ok {
				row.WriteString("  ")
				continue
			}
			level := algo.ClassifyLevel(cell.Count, maxCommits)
			row.WriteString(ColorForLevel(level).Sprint(blockChar + " "))
		}
		lines = append(lines, row.String())
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func cellFor(week schema.Week, dow int) (schema.DayCell, bool) {
	for _, d := range week {
		if int(d.DayOfWeek) == dow {
			return d, true
		}
	}
	return schema.DayCell{}, false
}

type monthMark struct {
	name string
	pos  int
}

// monthLabels places a short month name over the first week column whose
// first day starts a new month. A label that would overlap the previous one
// is written directly after it.
func monthLabels(grid schema.Grid) string {
	var marks []monthMark
	current := ""
	for i, week := range grid {
		if len(week) == 0 {
			continue
		}
		name := week[0].Date.Month.String()[:3]
		if name != current {
			marks = append(marks, monthMark{name: name, pos: i})
			current = name
		}
	}

	var sb strings.Builder
	lastPos := 0
	for _, m := range marks {
		sb.WriteString(strings.Repeat(" ", max(0, (m.pos-lastPos)*cellWidth)))
		sb.WriteString(labelColor.Sprint(m.name))
		lastPos = m.pos + (len(m.name)+1)/2
	}
	return sb.String()
}

// RenderLegend shows the seven levels as a less-to-more gradient.
func RenderLegend() string {
	var row strings.Builder
	row.WriteString(labelColor.Sprint("  Less "))
	for level := schema.EmptyLevel; level <= schema.MaxLevel; level++ {
		row.WriteString(ColorForLevel(level).Sprint(blockChar))
		row.WriteString(" ")
	}
	row.WriteString(labelColor.Sprint("More"))

	lines := []string{
		titleColor.Sprint("  Legend:"),
		"",
		row.String(),
		"",
		waveColor.Sprint("  🌊 Deep ocean → 🪸 Vibrant coral reef"),
		"",
	}
	return strings.Join(lines, "\n")
}

// RenderStats renders the statistics as labeled lines. The most active day
// is omitted when absent and the streak when it is zero.
func RenderStats(stats schema.Statistics) string {
	line := func(label, value string) string {
		return labelColor.Sprintf("  %-20s", label+":") + valueColor.Sprint(value)
	}

	lines := []string{
		titleColor.Sprint("  Statistics:"),
		"",
		line("Total commits", humanize.Comma(int64(stats.TotalCommits))),
		line("Unique authors", humanize.Comma(int64(stats.UniqueAuthors))),
	}
	if stats.MostActiveDay != nil {
		lines = append(lines, line("Most active day",
			fmt.Sprintf("%s (%d commits)", stats.MostActiveDay.String(), stats.MaxCommitsInDay)))
	}
	lines = append(lines, line("Average per day", fmt.Sprintf("%.1f", stats.AveragePerDay)))
	if stats.Streak > 0 {
		lines = append(lines, line("Current streak", streakText(stats.Streak)))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func streakText(days int) string {
	if days == 1 {
		return "1 day 🔥"
	}
	return fmt.Sprintf("%d days 🔥", days)
}

// RenderHeader shows the repository path and, when any are active, the filters.
func RenderHeader(repoPath string, filters []string) string {
	lines := []string{waveColor.Sprint("  Repository: " + repoPath)}
	if len(filters) > 0 {
		lines = append(lines, labelColor.Sprint("  Filters: "+strings.Join(filters, ", ")))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// RenderError formats a single error message.
func RenderError(message string) string {
	return errorColor.Sprint("\n  ❌ Error: " + message + "\n")
}

// RenderNoData is shown instead of the reef when no commits matched.
func RenderNoData() string {
	lines := []string{
		"",
		waveColor.Sprint("  🌊 The ocean is calm..."),
		labelColor.Sprint("  No commits found for the specified criteria."),
		"",
	}
	return strings.Join(lines, "\n")
}
