package outwriter

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/reef/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// makeGrid lays out weeks full weeks starting on the Sunday start.
func makeGrid(start schema.Date, weeks int, counts schema.DailyCount) schema.Grid {
	var grid schema.Grid
	for w := range weeks {
		var week schema.Week
		for i := range schema.DaysPerWeek {
			d := start.AddDays(w*schema.DaysPerWeek + i)
			week = append(week, schema.DayCell{Date: d, Count: counts[d], DayOfWeek: d.Weekday()})
		}
		grid = append(grid, week)
	}
	return grid
}

var march10 = schema.NewDate(2024, time.March, 10) // a Sunday

func TestRenderReefLayout(t *testing.T) {
	grid := makeGrid(march10, 1, schema.DailyCount{march10.AddDays(3): 2})
	lines := strings.Split(RenderReef(grid, RenderOptions{}), "\n")

	require.Len(t, lines, 14)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "  "+strings.Repeat("~", 12), lines[1])
	assert.Equal(t, "  🐚 Coral Reef - Git Activity Visualization 🪸", lines[2])
	assert.Equal(t, lines[1], lines[3])
	assert.Equal(t, "     Mar", lines[5])
	for i, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		assert.Equal(t, name+"  █ ", lines[6+i])
	}
	assert.Equal(t, "", lines[13])
}

func TestRenderReefWaveIsCapped(t *testing.T) {
	grid := makeGrid(march10, 52, nil)
	lines := strings.Split(RenderReef(grid, RenderOptions{}), "\n")
	assert.Equal(t, "  "+strings.Repeat("~", 60), lines[1])
	assert.Equal(t, "Sun  "+strings.Repeat("█ ", 52), lines[6])
}

func TestRenderReefShortFirstWeek(t *testing.T) {
	thursday := march10.AddDays(4)
	first := schema.Week{}
	for i := range 3 {
		d := thursday.AddDays(i)
		first = append(first, schema.DayCell{Date: d, DayOfWeek: d.Weekday()})
	}
	grid := append(schema.Grid{first}, makeGrid(march10.AddDays(7), 1, nil)...)

	lines := strings.Split(RenderReef(grid, RenderOptions{}), "\n")
	assert.Equal(t, "Sun    █ ", lines[6], "missing day is a two-column blank")
	assert.Equal(t, "Wed    █ ", lines[9])
	assert.Equal(t, "Thu  █ █ ", lines[10])
}

func TestMonthLabels(t *testing.T) {
	jan7 := schema.NewDate(2024, time.January, 7)

	tests := []struct {
		name     string
		grid     schema.Grid
		expected string
	}{
		{"empty", nil, ""},
		{"single month", makeGrid(jan7, 3, nil), "Jan"},
		{"two months", makeGrid(jan7, 6, nil), "Jan    Feb"},
		{"adjacent months overlap", makeGrid(schema.NewDate(2024, time.January, 28), 2, nil), "JanFeb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, monthLabels(tt.grid))
		})
	}
}

func TestRenderLegend(t *testing.T) {
	out := RenderLegend()
	assert.Equal(t, strings.Join([]string{
		"  Legend:",
		"",
		"  Less █ █ █ █ █ █ █ More",
		"",
		"  🌊 Deep ocean → 🪸 Vibrant coral reef",
		"",
	}, "\n"), out)
}

func TestRenderStats(t *testing.T) {
	day := schema.NewDate(2024, time.January, 1)
	out := RenderStats(schema.Statistics{
		TotalCommits:    1234,
		UniqueAuthors:   2,
		MostActiveDay:   &day,
		MaxCommitsInDay: 3,
		AveragePerDay:   2,
		Streak:          3,
	})

	assert.Equal(t, strings.Join([]string{
		"  Statistics:",
		"",
		"  Total commits:      1,234",
		"  Unique authors:     2",
		"  Most active day:    2024-01-01 (3 commits)",
		"  Average per day:    2.0",
		"  Current streak:     3 days 🔥",
		"",
	}, "\n"), out)
}

func TestRenderStatsOmitsEmptyLines(t *testing.T) {
	out := RenderStats(schema.Statistics{})
	assert.NotContains(t, out, "Most active day")
	assert.NotContains(t, out, "Current streak")
	assert.Contains(t, out, "  Average per day:    0.0")

	assert.Contains(t, RenderStats(schema.Statistics{Streak: 1}), "1 day 🔥")
}

func TestRenderHeader(t *testing.T) {
	assert.Equal(t, "  Repository: /repo\n", RenderHeader("/repo", nil))
	assert.Equal(t,
		"  Repository: /repo\n  Filters: author: alice, since: 2024-01-01\n",
		RenderHeader("/repo", []string{"author: alice", "since: 2024-01-01"}))
}

func TestRenderError(t *testing.T) {
	assert.Equal(t, "\n  ❌ Error: Not a git repository\n", RenderError("Not a git repository"))
}

func TestRenderNoData(t *testing.T) {
	assert.Equal(t,
		"\n  🌊 The ocean is calm...\n  No commits found for the specified criteria.\n",
		RenderNoData())
}

func TestColorForLevel(t *testing.T) {
	for level := range schema.NumLevels {
		assert.Same(t, levelColors[level], ColorForLevel(level))
	}
	assert.Same(t, levelColors[0], ColorForLevel(-1))
	assert.Same(t, levelColors[0], ColorForLevel(schema.NumLevels))
	assert.Equal(t, "#ff5a47", HexForLevel(schema.MaxLevel))
	assert.Equal(t, "#0a1628", HexForLevel(42))
}

func TestParseHex(t *testing.T) {
	r, g, b, ok := parseHex("#ff7f6e")
	require.True(t, ok)
	assert.Equal(t, []int{255, 127, 110}, []int{r, g, b})

	_, _, _, ok = parseHex("#fff")
	assert.False(t, ok)
	_, _, _, ok = parseHex("#zzzzzz")
	assert.False(t, ok)
}

func TestGridWidth(t *testing.T) {
	assert.Equal(t, 7, GridWidth(1))
	assert.Equal(t, 109, GridWidth(52))
	assert.Equal(t, 37, MaxWeeksForWidth(80))
	assert.Equal(t, 1, MaxWeeksForWidth(3))
}
