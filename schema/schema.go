// Package schema has the models shared by every part of reef.
package schema

import "time"

// CommitRecord is a single commit as reported by git log.
// Duplicates are valid and each counts separately.
type CommitRecord struct {
	Hash   string `json:"hash"`
	Date   Date   `json:"date"`
	Author string `json:"author"`
}

// Filters narrow the commits requested from the repository.
// Since and Until are passed through to git verbatim.
type Filters struct {
	Author string `json:"author,omitempty"`
	Since  string `json:"since,omitempty"`
	Until  string `json:"until,omitempty"`
}

// Descriptions returns the active filters as "name: value" strings, in
// author, since, until order.
func (f Filters) Descriptions() []string {
	var out []string
	if f.Author != "" {
		out = append(out, "author: "+f.Author)
	}
	if f.Since != "" {
		out = append(out, "since: "+f.Since)
	}
	if f.Until != "" {
		out = append(out, "until: "+f.Until)
	}
	return out
}

// DailyCount maps a calendar day to its number of commits.
// Days without commits are absent.
type DailyCount map[Date]int

// DayCell is one day of the grid.
type DayCell struct {
	Date      Date         `json:"date"`
	Count     int          `json:"count"`
	DayOfWeek time.Weekday `json:"weekday"` // 0=Sunday
}

// Week is a run of consecutive days that ends on a Saturday.
type Week []DayCell

// Grid is the ordered sequence of weeks covering the requested window.
type Grid []Week

// Days flattens the grid into its chronological day sequence.
func (g Grid) Days() []DayCell {
	var days []DayCell
	for _, w := range g {
		days = append(days, w...)
	}
	return days
}

// MaxCount returns the largest count of any day in the grid.
func (g Grid) MaxCount() int {
	m := 0
	for _, w := range g {
		for _, d := range w {
			m = max(m, d.Count)
		}
	}
	return m
}

// Statistics summarizes a commit collection.
type Statistics struct {
	TotalCommits    int     `json:"total_commits"`
	UniqueAuthors   int     `json:"unique_authors"`
	MostActiveDay   *Date   `json:"most_active_day,omitempty"` // nil when there are no commits
	MaxCommitsInDay int     `json:"max_commits_in_day"`
	AveragePerDay   float64 `json:"average_per_day"`
	Streak          int     `json:"streak"`
}

// AuthorCount is the number of commits made by one author.
type AuthorCount struct {
	Author  string  `json:"author"`
	Commits int     `json:"commits"`
	Share   float64 `json:"share"` // fraction of all commits, 0-1
}

// Report is everything needed to print one run of reef.
type Report struct {
	RepoPath     string
	Filters      Filters
	Weeks        int
	TotalCommits int
	Grid         Grid
	Weekly       []int       // per-week commit totals, in grid order
	Stats        *Statistics // nil when statistics are disabled
	Authors      []AuthorCount
}
