// Package agg has aggregation logic for commit activity data.
package agg

import (
	"sort"

	"github.com/huangsam/reef/schema"
)

// AggregateByDay counts commits per calendar day. Days without commits are
// absent from the result; an empty input yields an empty map.
func AggregateByDay(commits []schema.CommitRecord) schema.DailyCount {
	counts := make(schema.DailyCount)
	for _, c := range commits {
		counts[c.Date]++
	}
	return counts
}

// CountByAuthor counts commits per exact author string.
func CountByAuthor(commits []schema.CommitRecord) map[string]int {
	counts := make(map[string]int)
	for _, c := range commits {
		counts[c.Author]++
	}
	return counts
}

// TopAuthors returns the n most active authors, ordered by commit count and
// then by name. It returns nil when n <= 0 or there are no commits.
func TopAuthors(commits []schema.CommitRecord, n int) []schema.AuthorCount {
	if n <= 0 || len(commits) == 0 {
		return nil
	}

	byAuthor := CountByAuthor(commits)
	authors := make([]schema.AuthorCount, 0, len(byAuthor))
	total := float64(len(commits))
	for name, count := range byAuthor {
		authors = append(authors, schema.AuthorCount{
			Author:  name,
			Commits: count,
			Share:   float64(count) / total,
		})
	}

	sort.Slice(authors, func(i, j int) bool {
		if authors[i].Commits != authors[j].Commits {
			return authors[i].Commits > authors[j].Commits
		}
		return authors[i].Author < authors[j].Author
	})

	return authors[:min(n, len(authors))]
}

// SortedDays returns the keys of counts in chronological order.
func SortedDays(counts schema.DailyCount) []schema.Date {
	days := make([]schema.Date, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}
