package core

import (
	"github.com/huangsam/reef/core/agg"
	"github.com/huangsam/reef/schema"
)

// ComputeStatistics summarizes the full commit collection. today anchors the
// streak walk.
func ComputeStatistics(commits []schema.CommitRecord, today schema.Date) schema.Statistics {
	stats := schema.Statistics{
		TotalCommits:  len(commits),
		UniqueAuthors: len(agg.CountByAuthor(commits)),
	}

	daily := agg.AggregateByDay(commits)

	// Ties go to the earliest day.
	for _, d := range agg.SortedDays(daily) {
		if daily[d] > stats.MaxCommitsInDay {
			stats.MaxCommitsInDay = daily[d]
			day := d
			stats.MostActiveDay = &day
		}
	}

	if activeDays := len(daily); activeDays > 0 {
		stats.AveragePerDay = float64(stats.TotalCommits) / float64(activeDays)
	}

	stats.Streak = currentStreak(daily, today)
	return stats
}

// currentStreak counts consecutive days with commits walking back from today.
// An empty today does not break the streak; the walk continues from yesterday.
func currentStreak(daily schema.DailyCount, today schema.Date) int {
	streak := 0
	check := today
	for {
		switch {
		case daily[check] > 0:
			streak++
			check = check.AddDays(-1)
		case check == today:
			check = check.AddDays(-1)
		default:
			return streak
		}
	}
}
