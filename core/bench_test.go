package core

import (
	"fmt"
	"testing"

	"github.com/huangsam/reef/core/agg"
	"github.com/huangsam/reef/schema"
)

// syntheticHistory spreads n commits over the two years before end.
func syntheticHistory(n int, end schema.Date) []schema.CommitRecord {
	commits := make([]schema.CommitRecord, n)
	for i := range commits {
		commits[i] = schema.CommitRecord{
			Hash:   fmt.Sprintf("%040d", i),
			Date:   end.AddDays(-(i * 7 % (schema.MaxWeeks * schema.DaysPerWeek))),
			Author: fmt.Sprintf("author-%d", i%25),
		}
	}
	return commits
}

func BenchmarkBuildGrid(b *testing.B) {
	counts := agg.AggregateByDay(syntheticHistory(50_000, wednesday))
	for b.Loop() {
		_ = BuildGrid(schema.MaxWeeks, wednesday, counts)
	}
}

func BenchmarkComputeStatistics(b *testing.B) {
	for _, n := range []int{1_000, 50_000} {
		commits := syntheticHistory(n, wednesday)
		b.Run(fmt.Sprintf("commits=%d", n), func(b *testing.B) {
			for b.Loop() {
				_ = ComputeStatistics(commits, wednesday)
			}
		})
	}
}
