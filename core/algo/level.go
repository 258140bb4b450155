// Package algo has the pure intensity classification used for coloring.
package algo

import "github.com/huangsam/reef/schema"

// levelThresholds are inclusive upper bounds on count/max for levels 1-5.
// Anything above the last bound is schema.MaxLevel.
var levelThresholds = [...]float64{0.10, 0.25, 0.50, 0.75, 0.90}

// ClassifyLevel maps a day's count to an intensity level in 0..6 relative to
// the busiest day shown. Zero counts are level 0; a non-positive max marks any
// non-zero count as level 1.
func ClassifyLevel(count, maxCount int) int {
	if count <= 0 {
		return schema.EmptyLevel
	}
	if maxCount <= 0 {
		return 1
	}
	ratio := float64(count) / float64(maxCount)
	for i, bound := range levelThresholds {
		if ratio <= bound {
			return i + 1
		}
	}
	return schema.MaxLevel
}
