package contract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/reef/schema"
)

// Define the regular expression to capture "N [units] ago"
// e.g., "2 years ago", "3 months ago", "1 week ago".
var relativeDateRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day)s?\s+ago$`)

// ParseRelativeDate converts strings like "2 years ago" into the calendar day
// that long before now.
func ParseRelativeDate(s string, now time.Time) (schema.Date, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	matches := relativeDateRe.FindStringSubmatch(s)
	if len(matches) == 0 {
		return schema.Date{}, fmt.Errorf("invalid relative date format: %s", s)
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return schema.Date{}, fmt.Errorf("invalid relative date value: %s", matches[1])
	}

	today := schema.DateOf(now)
	switch matches[2] {
	case "year":
		return schema.DateOf(now.AddDate(-value, 0, 0)), nil
	case "month":
		return schema.DateOf(now.AddDate(0, -value, 0)), nil
	case "week":
		return today.AddDays(-7 * value), nil
	default:
		return today.AddDays(-value), nil
	}
}

// ParseDateInput accepts YYYY-MM-DD, RFC3339 or "N [units] ago".
func ParseDateInput(s string, now time.Time) (schema.Date, error) {
	s = strings.TrimSpace(s)
	if d, err := schema.ParseDate(s); err == nil {
		return d, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return schema.DateOf(t), nil
	}
	if d, err := ParseRelativeDate(s, now); err == nil {
		return d, nil
	}
	return schema.Date{}, fmt.Errorf("unrecognized date %q. Expected YYYY-MM-DD, RFC3339 or 'N [units] ago'", s)
}

// SpanWeeks returns the number of week columns needed to show since..until,
// capped at schema.MaxWeeks.
func SpanWeeks(since, until schema.Date) int {
	days := since.DaysUntil(until)
	if days < 0 {
		days = -days
	}
	weeks := (days+schema.DaysPerWeek-1)/schema.DaysPerWeek + 1
	return min(schema.MaxWeeks, weeks)
}
