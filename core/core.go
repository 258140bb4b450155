// Package core has core logic for aggregation, grid layout and statistics.
package core

import (
	"context"
	"errors"
	"io"

	"github.com/huangsam/reef/core/agg"
	"github.com/huangsam/reef/internal/contract"
	"github.com/huangsam/reef/internal/outwriter"
	"github.com/huangsam/reef/schema"
)

// ExecuteReef queries the repository and writes the activity report to w.
// It serves as the main entry point for the root command.
func ExecuteReef(ctx context.Context, cfg *contract.Config, client contract.GitClient, w io.Writer) error {
	commits := LoadCommits(ctx, cfg, client)
	report := BuildReport(cfg, commits)
	if cfg.Output == schema.TextOut {
		outwriter.WarnIfTooWide(cfg)
	}
	return outwriter.WriteReport(w, report, cfg)
}

// LoadCommits returns the commits matching cfg's filters. Any query failure
// yields an empty collection so an empty or broken repository renders as "no data".
func LoadCommits(ctx context.Context, cfg *contract.Config, client contract.GitClient) []schema.CommitRecord {
	commits, err := client.ListCommits(ctx, cfg.RepoPath, cfg.Filters)
	if err != nil {
		if errors.Is(err, contract.ErrGitUnavailable) {
			contract.LogWarn("Cannot query commits", err)
		} else {
			contract.LogDebug("git log failed, treating as no commits", "error", err)
		}
		return nil
	}
	contract.LogDebug("loaded commits", "count", len(commits))
	return commits
}

// BuildReport runs the pipeline: aggregate, lay out the grid and derive statistics.
// Statistics use every commit, not just those inside the grid window.
func BuildReport(cfg *contract.Config, commits []schema.CommitRecord) schema.Report {
	grid := BuildGrid(cfg.Weeks, cfg.EndDate, agg.AggregateByDay(commits))

	report := schema.Report{
		RepoPath:     cfg.RepoPath,
		Filters:      cfg.Filters,
		Weeks:        cfg.Weeks,
		TotalCommits: len(commits),
		Grid:         grid,
		Weekly:       WeeklyTotals(grid),
		Authors:      agg.TopAuthors(commits, cfg.TopAuthors),
	}
	if cfg.ShowStats {
		stats := ComputeStatistics(commits, cfg.Today)
		report.Stats = &stats
	}
	return report
}
