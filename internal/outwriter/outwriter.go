// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/reef/internal/contract"
	"github.com/huangsam/reef/schema"
)

// WriteReport outputs the report, dispatching based on the output format configured.
func WriteReport(w io.Writer, report schema.Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSON(w, report); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSV(w, report); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeReportText(w, report, cfg)
	}
	return nil
}

// writeReportText prints the human-readable reef. Blocks are printed in the
// order header, grid, trend, legend, statistics and author table.
func writeReportText(w io.Writer, report schema.Report, cfg *contract.Config) error {
	blocks := []string{RenderHeader(report.RepoPath, report.Filters.Descriptions())}

	if report.TotalCommits == 0 {
		blocks = append(blocks, RenderNoData())
		return printBlocks(w, blocks)
	}

	blocks = append(blocks, RenderReef(report.Grid, RenderOptions{}))
	if cfg.ShowTrend {
		if trend := RenderTrend(report.Weekly); trend != "" {
			blocks = append(blocks, trend)
		}
	}
	if cfg.ShowLegend {
		blocks = append(blocks, RenderLegend())
	}
	if report.Stats != nil {
		blocks = append(blocks, RenderStats(*report.Stats))
	}
	if err := printBlocks(w, blocks); err != nil {
		return err
	}

	if len(report.Authors) > 0 {
		return writeAuthorTable(w, report.Authors)
	}
	return nil
}

// printBlocks writes each block followed by a newline.
func printBlocks(w io.Writer, blocks []string) error {
	for _, b := range blocks {
		if _, err := fmt.Fprintln(w, b); err != nil {
			return err
		}
	}
	return nil
}
