package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/reef/schema"
	"golang.org/x/term"
)

// Now is the clock used to resolve "today". Tests replace it.
var Now = time.Now

// StdoutIsTerminal reports whether stdout is attached to a terminal.
var StdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Config holds the runtime configuration for one reef run.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath string
	Filters  schema.Filters

	Weeks   int         // number of week columns, 1-104
	EndDate schema.Date // reference end date of the grid (until or today)
	Today   schema.Date // anchor for the streak walk

	ShowStats  bool
	ShowLegend bool
	ShowTrend  bool
	TopAuthors int // 0 disables the author table

	Output    schema.OutputMode
	UseColors bool
	Width     int // Terminal width override (0 = auto-detect)
	Debug     bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Author   string `mapstructure:"author"`
	Since    string `mapstructure:"since"`
	Until    string `mapstructure:"until"`
	Weeks    string `mapstructure:"weeks"`
	NoStats  bool   `mapstructure:"no-stats"`
	NoLegend bool   `mapstructure:"no-legend"`
	Trend    bool   `mapstructure:"trend"`
	Authors  int    `mapstructure:"authors"`
	Output   string `mapstructure:"output"`
	Color    string `mapstructure:"color"`
	Width    int    `mapstructure:"width"`
	Debug    bool   `mapstructure:"debug"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := resolveRepoPath(ctx, cfg, client, input); err != nil {
		return err
	}
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWeeks(cfg, input); err != nil {
		return err
	}
	processDateRange(cfg, input)
	return nil
}

// resolveRepoPath makes the repository path absolute and checks that git recognizes it.
func resolveRepoPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absPath, err := filepath.Abs(searchPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotARepository, err)
	}
	absPath = filepath.Clean(absPath)

	if !client.IsRepository(ctx, absPath) {
		return fmt.Errorf("%w: %s", ErrNotARepository, absPath)
	}
	cfg.RepoPath = absPath
	return nil
}

// validateSimpleInputs processes and validates the fields that need no cross-checks.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Filters = schema.Filters{
		Author: strings.TrimSpace(input.Author),
		Since:  strings.TrimSpace(input.Since),
		Until:  strings.TrimSpace(input.Until),
	}
	cfg.ShowStats = !input.NoStats
	cfg.ShowLegend = !input.NoLegend
	cfg.ShowTrend = input.Trend
	cfg.Debug = input.Debug

	output := input.Output
	if output == "" {
		output = string(schema.TextOut)
	}
	cfg.Output = schema.OutputMode(strings.ToLower(output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("%w: invalid output format '%s'. must be text, json, csv", ErrInvalidArgument, input.Output)
	}

	colors, err := parseColorMode(input.Color)
	if err != nil {
		return fmt.Errorf("%w: invalid --color value: %v", ErrInvalidArgument, err)
	}
	cfg.UseColors = colors

	if input.Authors < 0 {
		return fmt.Errorf("%w: authors cannot be negative (received %d)", ErrInvalidArgument, input.Authors)
	}
	cfg.TopAuthors = input.Authors

	if input.Width < 0 {
		return fmt.Errorf("%w: width cannot be negative (received %d)", ErrInvalidArgument, input.Width)
	}
	cfg.Width = input.Width
	return nil
}

// parseColorMode resolves "auto" against the terminal and otherwise defers to ParseBoolString.
func parseColorMode(s string) (bool, error) {
	if s == "" || strings.EqualFold(s, "auto") {
		return StdoutIsTerminal(), nil
	}
	return ParseBoolString(s)
}

// processWeeks validates the window length. An empty value means the default.
func processWeeks(cfg *Config, input *ConfigRawInput) error {
	raw := strings.TrimSpace(input.Weeks)
	if raw == "" {
		cfg.Weeks = schema.DefaultWeeks
		return nil
	}
	weeks, err := strconv.Atoi(raw)
	if err != nil || weeks < schema.MinWeeks || weeks > schema.MaxWeeks {
		return fmt.Errorf("%w: Invalid weeks value. Must be between %d and %d.", ErrInvalidArgument, schema.MinWeeks, schema.MaxWeeks)
	}
	cfg.Weeks = weeks
	return nil
}

// processDateRange resolves the grid's end date and, when only --since bounds
// the window, widens the week count to span it. Dates that cannot be
// interpreted are still handed to git verbatim; the window keeps its default
// for them.
func processDateRange(cfg *Config, input *ConfigRawInput) {
	now := Now()
	cfg.Today = schema.DateOf(now)
	cfg.EndDate = cfg.Today

	if cfg.Filters.Until != "" {
		until, err := ParseDateInput(cfg.Filters.Until, now)
		if err != nil {
			LogWarn(fmt.Sprintf("Cannot place --until %q on the calendar; the grid ends today", cfg.Filters.Until), err)
		} else {
			cfg.EndDate = until
		}
	}

	if cfg.Filters.Since == "" || strings.TrimSpace(input.Weeks) != "" {
		return
	}
	since, err := ParseDateInput(cfg.Filters.Since, now)
	if err != nil {
		LogWarn(fmt.Sprintf("Cannot place --since %q on the calendar; showing %d weeks", cfg.Filters.Since, cfg.Weeks), err)
		return
	}
	cfg.Weeks = SpanWeeks(since, cfg.EndDate)
}
