package outwriter

import (
	"fmt"
	"os"

	"github.com/huangsam/reef/internal/contract"
	"golang.org/x/term"
)

const fallbackWidth = 80 // conservative default for narrow terminals and CI

// terminalSize is replaced in tests.
var terminalSize = func() (int, error) {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	return w, err
}

// TerminalWidth returns the width override when set, else the detected
// terminal width, else a fallback.
func TerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, err := terminalSize()
	if err != nil || detected <= 0 {
		return fallbackWidth
	}
	return detected
}

// MaxWeeksForWidth returns how many week columns fit into width, at least 1.
func MaxWeeksForWidth(width int) int {
	return max(1, (width-gridIndent)/cellWidth)
}

// WarnIfTooWide logs a warning when the reef would wrap in the terminal.
func WarnIfTooWide(cfg *contract.Config) {
	width := TerminalWidth(cfg)
	if GridWidth(cfg.Weeks) <= width {
		return
	}
	contract.LogWarn(fmt.Sprintf(
		"The reef needs %d columns but the terminal has %d; try --weeks %d",
		GridWidth(cfg.Weeks), width, MaxWeeksForWidth(width)), nil)
}
