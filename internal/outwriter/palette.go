package outwriter

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/reef/schema"
)

// levelHex runs from the deep ocean floor (no commits) to vibrant coral.
var levelHex = [schema.NumLevels]string{
	"#0a1628", // deep ocean floor
	"#1a3a5c", // deep water
	"#2d6a7a", // mid-water teal
	"#3d9a8a", // shallow reef
	"#5bc4a8", // bright reef
	"#ff7f6e", // coral pink
	"#ff5a47", // vibrant coral
}

var levelColors = func() [schema.NumLevels]*color.Color {
	var out [schema.NumLevels]*color.Color
	for i, h := range levelHex {
		out[i] = hexColor(h)
	}
	return out
}()

// Text colors shared by the renderers.
var (
	waveColor  = hexColor("#4a90a4")
	titleColor = hexColor("#5bc4a8").Add(color.Bold)
	labelColor = hexColor("#6a9ab0")
	valueColor = hexColor("#ff7f6e").Add(color.Bold)
	errorColor = hexColor("#ff5a47").Add(color.Bold)
)

// ColorForLevel returns the display color of an intensity level.
// Out-of-range levels get the empty color.
func ColorForLevel(level int) *color.Color {
	if level < 0 || level >= schema.NumLevels {
		return levelColors[schema.EmptyLevel]
	}
	return levelColors[level]
}

// HexForLevel returns the "#rrggbb" code of an intensity level.
func HexForLevel(level int) string {
	if level < 0 || level >= schema.NumLevels {
		return levelHex[schema.EmptyLevel]
	}
	return levelHex[level]
}

// hexColor builds a 24-bit foreground color from "#rrggbb".
// Malformed codes fall back to the default foreground.
func hexColor(hex string) *color.Color {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return color.New(color.Reset)
	}
	return color.RGB(r, g, b)
}

func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int((v >> 16) & 0xff), int((v >> 8) & 0xff), int(v & 0xff), true
}
