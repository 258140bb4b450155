package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}

// Bounds for the grid window.
const (
	DefaultWeeks = 52
	MinWeeks     = 1
	MaxWeeks     = 104
	DaysPerWeek  = 7
)

// Intensity levels used to color a day.
const (
	EmptyLevel = 0
	MaxLevel   = 6
	NumLevels  = MaxLevel + 1
)
