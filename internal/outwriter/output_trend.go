package outwriter

import (
	"github.com/guptarohit/asciigraph"
)

const (
	trendHeight  = 6
	trendCaption = "Commits per week"
)

// RenderTrend plots weekly commit totals as a line chart. It returns an
// empty string when there are fewer than two weeks to plot.
func RenderTrend(weekly []int) string {
	if len(weekly) < 2 {
		return ""
	}
	data := make([]float64, len(weekly))
	for i, v := range weekly {
		data[i] = float64(v)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(trendHeight),
		asciigraph.Width(len(data)*cellWidth),
		asciigraph.Caption(trendCaption),
		asciigraph.Precision(0),
	)
	return graph + "\n"
}
