// Package viz renders blend run outputs as terminal plots.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// PlotChannels renders one graph per output channel, labeled and stacked
// vertically. Channels with no samples are skipped.
func PlotChannels(series [][]float64, labels []string) string {
	var b strings.Builder

	for i, data := range series {
		if len(data) == 0 {
			continue
		}

		label := fmt.Sprintf("ch%d", i)
		if i < len(labels) {
			label = labels[i]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s vs cycle", label)),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}

	return b.String()
}
