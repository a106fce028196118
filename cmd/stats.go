package cmd

import (
	"bytes"
	"fmt"
	"image"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
)

// formatRenderStats renders the statistics of a finished render as a table.
// img may be nil when no in-memory image was kept.
func formatRenderStats(stats renderer.RenderStats, img image.Image) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})

	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", stats.Width, stats.Height)})
	table.Append([]string{"Pixels", fmt.Sprintf("%d", stats.TotalPixels)})
	table.Append([]string{"Samples/pixel", fmt.Sprintf("%d", stats.SamplesPerPixel)})
	table.Append([]string{"Samples", fmt.Sprintf("%d", stats.TotalSamples)})
	table.Append([]string{"Rays traced", fmt.Sprintf("%d", stats.RaysTraced())})
	table.Append([]string{"Escaped paths", fmt.Sprintf("%d", stats.EscapedPaths)})
	table.Append([]string{"Absorbed paths", fmt.Sprintf("%d", stats.AbsorbedPaths)})
	table.Append([]string{"Depth-limited paths", fmt.Sprintf("%d", stats.ExhaustedPaths)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", stats.Workers)})
	table.Append([]string{"Samples/sec", fmt.Sprintf("%.0f", stats.SamplesPerSecond())})
	if img != nil {
		table.Append([]string{"Avg luminance", fmt.Sprintf("%.2f", renderer.CalculateAverageLuminance(img))})
	}
	table.SetFooter([]string{"TOTAL", stats.Duration.String()})

	table.Render()
	return buf.String()
}

func displayRenderStats(stats renderer.RenderStats, img image.Image) {
	logger.Noticef("render statistics\n%s", formatRenderStats(stats, img))
}
