package visual

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"godrift/domain/core"
	"godrift/domain/drift"
)

// Chart renders a drift report as a horizontal-bar SVG: one bar per feature
// sized by p-value, red for drifted features, green otherwise, with a dashed
// vertical line at the active threshold. Purely presentational; callers must
// treat any failure here as cosmetic.
type Chart struct {
	Width     int
	BarHeight int
}

// NewChart creates a chart with default geometry.
func NewChart() *Chart {
	return &Chart{Width: 760, BarHeight: 26}
}

// Render produces the SVG document for a report at the given threshold.
func (c *Chart) Render(r *drift.Report, threshold float64) string {
	names := make([]core.FeatureName, 0, len(r.Features))
	for name := range r.Features {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	const labelWidth = 200
	const margin = 20
	plotWidth := c.Width - labelWidth - 2*margin
	height := 2*margin + c.BarHeight*len(names) + 30

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", c.Width, height)
	fmt.Fprintf(&b, `<text x="%d" y="14" font-family="sans-serif" font-size="13">Drift detection - p-values per feature</text>`+"\n", margin)

	for i, name := range names {
		result := r.Features[name]
		y := margin + 10 + i*c.BarHeight
		barLen := int(result.PValue * float64(plotWidth))
		color := "#2e8b57"
		if result.DriftDetected {
			color = "#c0392b"
		}
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="11" text-anchor="end">%s</text>`+"\n",
			labelWidth-6, y+c.BarHeight/2+4, escape(name.String()))
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			labelWidth, y, barLen, c.BarHeight-6, color)
	}

	// Threshold reference line across the plot area.
	tx := labelWidth + int(threshold*float64(plotWidth))
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black" stroke-dasharray="4,3"/>`+"\n",
		tx, margin+4, tx, height-margin)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="11">threshold (%.2f)</text>`+"\n",
		tx+4, height-margin+12, threshold)

	b.WriteString("</svg>\n")
	return b.String()
}

// WriteFile renders the chart next to a JSON artifact, reusing its base path
// with an .svg extension.
func (c *Chart) WriteFile(path string, r *drift.Report, threshold float64) error {
	svgPath := strings.TrimSuffix(path, ".json") + ".svg"
	return os.WriteFile(svgPath, []byte(c.Render(r, threshold)), 0644)
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
