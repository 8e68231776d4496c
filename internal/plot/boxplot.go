// Package plot renders raster chart fallbacks for visuals the native chart
// parts cannot express. Rendering is best-effort: callers substitute
// placeholder text when it fails.
package plot

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Group is one labeled distribution in a boxplot.
type Group struct {
	Label  string
	Values []float64
}

// BoxPlot renders a grouped boxplot to PNG at the given size in inches.
func BoxPlot(groups []Group, title, yLabel string, widthIn, heightIn float64) ([]byte, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("boxplot needs at least one group")
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
		if len(g.Values) == 0 {
			return nil, fmt.Errorf("group %q has no values", g.Label)
		}
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(g.Values))
		if err != nil {
			return nil, fmt.Errorf("could not build box for %q: %w", g.Label, err)
		}
		p.Add(box)
	}
	p.NominalX(labels...)

	wt, err := p.WriterTo(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("could not render boxplot: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("could not encode boxplot PNG: %w", err)
	}
	return buf.Bytes(), nil
}
