package compose

import (
	"strconv"

	"github.com/decklab/decksmith/internal/deck"
)

// chartSeries is one named series of a stacked column chart.
type chartSeries struct {
	name   string
	values []float64
}

// addStackedColumnChart places the standard sales chart: stacked columns,
// fixed series palette cycling per group, dollar-formatted value axis, and a
// right-hand legend.
func addStackedColumnChart(slide *deck.Slide, fr deck.Frame, title string, categories []string, series []chartSeries) {
	chart := slide.AddChart(deck.ColumnStacked, fr)
	chart.Title = title
	chart.Categories = categories
	chart.Legend = &deck.Legend{Position: "r", FontSize: 12}
	chart.ValueAxis.TickFontSize = 12
	chart.ValueAxis.NumberFormat = "$#,##0"
	chart.CategoryAxis.TickFontSize = 12

	for i, s := range series {
		color := seriesPalette[i%len(seriesPalette)]
		ser := chart.AddSeries(s.name, s.values)
		fill := color
		ser.Fill = &fill
		ser.PointFills = make([]deck.RGB, len(s.values))
		ser.PointLines = make([]deck.RGB, len(s.values))
		for p := range s.values {
			ser.PointFills[p] = color
			ser.PointLines[p] = color
		}
	}
}

// addSparkline overlays a tiny line chart stripped to its plot area.
func addSparkline(slide *deck.Slide, values []float64, fr deck.Frame) {
	chart := slide.AddChart(deck.LineMarkers, fr)
	chart.Categories = indexLabels(len(values))
	ser := chart.AddSeries("Data", values)
	line := navy
	ser.LineColor = &line
	ser.LineWidth = deck.Points(1)
	markerFill := navy
	markerLine := navy
	ser.Marker = &deck.Marker{Symbol: "circle", Size: 2, Fill: &markerFill, Line: &markerLine}
	chart.StripToPlotArea()
}

// addSparkbar overlays a tiny column chart stripped to its plot area, with
// each point colored by sign. The value axis is pinned to the data range so
// bars fill the cell.
func addSparkbar(slide *deck.Slide, values []float64, fr deck.Frame) {
	chart := slide.AddChart(deck.ColumnClustered, fr)
	chart.Categories = indexLabels(len(values))
	chart.GapWidth = 25

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	chart.ValueAxis.Min = &min
	chart.ValueAxis.Max = &max

	ser := chart.AddSeries("Data", values)
	ser.PointFills = make([]deck.RGB, len(values))
	for i, v := range values {
		switch {
		case v > 0:
			ser.PointFills[i] = sparkPositive
		case v < 0:
			ser.PointFills[i] = sparkNegative
		default:
			ser.PointFills[i] = sparkZero
		}
	}
	chart.StripToPlotArea()
}

func indexLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}
