package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// ChartType selects the chart kind for an embedded chart part.
type ChartType int

// Supported chart types.
const (
	// ColumnStacked is a stacked vertical bar chart.
	ColumnStacked ChartType = iota
	// ColumnClustered is a clustered vertical bar chart.
	ColumnClustered
	// LineMarkers is a line chart with point markers.
	LineMarkers
)

// Marker describes the point markers of a line series.
type Marker struct {
	Symbol string // "circle"
	Size   int
	Fill   *RGB
	Line   *RGB
}

// Series is a single data series. Point-level slices are indexed by
// category and may be shorter than Values; missing entries inherit the
// series formatting.
type Series struct {
	Name       string
	Values     []float64
	Fill       *RGB
	PointFills []RGB
	PointLines []RGB
	LineColor  *RGB // line charts
	LineWidth  EMU
	Marker     *Marker
}

// AxisOptions controls one chart axis.
type AxisOptions struct {
	Hidden         bool
	MajorGridlines bool
	NoLabels       bool
	TickFontSize   float64 // points; 0 inherits
	TickFontColor  *RGB
	NumberFormat   string
	Min            *float64
	Max            *float64
}

// Legend places a chart legend.
type Legend struct {
	Position string // "r", "b", "t", "l"
	FontSize float64
}

// Chart is an embedded chart. The chart data lives in its own part in the
// package; the slide holds a graphic frame referencing it.
type Chart struct {
	Frame        Frame
	Type         ChartType
	Categories   []string
	Series       []*Series
	Title        string
	Legend       *Legend
	GapWidth     int
	ValueAxis    AxisOptions
	CategoryAxis AxisOptions
	// PlotAreaOnly pins the plot area to the full graphic frame with a
	// manual layout. Set by StripToPlotArea.
	PlotAreaOnly bool

	partName string // assigned while writing the package
}

// AddSeries appends a data series.
func (c *Chart) AddSeries(name string, values []float64) *Series {
	s := &Series{Name: name, Values: values}
	c.Series = append(c.Series, s)
	return s
}

// StripToPlotArea removes every chart element except the plotted series:
// axes, gridlines, titles, labels, and legend all go, and the plot area is
// stretched edge to edge. This is what turns a chart into a sparkline small
// enough to sit inside a table cell.
func (c *Chart) StripToPlotArea() {
	c.Title = ""
	c.Legend = nil
	white := White
	c.ValueAxis.Hidden = true
	c.ValueAxis.MajorGridlines = false
	c.ValueAxis.NoLabels = true
	c.ValueAxis.TickFontSize = 1
	c.ValueAxis.TickFontColor = &white
	c.CategoryAxis.Hidden = true
	c.CategoryAxis.MajorGridlines = false
	c.CategoryAxis.NoLabels = true
	c.CategoryAxis.TickFontSize = 1
	c.CategoryAxis.TickFontColor = &white
	c.PlotAreaOnly = true
}

// Fixed axis ids; each chart lives in its own part so they never collide.
const (
	catAxisID = 111111111
	valAxisID = 222222222
)

// writeXML emits the slide-side graphic frame pointing at the chart part.
func (c *Chart) writeXML(b *strings.Builder, ctx *slideContext) {
	rid := ctx.addRel(relTypeChart, "../"+c.partName, "")
	id := ctx.shapeID()
	fmt.Fprintf(b, `<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Chart %d"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr>`, id, id)
	fmt.Fprintf(b, `<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`, c.Frame.Left, c.Frame.Top, c.Frame.Width, c.Frame.Height)
	fmt.Fprintf(b, `<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:chart xmlns:c="%s" r:id="%s"/></a:graphicData></a:graphic></p:graphicFrame>`, nsChart, rid)
}

// partXML renders the complete chart part.
func (c *Chart) partXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<c:chartSpace xmlns:c="%s" xmlns:a="%s" xmlns:r="%s">`, nsChart, nsDrawing, nsRelationships)
	b.WriteString(`<c:chart>`)

	if c.Title != "" {
		b.WriteString(`<c:title><c:tx><c:rich><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>`)
		b.WriteString(xmlEscape(c.Title))
		b.WriteString(`</a:t></a:r></a:p></c:rich></c:tx><c:overlay val="0"/></c:title><c:autoTitleDeleted val="0"/>`)
	} else {
		b.WriteString(`<c:autoTitleDeleted val="1"/>`)
	}

	b.WriteString(`<c:plotArea>`)
	if c.PlotAreaOnly {
		b.WriteString(`<c:layout><c:manualLayout><c:layoutTarget val="inner"/><c:xMode val="edge"/><c:yMode val="edge"/><c:x val="0"/><c:y val="0"/><c:w val="1"/><c:h val="1"/></c:manualLayout></c:layout>`)
	} else {
		b.WriteString(`<c:layout/>`)
	}

	switch c.Type {
	case ColumnStacked, ColumnClustered:
		c.writeBarChart(&b)
	case LineMarkers:
		c.writeLineChart(&b)
	}

	c.writeCategoryAxis(&b)
	c.writeValueAxis(&b)
	b.WriteString(`</c:plotArea>`)

	if c.Legend != nil {
		pos := c.Legend.Position
		if pos == "" {
			pos = "r"
		}
		fmt.Fprintf(&b, `<c:legend><c:legendPos val="%s"/><c:overlay val="0"/>`, pos)
		if c.Legend.FontSize > 0 {
			writeChartTextProps(&b, c.Legend.FontSize, nil)
		}
		b.WriteString(`</c:legend>`)
	}

	b.WriteString(`<c:plotVisOnly val="1"/><c:dispBlanksAs val="gap"/></c:chart></c:chartSpace>`)
	return b.String()
}

func (c *Chart) writeBarChart(b *strings.Builder) {
	grouping := "clustered"
	if c.Type == ColumnStacked {
		grouping = "stacked"
	}
	fmt.Fprintf(b, `<c:barChart><c:barDir val="col"/><c:grouping val="%s"/><c:varyColors val="0"/>`, grouping)
	for i, s := range c.Series {
		fmt.Fprintf(b, `<c:ser><c:idx val="%d"/><c:order val="%d"/>`, i, i)
		writeSeriesName(b, s.Name, i)
		if s.Fill != nil {
			b.WriteString(`<c:spPr>`)
			writeSolidFill(b, *s.Fill)
			b.WriteString(`</c:spPr>`)
		}
		b.WriteString(`<c:invertIfNegative val="0"/>`)
		for pi := range s.Values {
			var fill, line *RGB
			if pi < len(s.PointFills) {
				fill = &s.PointFills[pi]
			}
			if pi < len(s.PointLines) {
				line = &s.PointLines[pi]
			}
			if fill == nil && line == nil {
				continue
			}
			fmt.Fprintf(b, `<c:dPt><c:idx val="%d"/><c:invertIfNegative val="0"/><c:bubble3D val="0"/><c:spPr>`, pi)
			if fill != nil {
				writeSolidFill(b, *fill)
			}
			if line != nil {
				b.WriteString(`<a:ln>`)
				writeSolidFill(b, *line)
				b.WriteString(`</a:ln>`)
			}
			b.WriteString(`</c:spPr></c:dPt>`)
		}
		writeCategoryRef(b, c.Categories)
		writeValueRef(b, s.Values, i)
		b.WriteString(`</c:ser>`)
	}
	fmt.Fprintf(b, `<c:gapWidth val="%d"/>`, c.GapWidth)
	if c.Type == ColumnStacked {
		b.WriteString(`<c:overlap val="100"/>`)
	}
	fmt.Fprintf(b, `<c:axId val="%d"/><c:axId val="%d"/></c:barChart>`, catAxisID, valAxisID)
}

func (c *Chart) writeLineChart(b *strings.Builder) {
	b.WriteString(`<c:lineChart><c:grouping val="standard"/><c:varyColors val="0"/>`)
	for i, s := range c.Series {
		fmt.Fprintf(b, `<c:ser><c:idx val="%d"/><c:order val="%d"/>`, i, i)
		writeSeriesName(b, s.Name, i)
		if s.LineColor != nil || s.LineWidth > 0 {
			w := s.LineWidth
			if w == 0 {
				w = Points(1)
			}
			fmt.Fprintf(b, `<c:spPr><a:ln w="%d">`, w)
			if s.LineColor != nil {
				writeSolidFill(b, *s.LineColor)
			}
			b.WriteString(`</a:ln></c:spPr>`)
		}
		if s.Marker != nil {
			symbol := s.Marker.Symbol
			if symbol == "" {
				symbol = "circle"
			}
			size := s.Marker.Size
			if size <= 0 {
				size = 5
			}
			fmt.Fprintf(b, `<c:marker><c:symbol val="%s"/><c:size val="%d"/>`, symbol, size)
			if s.Marker.Fill != nil || s.Marker.Line != nil {
				b.WriteString(`<c:spPr>`)
				if s.Marker.Fill != nil {
					writeSolidFill(b, *s.Marker.Fill)
				}
				if s.Marker.Line != nil {
					b.WriteString(`<a:ln>`)
					writeSolidFill(b, *s.Marker.Line)
					b.WriteString(`</a:ln>`)
				}
				b.WriteString(`</c:spPr>`)
			}
			b.WriteString(`</c:marker>`)
		}
		writeCategoryRef(b, c.Categories)
		writeValueRef(b, s.Values, i)
		b.WriteString(`<c:smooth val="0"/></c:ser>`)
	}
	b.WriteString(`<c:marker val="1"/>`)
	fmt.Fprintf(b, `<c:axId val="%d"/><c:axId val="%d"/></c:lineChart>`, catAxisID, valAxisID)
}

func (c *Chart) writeCategoryAxis(b *strings.Builder) {
	a := c.CategoryAxis
	fmt.Fprintf(b, `<c:catAx><c:axId val="%d"/><c:scaling><c:orientation val="minMax"/></c:scaling>`, catAxisID)
	writeAxisCommon(b, a, "b")
	fmt.Fprintf(b, `<c:crossAx val="%d"/></c:catAx>`, valAxisID)
}

func (c *Chart) writeValueAxis(b *strings.Builder) {
	a := c.ValueAxis
	fmt.Fprintf(b, `<c:valAx><c:axId val="%d"/><c:scaling><c:orientation val="minMax"/>`, valAxisID)
	if a.Max != nil {
		fmt.Fprintf(b, `<c:max val="%s"/>`, formatFloat(*a.Max))
	}
	if a.Min != nil {
		fmt.Fprintf(b, `<c:min val="%s"/>`, formatFloat(*a.Min))
	}
	b.WriteString(`</c:scaling>`)
	writeAxisCommon(b, a, "l")
	fmt.Fprintf(b, `<c:crossAx val="%d"/></c:valAx>`, catAxisID)
}

func writeAxisCommon(b *strings.Builder, a AxisOptions, pos string) {
	if a.Hidden {
		b.WriteString(`<c:delete val="1"/>`)
	} else {
		b.WriteString(`<c:delete val="0"/>`)
	}
	fmt.Fprintf(b, `<c:axPos val="%s"/>`, pos)
	if a.MajorGridlines {
		b.WriteString(`<c:majorGridlines/>`)
	}
	if a.NumberFormat != "" {
		fmt.Fprintf(b, `<c:numFmt formatCode="%s" sourceLinked="0"/>`, xmlEscape(a.NumberFormat))
	}
	if a.NoLabels {
		b.WriteString(`<c:tickLblPos val="none"/>`)
	} else {
		b.WriteString(`<c:tickLblPos val="nextTo"/>`)
	}
	if a.TickFontSize > 0 || a.TickFontColor != nil {
		size := a.TickFontSize
		if size == 0 {
			size = 10
		}
		writeChartTextProps(b, size, a.TickFontColor)
	}
}

// writeChartTextProps emits a c:txPr block with a default run size/color.
func writeChartTextProps(b *strings.Builder, size float64, color *RGB) {
	fmt.Fprintf(b, `<c:txPr><a:bodyPr/><a:lstStyle/><a:p><a:pPr><a:defRPr sz="%d">`, centipoints(size))
	if color != nil {
		writeSolidFill(b, *color)
	}
	b.WriteString(`</a:defRPr></a:pPr><a:endParaRPr lang="en-US"/></a:p></c:txPr>`)
}

func writeSeriesName(b *strings.Builder, name string, idx int) {
	fmt.Fprintf(b, `<c:tx><c:strRef><c:f>Sheet1!$%s$1</c:f><c:strCache><c:ptCount val="1"/><c:pt idx="0"><c:v>%s</c:v></c:pt></c:strCache></c:strRef></c:tx>`,
		columnLetter(idx+1), xmlEscape(name))
}

func writeCategoryRef(b *strings.Builder, categories []string) {
	fmt.Fprintf(b, `<c:cat><c:strRef><c:f>Sheet1!$A$2:$A$%d</c:f><c:strCache><c:ptCount val="%d"/>`, len(categories)+1, len(categories))
	for i, cat := range categories {
		fmt.Fprintf(b, `<c:pt idx="%d"><c:v>%s</c:v></c:pt>`, i, xmlEscape(cat))
	}
	b.WriteString(`</c:strCache></c:strRef></c:cat>`)
}

func writeValueRef(b *strings.Builder, values []float64, serIdx int) {
	col := columnLetter(serIdx + 1)
	fmt.Fprintf(b, `<c:val><c:numRef><c:f>Sheet1!$%s$2:$%s$%d</c:f><c:numCache><c:formatCode>General</c:formatCode><c:ptCount val="%d"/>`,
		col, col, len(values)+1, len(values))
	for i, v := range values {
		fmt.Fprintf(b, `<c:pt idx="%d"><c:v>%s</c:v></c:pt>`, i, formatFloat(v))
	}
	b.WriteString(`</c:numCache></c:numRef></c:val>`)
}

// columnLetter converts a zero-based column index to a spreadsheet column
// name (0 -> A, 25 -> Z, 26 -> AA).
func columnLetter(idx int) string {
	name := ""
	for idx >= 0 {
		name = string(rune('A'+idx%26)) + name
		idx = idx/26 - 1
	}
	return name
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
