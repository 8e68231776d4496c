package compose

import (
	"strings"

	"github.com/decklab/decksmith/internal/deck"
	"github.com/decklab/decksmith/internal/frame"
)

// grid is a frame unpacked for cell-by-cell table rendering.
type grid struct {
	headers []string
	numeric []bool
	strs    [][]string
	nums    [][]float64
	rows    int
}

func newGrid(f *frame.Frame) *grid {
	g := &grid{rows: f.Len()}
	for _, name := range f.Columns() {
		g.headers = append(g.headers, name)
		if f.IsNumeric(name) {
			vals, _ := f.Numbers(name)
			g.numeric = append(g.numeric, true)
			g.nums = append(g.nums, vals)
			g.strs = append(g.strs, nil)
		} else {
			vals, _ := f.Strings(name)
			g.numeric = append(g.numeric, false)
			g.nums = append(g.nums, nil)
			g.strs = append(g.strs, vals)
		}
	}
	return g
}

func (g *grid) cols() int { return len(g.headers) }

// rowValues returns the numeric values of one row in column order, keeping
// at most the trailing max entries (0 keeps all).
func (g *grid) rowValues(row, max int) []float64 {
	var vals []float64
	for c := range g.headers {
		if g.numeric[c] {
			vals = append(vals, g.nums[c][row])
		}
	}
	if max > 0 && len(vals) > max {
		vals = vals[len(vals)-max:]
	}
	return vals
}

// newStyledTable creates the table shell shared by the builders: merged
// navy title row, fixed column widths, uniform row heights.
func newStyledTable(slide *deck.Slide, rows, cols int, title string, left, top float64, widths []float64, st tableStyle) *deck.Table {
	total := 0.0
	for _, w := range widths {
		total += w
	}
	tbl := slide.AddTable(rows, cols, inFrame(left, top, total, st.rowHeight*float64(rows)))
	for c, w := range widths {
		tbl.ColWidths[c] = deck.Inches(w)
	}
	for r := range tbl.RowHeights {
		tbl.RowHeights[r] = deck.Inches(st.rowHeight)
	}

	lead := tbl.MergeAcross(0, 0, cols-1)
	fillCell(lead, navy)
	setText(&lead.Text, []string{title}, textStyle{
		size: st.font, bold: true, color: white,
		align: deck.AlignCenter, anchor: deck.AnchorMiddle,
	})
	return tbl
}

func fillCell(c *deck.Cell, color deck.RGB) {
	fill := color
	c.Fill = &fill
}

func headerCell(c *deck.Cell, label string, st tableStyle) {
	fillCell(c, navy)
	setText(&c.Text, []string{strings.ReplaceAll(label, "_", " ")}, textStyle{
		size: st.font, bold: true, color: white,
		align: deck.AlignCenter, anchor: deck.AnchorMiddle,
	})
}

func bottomBorder(c *deck.Cell) {
	c.AddBorder(deck.BorderBottom, "solid", navy, deck.Points(1))
}

// pivotWidths is the standard layout: a wide label column followed by
// uniform data columns.
func pivotWidths(cols int, st tableStyle) []float64 {
	widths := make([]float64, cols)
	widths[0] = st.pivotWidth
	for c := 1; c < cols; c++ {
		widths[c] = st.colWidth
	}
	return widths
}

// addValueTable renders a wide frame as a money table: header row, $ cells
// right-aligned, bold totals row, bottom borders on the last two rows.
func addValueTable(slide *deck.Slide, f *frame.Frame, title string, left, top float64, st tableStyle) {
	g := newGrid(f)
	tbl := newStyledTable(slide, g.rows+2, g.cols(), title, left, top, pivotWidths(g.cols(), st), st)

	for c, name := range g.headers {
		headerCell(tbl.Cell(1, c), name, st)
	}
	for r := 0; r < g.rows; r++ {
		last := r == g.rows-1
		for c := range g.headers {
			cell := tbl.Cell(r+2, c)
			style := textStyle{size: st.font, bold: last, anchor: deck.AnchorMiddle}
			if g.numeric[c] {
				cell.MarginRight = deck.Inches(0.05)
				style.align = deck.AlignRight
				setText(&cell.Text, []string{formatMoney(g.nums[c][r])}, style)
			} else {
				cell.MarginLeft = deck.Inches(0.05)
				setText(&cell.Text, []string{g.strs[c][r]}, style)
			}
			if r >= g.rows-2 {
				bottomBorder(cell)
			}
		}
	}
}

// addGrowthTable renders a growth frame as a percent table, coloring cells
// green, red, or plain by the sign of the value.
func addGrowthTable(slide *deck.Slide, f *frame.Frame, title string, left, top float64, st tableStyle) {
	g := newGrid(f)
	tbl := newStyledTable(slide, g.rows+2, g.cols(), title, left, top, pivotWidths(g.cols(), st), st)

	for c, name := range g.headers {
		headerCell(tbl.Cell(1, c), name, st)
	}
	for r := 0; r < g.rows; r++ {
		last := r == g.rows-1
		for c := range g.headers {
			cell := tbl.Cell(r+2, c)
			style := textStyle{size: st.font, bold: last, anchor: deck.AnchorMiddle}
			if g.numeric[c] {
				v := g.nums[c][r]
				cell.MarginRight = deck.Inches(0.05)
				style.align = deck.AlignRight
				switch sign(v) {
				case 1:
					fillCell(cell, positiveFill)
					style.color = positiveAccent
				case -1:
					fillCell(cell, negativeFill)
					style.color = negativeAccent
				default:
					fillCell(cell, white)
				}
				setText(&cell.Text, []string{formatPercent(v)}, style)
			} else {
				cell.MarginLeft = deck.Inches(0.05)
				fillCell(cell, white)
				setText(&cell.Text, []string{g.strs[c][r]}, style)
			}
			if r >= g.rows-2 {
				bottomBorder(cell)
			}
		}
	}
}

// addPropTable renders a mix frame as a percent table with gold proportion
// bars layered behind the cells. The first (label) column of the frame is
// not displayed; the table sits alongside a value table that already carries
// the labels.
func addPropTable(slide *deck.Slide, f *frame.Frame, title string, left, top float64, st tableStyle) {
	g := newGrid(f)
	cols := g.cols() - 1
	widths := make([]float64, cols)
	for c := range widths {
		widths[c] = st.colWidth
	}
	tbl := newStyledTable(slide, g.rows+2, cols, title, left, top, widths, st)

	for c := 0; c < cols; c++ {
		headerCell(tbl.Cell(1, c), g.headers[c+1], st)
	}
	for r := 0; r < g.rows; r++ {
		last := r == g.rows-1
		for c := 0; c < cols; c++ {
			cell := tbl.Cell(r+2, c)
			style := textStyle{size: st.font, bold: last, anchor: deck.AnchorMiddle}
			if g.numeric[c+1] {
				cell.MarginRight = deck.Inches(0.05)
				style.align = deck.AlignRight
				setText(&cell.Text, []string{formatPercent(g.nums[c+1][r])}, style)
			} else {
				cell.MarginLeft = deck.Inches(0.05)
				setText(&cell.Text, []string{g.strs[c+1][r]}, style)
			}
			if r >= g.rows-2 {
				bottomBorder(cell)
			}
		}
	}

	// Proportion bars, sent behind the table so the text stays readable.
	for r := 0; r < g.rows; r++ {
		for c := 0; c < cols; c++ {
			if !g.numeric[c+1] {
				continue
			}
			addPropBar(slide, g.nums[c+1][r]/100,
				left+st.colWidth*float64(c),
				top+2*st.rowHeight+0.02+st.rowHeight*float64(r),
				st)
		}
	}
}

// addPropBar draws one gold bar whose width encodes a fraction of the cell.
func addPropBar(slide *deck.Slide, fraction, left, top float64, st tableStyle) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	bar := slide.AddShape(deck.ShapeRectangle,
		inFrame(left, top, (st.colWidth-0.01)*fraction, st.rowHeight-0.04))
	bar.Fill = &gold
	bar.NoLine = true
	bar.Shadow = false
	slide.SendToBack(bar)
}

// addTrendTable renders a one-column placeholder table and overlays a
// sparkline or sparkbar on each data row. Hidden '0' filler text keeps the
// row geometry stable. kind is "line" or "bar"; maxPoints trims each row to
// its trailing values (0 keeps all).
func addTrendTable(slide *deck.Slide, f *frame.Frame, firstTitle, secondTitle string, left, top float64, kind string, maxPoints int, st tableStyle) {
	g := newGrid(f)
	rows := g.rows + 2
	tbl := slide.AddTable(rows, 1, inFrame(left, top, st.pivotWidth, st.rowHeight*float64(rows)))
	tbl.ColWidths[0] = deck.Inches(st.pivotWidth)
	for r := range tbl.RowHeights {
		tbl.RowHeights[r] = deck.Inches(st.rowHeight)
	}

	for i, title := range []string{firstTitle, secondTitle} {
		cell := tbl.Cell(i, 0)
		fillCell(cell, navy)
		setText(&cell.Text, []string{title}, textStyle{
			size: st.font, bold: true, color: white,
			align: deck.AlignCenter, anchor: deck.AnchorMiddle,
		})
	}
	for r := 0; r < g.rows; r++ {
		cell := tbl.Cell(r+2, 0)
		// Filler text colored like the background so the row keeps its
		// height without showing anything.
		setText(&cell.Text, []string{"0"}, textStyle{
			size: st.font, bold: true, color: white,
			align: deck.AlignCenter, anchor: deck.AnchorMiddle,
		})
		if r >= g.rows-2 {
			bottomBorder(cell)
		}
	}

	for r := 0; r < g.rows; r++ {
		vals := g.rowValues(r, maxPoints)
		if len(vals) == 0 {
			continue
		}
		y := top + 2*st.rowHeight + st.rowHeight*float64(r)
		switch kind {
		case "line":
			addSparkline(slide, vals, inFrame(left, y, st.pivotWidth, st.rowHeight))
		case "bar":
			addSparkbar(slide, vals, inFrame(left, y+0.01, st.sparkbarW, st.sparkbarH))
		}
	}
}
