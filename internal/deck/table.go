package deck

import (
	"fmt"
	"strings"
)

// NoGridStyleID is the built-in "No Style, No Grid" table style.
const NoGridStyleID = "{2D5ABB26-0587-4C30-8999-92F81FD0307C}"

// BorderSide names one edge of a table cell. The values are the OOXML
// element names; the bottom edge is the one the slide builders rely on.
type BorderSide string

// Cell border sides.
const (
	BorderLeft   BorderSide = "a:lnL"
	BorderRight  BorderSide = "a:lnR"
	BorderTop    BorderSide = "a:lnT"
	BorderBottom BorderSide = "a:lnB"
)

// Border is a single cell border.
type Border struct {
	Side  BorderSide
	Style string // prstDash value: solid, dash, dot, sysDash, ...
	Color RGB
	Width EMU
}

// Cell is one table cell. Margins are explicit EMU values (zero means no
// padding, not "inherit").
type Cell struct {
	Text         TextFrame
	Fill         *RGB
	MarginLeft   EMU
	MarginRight  EMU
	MarginTop    EMU
	MarginBottom EMU
	Borders      []Border

	span   int  // columns covered when this is a merge lead
	merged bool // continuation of a horizontal merge
}

// SetMargins sets all four cell margins at once.
func (c *Cell) SetMargins(left, right, top, bottom EMU) {
	c.MarginLeft, c.MarginRight, c.MarginTop, c.MarginBottom = left, right, top, bottom
}

// AddBorder applies a border to one side of the cell, replacing any border
// already set on that side.
func (c *Cell) AddBorder(side BorderSide, style string, color RGB, width EMU) {
	for i := range c.Borders {
		if c.Borders[i].Side == side {
			c.Borders[i] = Border{Side: side, Style: style, Color: color, Width: width}
			return
		}
	}
	c.Borders = append(c.Borders, Border{Side: side, Style: style, Color: color, Width: width})
}

// Table is a slide table. Cells are addressed (row, col) from the top left.
type Table struct {
	Frame      Frame
	StyleID    string
	ColWidths  []EMU
	RowHeights []EMU

	cells [][]*Cell
}

func newTable(rows, cols int, f Frame) *Table {
	t := &Table{
		Frame:      f,
		StyleID:    NoGridStyleID,
		ColWidths:  make([]EMU, cols),
		RowHeights: make([]EMU, rows),
		cells:      make([][]*Cell, rows),
	}
	colW := EMU(0)
	if cols > 0 {
		colW = f.Width / EMU(cols)
	}
	rowH := EMU(0)
	if rows > 0 {
		rowH = f.Height / EMU(rows)
	}
	for r := range t.cells {
		t.RowHeights[r] = rowH
		t.cells[r] = make([]*Cell, cols)
		for c := range t.cells[r] {
			t.cells[r][c] = &Cell{span: 1}
		}
	}
	for c := range t.ColWidths {
		t.ColWidths[c] = colW
	}
	return t
}

// Rows returns the number of rows in the table.
func (t *Table) Rows() int { return len(t.cells) }

// Cols returns the number of columns in the table.
func (t *Table) Cols() int { return len(t.ColWidths) }

// Cell returns the cell at (row, col).
func (t *Table) Cell(row, col int) *Cell {
	return t.cells[row][col]
}

// MergeAcross merges the cells of one row from column first through column
// last into a single cell. Content of the merged-away cells is discarded.
func (t *Table) MergeAcross(row, first, last int) *Cell {
	lead := t.cells[row][first]
	lead.span = last - first + 1
	for c := first + 1; c <= last; c++ {
		t.cells[row][c] = &Cell{span: 1, merged: true}
	}
	return lead
}

func (t *Table) writeXML(b *strings.Builder, ctx *slideContext) {
	id := ctx.shapeID()
	fmt.Fprintf(b, `<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Table %d"/><p:cNvGraphicFramePr><a:graphicFrameLocks noGrp="1"/></p:cNvGraphicFramePr><p:nvPr/></p:nvGraphicFramePr>`, id, id)
	fmt.Fprintf(b, `<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`, t.Frame.Left, t.Frame.Top, t.Frame.Width, t.Frame.Height)
	b.WriteString(`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table"><a:tbl>`)
	b.WriteString(`<a:tblPr firstRow="0" bandRow="0">`)
	if t.StyleID != "" {
		fmt.Fprintf(b, `<a:tableStyleId>%s</a:tableStyleId>`, t.StyleID)
	}
	b.WriteString(`</a:tblPr><a:tblGrid>`)
	for _, w := range t.ColWidths {
		fmt.Fprintf(b, `<a:gridCol w="%d"/>`, w)
	}
	b.WriteString(`</a:tblGrid>`)

	for r, row := range t.cells {
		fmt.Fprintf(b, `<a:tr h="%d">`, t.RowHeights[r])
		for _, cell := range row {
			cell.writeXML(b, ctx)
		}
		b.WriteString(`</a:tr>`)
	}
	b.WriteString(`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`)
}

func (c *Cell) writeXML(b *strings.Builder, ctx *slideContext) {
	b.WriteString(`<a:tc`)
	if c.span > 1 {
		fmt.Fprintf(b, ` gridSpan="%d"`, c.span)
	}
	if c.merged {
		b.WriteString(` hMerge="1"`)
	}
	b.WriteString(`>`)

	if c.merged {
		b.WriteString(`<a:txBody><a:bodyPr/><a:lstStyle/><a:p/></a:txBody><a:tcPr/></a:tc>`)
		return
	}
	c.Text.writeXML(b, ctx, "a")

	fmt.Fprintf(b, `<a:tcPr marL="%d" marR="%d" marT="%d" marB="%d"`, c.MarginLeft, c.MarginRight, c.MarginTop, c.MarginBottom)
	if c.Text.Anchor != "" {
		fmt.Fprintf(b, ` anchor="%s"`, c.Text.Anchor)
	}
	b.WriteString(`>`)
	// Side order is fixed by the schema: left, right, top, bottom.
	for _, side := range []BorderSide{BorderLeft, BorderRight, BorderTop, BorderBottom} {
		for _, border := range c.Borders {
			if border.Side == side {
				border.writeXML(b)
			}
		}
	}
	if c.Fill != nil {
		writeSolidFill(b, *c.Fill)
	}
	b.WriteString(`</a:tcPr></a:tc>`)
}

func (bd *Border) writeXML(b *strings.Builder) {
	style := bd.Style
	if style == "" {
		style = "solid"
	}
	w := bd.Width
	if w == 0 {
		w = Points(1)
	}
	fmt.Fprintf(b, `<%s w="%d" cap="flat" cmpd="sng" algn="ctr">`, bd.Side, w)
	writeSolidFill(b, bd.Color)
	fmt.Fprintf(b, `<a:prstDash val="%s"/></%s>`, style, bd.Side)
}
