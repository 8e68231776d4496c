package deck

import (
	"fmt"
	"strings"
)

// ShapePreset identifies a built-in autoshape geometry (the prstGeom prst
// attribute).
type ShapePreset string

// Preset geometries used by the slide builders.
const (
	ShapeRectangle     ShapePreset = "rect"
	ShapeCloud         ShapePreset = "cloud"
	ShapeLightningBolt ShapePreset = "lightningBolt"
	ShapeStar5Point    ShapePreset = "star5"
	ShapeStar6Point    ShapePreset = "star6"
	ShapeStar7Point    ShapePreset = "star7"
	ShapeStar8Point    ShapePreset = "star8"
	ShapeChevron       ShapePreset = "chevron"
)

// TextBox is a borderless, unfilled text container. A fill or outline color
// may be set to decorate it.
type TextBox struct {
	Frame     Frame
	Fill      *RGB
	Line      *RGB
	LineWidth EMU
	Text      TextFrame
}

func (t *TextBox) writeXML(b *strings.Builder, ctx *slideContext) {
	id := ctx.shapeID()
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, id)
	b.WriteString(`<p:spPr>`)
	writeXfrm(b, t.Frame, 0)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	if t.Fill != nil {
		writeSolidFill(b, *t.Fill)
	} else {
		b.WriteString(`<a:noFill/>`)
	}
	if t.Line != nil {
		w := t.LineWidth
		if w == 0 {
			w = Points(1)
		}
		fmt.Fprintf(b, `<a:ln w="%d">`, w)
		writeSolidFill(b, *t.Line)
		b.WriteString(`</a:ln>`)
	}
	b.WriteString(`</p:spPr>`)
	t.Text.writeXML(b, ctx, "p")
	b.WriteString(`</p:sp>`)
}

// AutoShape is a preset-geometry shape with solid fill, an outline, optional
// rotation, and an inherited shadow that can be switched off.
type AutoShape struct {
	Frame     Frame
	Preset    ShapePreset
	Fill      *RGB
	Line      *RGB
	NoLine    bool // transparent outline; overrides Line
	LineWidth EMU
	Rotation  float64 // clockwise degrees
	Shadow    bool
	Text      TextFrame
}

func (s *AutoShape) writeXML(b *strings.Builder, ctx *slideContext) {
	id := ctx.shapeID()
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Shape %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`, id, id)
	b.WriteString(`<p:spPr>`)
	writeXfrm(b, s.Frame, s.Rotation)
	fmt.Fprintf(b, `<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>`, s.Preset)
	if s.Fill != nil {
		writeSolidFill(b, *s.Fill)
	}
	w := s.LineWidth
	if w == 0 {
		w = Points(1)
	}
	fmt.Fprintf(b, `<a:ln w="%d">`, w)
	if s.NoLine {
		b.WriteString(`<a:noFill/>`)
	} else if s.Line != nil {
		writeSolidFill(b, *s.Line)
	}
	b.WriteString(`</a:ln>`)
	if !s.Shadow {
		// An empty effect list suppresses the inherited shadow.
		b.WriteString(`<a:effectLst/>`)
	}
	b.WriteString(`</p:spPr>`)
	s.Text.writeXML(b, ctx, "p")
	b.WriteString(`</p:sp>`)
}

// Connector is a straight line, used as a visual divider.
type Connector struct {
	Frame Frame
	Color RGB
	Width EMU
}

func (c *Connector) writeXML(b *strings.Builder, ctx *slideContext) {
	id := ctx.shapeID()
	fmt.Fprintf(b, `<p:cxnSp><p:nvCxnSpPr><p:cNvPr id="%d" name="Line %d"/><p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr>`, id, id)
	b.WriteString(`<p:spPr>`)
	writeXfrm(b, c.Frame, 0)
	b.WriteString(`<a:prstGeom prst="line"><a:avLst/></a:prstGeom>`)
	w := c.Width
	if w == 0 {
		w = Points(1)
	}
	fmt.Fprintf(b, `<a:ln w="%d">`, w)
	writeSolidFill(b, c.Color)
	b.WriteString(`</a:ln></p:spPr></p:cxnSp>`)
}

// writeXfrm emits the shape transform. Rotation is stored in 1/60000ths of a
// degree.
func writeXfrm(b *strings.Builder, f Frame, rotation float64) {
	if rotation != 0 {
		fmt.Fprintf(b, `<a:xfrm rot="%d">`, int64(rotation*60000))
	} else {
		b.WriteString(`<a:xfrm>`)
	}
	fmt.Fprintf(b, `<a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, f.Left, f.Top, f.Width, f.Height)
}

func writeSolidFill(b *strings.Builder, c RGB) {
	fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, c.Hex())
}
