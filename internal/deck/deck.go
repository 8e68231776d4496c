// Package deck builds and writes PowerPoint (.pptx) presentations.
//
// The package emits the OOXML container directly: a ZIP archive of XML parts
// ([Content_Types].xml, relationship files, the presentation part, a minimal
// slide master/layout/theme, one part per slide, one part per embedded chart,
// and media parts for pictures). Geometry is expressed in EMUs; see units.go.
package deck

import (
	"fmt"
	"strings"
)

// Frame is a shape's bounding box on the slide.
type Frame struct {
	Left, Top, Width, Height EMU
}

// Presentation is an in-memory slide deck. Build slides with AddSlide, then
// serialize with Bytes or SaveTo.
type Presentation struct {
	Width  EMU
	Height EMU
	Slides []*Slide
}

// New creates an empty presentation with 16in x 9in slides.
func New() *Presentation {
	return &Presentation{
		Width:  Inches(16),
		Height: Inches(9),
	}
}

// AddSlide appends a new blank slide and returns it.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{}
	p.Slides = append(p.Slides, s)
	return s
}

// Slide holds an ordered list of shapes. Order is z-order: later shapes are
// drawn on top of earlier ones.
type Slide struct {
	Shapes []Shape
}

// Shape is anything that can be placed on a slide.
type Shape interface {
	writeXML(b *strings.Builder, ctx *slideContext)
}

// AddTextBox places an empty text box on the slide.
func (s *Slide) AddTextBox(f Frame) *TextBox {
	tb := &TextBox{Frame: f}
	tb.Text.WordWrap = true
	s.Shapes = append(s.Shapes, tb)
	return tb
}

// AddShape places an autoshape with the given preset geometry.
func (s *Slide) AddShape(preset ShapePreset, f Frame) *AutoShape {
	sh := &AutoShape{Frame: f, Preset: preset, LineWidth: Points(1), Shadow: true}
	sh.Text.WordWrap = true
	s.Shapes = append(s.Shapes, sh)
	return sh
}

// AddConnector places a straight connector line.
func (s *Slide) AddConnector(f Frame) *Connector {
	c := &Connector{Frame: f, Width: Points(1)}
	s.Shapes = append(s.Shapes, c)
	return c
}

// AddTable places an empty rows x cols table. Every cell starts blank with
// middle vertical anchoring.
func (s *Slide) AddTable(rows, cols int, f Frame) *Table {
	t := newTable(rows, cols, f)
	s.Shapes = append(s.Shapes, t)
	return t
}

// AddChart places an embedded chart of the given type.
func (s *Slide) AddChart(typ ChartType, f Frame) *Chart {
	c := &Chart{Frame: f, Type: typ, GapWidth: 150}
	s.Shapes = append(s.Shapes, c)
	return c
}

// AddPicture places a PNG image on the slide.
func (s *Slide) AddPicture(png []byte, f Frame) *Picture {
	p := &Picture{Frame: f, PNG: png}
	s.Shapes = append(s.Shapes, p)
	return p
}

// SendToBack moves the given shape behind every other shape on the slide.
func (s *Slide) SendToBack(sh Shape) {
	for i, existing := range s.Shapes {
		if existing == sh {
			copy(s.Shapes[1:i+1], s.Shapes[:i])
			s.Shapes[0] = sh
			return
		}
	}
}

// slideContext tracks per-slide state while writing a slide part: the shape
// id counter and the part relationships (charts, pictures, hyperlinks).
type slideContext struct {
	nextID int
	rels   []relationship
}

type relationship struct {
	ID     string
	Type   string
	Target string
	Mode   string // "External" for hyperlinks, empty otherwise
}

func newSlideContext() *slideContext {
	// id 1 belongs to the shape-tree group
	return &slideContext{nextID: 1}
}

func (c *slideContext) shapeID() int {
	c.nextID++
	return c.nextID
}

func (c *slideContext) addRel(relType, target, mode string) string {
	id := fmt.Sprintf("rId%d", len(c.rels)+1)
	c.rels = append(c.rels, relationship{ID: id, Type: relType, Target: target, Mode: mode})
	return id
}
