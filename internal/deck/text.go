package deck

import (
	"fmt"
	"strings"
)

// HAlign is a paragraph's horizontal alignment (the algn attribute).
type HAlign string

// Horizontal alignments.
const (
	AlignLeft   HAlign = "l"
	AlignCenter HAlign = "ctr"
	AlignRight  HAlign = "r"
)

// VAlign is a text frame's vertical anchor (the anchor attribute).
type VAlign string

// Vertical anchors.
const (
	AnchorTop    VAlign = "t"
	AnchorMiddle VAlign = "ctr"
	AnchorBottom VAlign = "b"
)

// defaultBulletChar matches the solid round bullet used by the slide
// builders.
const defaultBulletChar = "●"

// bulletIndent is the EMU indent between the bullet glyph and its paragraph.
const bulletIndent = 171450

// Run is a span of text with uniform formatting within a paragraph.
type Run struct {
	Text      string
	Size      float64 // points; 0 inherits the default
	Bold      bool
	Italic    bool
	Underline bool
	Color     *RGB
	Hyperlink string // external URL; empty for plain text
}

// Paragraph is one block of runs, optionally bulleted.
type Paragraph struct {
	Runs       []Run
	Align      HAlign
	Bullet     bool
	BulletChar string // defaults to a solid round bullet
}

// TextFrame is the text body of a text box, autoshape, or table cell.
type TextFrame struct {
	Paragraphs []Paragraph
	Anchor     VAlign
	WordWrap   bool
}

// AddParagraph appends a paragraph and returns a pointer for run building.
func (tf *TextFrame) AddParagraph() *Paragraph {
	tf.Paragraphs = append(tf.Paragraphs, Paragraph{})
	return &tf.Paragraphs[len(tf.Paragraphs)-1]
}

// AddRun appends a run to the paragraph and returns it for further styling.
func (p *Paragraph) AddRun(text string) *Run {
	p.Runs = append(p.Runs, Run{Text: text})
	return &p.Runs[len(p.Runs)-1]
}

// writeXML emits the text body. Text boxes and autoshapes use the p:txBody
// element; table cells use a:txBody. ns selects the prefix.
func (tf *TextFrame) writeXML(b *strings.Builder, ctx *slideContext, ns string) {
	fmt.Fprintf(b, `<%s:txBody>`, ns)
	b.WriteString(`<a:bodyPr`)
	if tf.WordWrap {
		b.WriteString(` wrap="square"`)
	}
	if tf.Anchor != "" {
		fmt.Fprintf(b, ` anchor="%s"`, tf.Anchor)
	}
	b.WriteString(`/><a:lstStyle/>`)

	if len(tf.Paragraphs) == 0 {
		// A text body must contain at least one paragraph.
		b.WriteString(`<a:p/>`)
	}
	for _, p := range tf.Paragraphs {
		p.writeXML(b, ctx)
	}
	fmt.Fprintf(b, `</%s:txBody>`, ns)
}

func (p *Paragraph) writeXML(b *strings.Builder, ctx *slideContext) {
	b.WriteString(`<a:p>`)
	if p.Align != "" || p.Bullet {
		b.WriteString(`<a:pPr`)
		if p.Bullet {
			fmt.Fprintf(b, ` marL="0" indent="%d"`, bulletIndent)
		}
		if p.Align != "" {
			fmt.Fprintf(b, ` algn="%s"`, p.Align)
		}
		if p.Bullet {
			ch := p.BulletChar
			if ch == "" {
				ch = defaultBulletChar
			}
			fmt.Fprintf(b, `><a:buChar char="%s"/></a:pPr>`, xmlEscape(ch))
		} else {
			b.WriteString(`/>`)
		}
	}
	for _, r := range p.Runs {
		r.writeXML(b, ctx)
	}
	b.WriteString(`</a:p>`)
}

func (r *Run) writeXML(b *strings.Builder, ctx *slideContext) {
	b.WriteString(`<a:r><a:rPr lang="en-US"`)
	if r.Size > 0 {
		fmt.Fprintf(b, ` sz="%d"`, centipoints(r.Size))
	}
	if r.Bold {
		b.WriteString(` b="1"`)
	}
	if r.Italic {
		b.WriteString(` i="1"`)
	}
	if r.Underline {
		b.WriteString(` u="sng"`)
	}
	b.WriteString(`>`)
	if r.Color != nil {
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, r.Color.Hex())
	}
	if r.Hyperlink != "" {
		rid := ctx.addRel(relTypeHyperlink, r.Hyperlink, "External")
		fmt.Fprintf(b, `<a:hlinkClick r:id="%s"/>`, rid)
	}
	b.WriteString(`</a:rPr>`)
	fmt.Fprintf(b, `<a:t>%s</a:t></a:r>`, xmlEscape(r.Text))
}

func xmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
