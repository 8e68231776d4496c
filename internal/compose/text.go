package compose

import "github.com/decklab/decksmith/internal/deck"

// textStyle carries the common run and paragraph options of a block of text.
type textStyle struct {
	size   float64
	bold   bool
	color  deck.RGB
	align  deck.HAlign
	anchor deck.VAlign
	bullet bool
}

// setText fills a text frame with one paragraph per line, all styled alike.
func setText(tf *deck.TextFrame, lines []string, st textStyle) {
	if st.anchor != "" {
		tf.Anchor = st.anchor
	}
	color := st.color
	if (color == deck.RGB{}) {
		color = navy
	}
	for _, line := range lines {
		p := tf.AddParagraph()
		p.Align = st.align
		p.Bullet = st.bullet
		run := p.AddRun(line)
		run.Size = st.size
		run.Bold = st.bold
		c := color
		run.Color = &c
	}
}

// setBulletPairs fills a text frame with bulleted label/value paragraphs,
// bolding the value run.
func setBulletPairs(tf *deck.TextFrame, pairs [][2]string, size float64, color deck.RGB) {
	tf.Anchor = deck.AnchorMiddle
	for _, pair := range pairs {
		p := tf.AddParagraph()
		p.Bullet = true
		label := p.AddRun(pair[0])
		label.Size = size
		c1 := color
		label.Color = &c1
		value := p.AddRun(pair[1])
		value.Size = size
		value.Bold = true
		c2 := color
		value.Color = &c2
	}
}

// addTextBox is the shorthand for a positioned text box in inches.
func addTextBox(slide *deck.Slide, left, top, width, height float64, lines []string, st textStyle) *deck.TextBox {
	tb := slide.AddTextBox(deck.Frame{
		Left:   deck.Inches(left),
		Top:    deck.Inches(top),
		Width:  deck.Inches(width),
		Height: deck.Inches(height),
	})
	setText(&tb.Text, lines, st)
	return tb
}

// addHeader places the standard slide header.
func addHeader(slide *deck.Slide, title string) {
	addTextBox(slide, 0.05, 0.10, 9.80, 0.40, []string{title}, textStyle{size: 24, anchor: deck.AnchorMiddle})
}

// addTransition builds a transition slide: a centered title and an optional
// subtitle below it.
func addTransition(slide *deck.Slide, title, subtitle string) {
	addTextBox(slide, 1, 3.60, 14, 1, []string{title},
		textStyle{size: 40, align: deck.AlignCenter, anchor: deck.AnchorMiddle})
	if subtitle != "" {
		addTextBox(slide, 1, 4.75, 14, 1, []string{subtitle},
			textStyle{size: 24, align: deck.AlignCenter, anchor: deck.AnchorMiddle})
	}
}

// addDivider places a thin vertical rule.
func addDivider(slide *deck.Slide, left, top, width, height float64) {
	c := slide.AddConnector(deck.Frame{
		Left:   deck.Inches(left),
		Top:    deck.Inches(top),
		Width:  deck.Inches(width),
		Height: deck.Inches(height),
	})
	c.Color = navy
	c.Width = deck.Points(2.25)
}

func inFrame(left, top, width, height float64) deck.Frame {
	return deck.Frame{
		Left:   deck.Inches(left),
		Top:    deck.Inches(top),
		Width:  deck.Inches(width),
		Height: deck.Inches(height),
	}
}
