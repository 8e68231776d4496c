package deck

import (
	"fmt"
	"strings"
)

// Picture is a PNG image placed on a slide. The bytes are embedded as a
// media part in the package.
type Picture struct {
	Frame Frame
	PNG   []byte

	partName string // assigned while writing the package
}

func (p *Picture) writeXML(b *strings.Builder, ctx *slideContext) {
	rid := ctx.addRel(relTypeImage, "../"+p.partName, "")
	id := ctx.shapeID()
	fmt.Fprintf(b, `<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Picture %d"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`, id, id)
	fmt.Fprintf(b, `<p:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`, rid)
	b.WriteString(`<p:spPr>`)
	writeXfrm(b, p.Frame, 0)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`)
}
