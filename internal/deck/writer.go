package deck

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// SaveTo writes the presentation to a .pptx file at the given path.
func (p *Presentation) SaveTo(path string) error {
	data, err := p.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

// Bytes serializes the presentation into the .pptx container format.
func (p *Presentation) Bytes() ([]byte, error) {
	if len(p.Slides) == 0 {
		return nil, fmt.Errorf("presentation has no slides")
	}

	charts, pictures := p.assignParts()

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	if err := p.writeContentTypes(zw, charts); err != nil {
		return nil, fmt.Errorf("could not write content types: %w", err)
	}
	if err := writeRootRels(zw); err != nil {
		return nil, fmt.Errorf("could not write package relationships: %w", err)
	}
	if err := p.writePresentationPart(zw); err != nil {
		return nil, fmt.Errorf("could not write presentation part: %w", err)
	}
	if err := writeStaticParts(zw); err != nil {
		return nil, fmt.Errorf("could not write master parts: %w", err)
	}
	for i, slide := range p.Slides {
		if err := writeSlidePart(zw, slide, i+1); err != nil {
			return nil, fmt.Errorf("could not write slide %d: %w", i+1, err)
		}
	}
	for _, c := range charts {
		if err := writePart(zw, "ppt/"+c.partName, c.partXML()); err != nil {
			return nil, fmt.Errorf("could not write chart part: %w", err)
		}
	}
	for _, pic := range pictures {
		w, err := zw.Create("ppt/" + pic.partName)
		if err != nil {
			return nil, fmt.Errorf("could not write media part: %w", err)
		}
		if _, err := w.Write(pic.PNG); err != nil {
			return nil, fmt.Errorf("could not write media part: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("could not finalize .pptx archive: %w", err)
	}
	return buf.Bytes(), nil
}

// assignParts gives every chart and picture in the deck its package part
// name, numbering them in slide order.
func (p *Presentation) assignParts() ([]*Chart, []*Picture) {
	var charts []*Chart
	var pictures []*Picture
	for _, slide := range p.Slides {
		for _, shape := range slide.Shapes {
			switch s := shape.(type) {
			case *Chart:
				s.partName = fmt.Sprintf("charts/chart%d.xml", len(charts)+1)
				charts = append(charts, s)
			case *Picture:
				s.partName = fmt.Sprintf("media/image%d.png", len(pictures)+1)
				pictures = append(pictures, s)
			}
		}
	}
	return charts, pictures
}

func (p *Presentation) writeContentTypes(zw *zip.Writer, charts []*Chart) error {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := range p.Slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	for _, c := range charts {
		fmt.Fprintf(&b, `<Override PartName="/ppt/%s" ContentType="application/vnd.openxmlformats-officedocument.drawingml.chart+xml"/>`, c.partName)
	}
	b.WriteString(`</Types>`)
	return writePart(zw, "[Content_Types].xml", b.String())
}

func writeRootRels(zw *zip.Writer) error {
	content := xmlHeader + `<Relationships xmlns="` + nsPackageRels + `"><Relationship Id="rId1" Type="` + relTypeOfficeDocument + `" Target="ppt/presentation.xml"/></Relationships>`
	return writePart(zw, "_rels/.rels", content)
}

func (p *Presentation) writePresentationPart(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawing, nsRelationships, nsPresentation)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := range p.Slides {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="6858000" cy="9144000"/>`, p.Width, p.Height)
	b.WriteString(`</p:presentation>`)
	if err := writePart(zw, "ppt/presentation.xml", b.String()); err != nil {
		return err
	}

	var r strings.Builder
	r.WriteString(xmlHeader)
	fmt.Fprintf(&r, `<Relationships xmlns="%s">`, nsPackageRels)
	fmt.Fprintf(&r, `<Relationship Id="rId1" Type="%s" Target="slideMasters/slideMaster1.xml"/>`, relTypeSlideMaster)
	for i := range p.Slides {
		fmt.Fprintf(&r, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, i+2, relTypeSlide, i+1)
	}
	r.WriteString(`</Relationships>`)
	return writePart(zw, "ppt/_rels/presentation.xml.rels", r.String())
}

// writeStaticParts writes the master, layout, theme, and their rels.
func writeStaticParts(zw *zip.Writer) error {
	parts := map[string]string{
		"ppt/slideMasters/slideMaster1.xml": slideMasterXML,
		"ppt/slideMasters/_rels/slideMaster1.xml.rels": xmlHeader +
			`<Relationships xmlns="` + nsPackageRels + `">` +
			`<Relationship Id="rId1" Type="` + relTypeSlideLayout + `" Target="../slideLayouts/slideLayout1.xml"/>` +
			`<Relationship Id="rId2" Type="` + relTypeTheme + `" Target="../theme/theme1.xml"/>` +
			`</Relationships>`,
		"ppt/slideLayouts/slideLayout1.xml": slideLayoutXML,
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels": xmlHeader +
			`<Relationships xmlns="` + nsPackageRels + `">` +
			`<Relationship Id="rId1" Type="` + relTypeSlideMaster + `" Target="../slideMasters/slideMaster1.xml"/>` +
			`</Relationships>`,
		"ppt/theme/theme1.xml": themeXML,
	}
	// Fixed order keeps output deterministic.
	order := []string{
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/theme/theme1.xml",
	}
	for _, name := range order {
		if err := writePart(zw, name, parts[name]); err != nil {
			return err
		}
	}
	return nil
}

func writeSlidePart(zw *zip.Writer, slide *Slide, number int) error {
	ctx := newSlideContext()

	var body strings.Builder
	for _, shape := range slide.Shapes {
		shape.writeXML(&body, ctx)
	}

	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawing, nsRelationships, nsPresentation)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(emptyShapeTree)
	b.WriteString(body.String())
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)

	if err := writePart(zw, fmt.Sprintf("ppt/slides/slide%d.xml", number), b.String()); err != nil {
		return err
	}

	if len(ctx.rels) == 0 {
		return nil
	}
	var r strings.Builder
	r.WriteString(xmlHeader)
	fmt.Fprintf(&r, `<Relationships xmlns="%s">`, nsPackageRels)
	for _, rel := range ctx.rels {
		fmt.Fprintf(&r, `<Relationship Id="%s" Type="%s" Target="%s"`, rel.ID, rel.Type, xmlEscape(rel.Target))
		if rel.Mode != "" {
			fmt.Fprintf(&r, ` TargetMode="%s"`, rel.Mode)
		}
		r.WriteString(`/>`)
	}
	r.WriteString(`</Relationships>`)
	return writePart(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", number), r.String())
}

func writePart(zw *zip.Writer, name, content string) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte(content))
	return err
}
