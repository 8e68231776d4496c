package deck

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// SlideInfo is the extracted content of one slide.
type SlideInfo struct {
	Number      int      `json:"number"`
	Title       string   `json:"title,omitempty"`
	TextContent []string `json:"textContent"`
	Tables      int      `json:"tables"`
	Charts      int      `json:"charts"`
	Pictures    int      `json:"pictures"`
}

// DeckInfo summarizes a parsed .pptx file.
type DeckInfo struct {
	Slides []SlideInfo `json:"slides"`
}

// ReadFile reads and parses a .pptx file from the given path.
func ReadFile(path string) (*DeckInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s — check that the path is correct", path)
		}
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse reads and parses a .pptx file from the given byte slice.
func Parse(data []byte) (*DeckInfo, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("invalid .pptx file — the file does not appear to be a valid ZIP archive: %w", err)
	}

	info := &DeckInfo{}

	type slideEntry struct {
		name string
		file *zip.File
	}
	var slideFiles []slideEntry

	for _, f := range reader.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			slideFiles = append(slideFiles, slideEntry{name: f.Name, file: f})
		}
	}

	// Sort numerically: slide10.xml comes after slide9.xml.
	sort.Slice(slideFiles, func(i, j int) bool {
		a, b := slideFiles[i].name, slideFiles[j].name
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})

	for i, sf := range slideFiles {
		slide, err := parseSlide(sf.file, i+1)
		if err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", sf.name, err)
		}
		info.Slides = append(info.Slides, *slide)
	}

	return info, nil
}

func parseSlide(f *zip.File, number int) (*SlideInfo, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	slide := &SlideInfo{Number: number}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	var inTitle bool
	var texts []string

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "ph":
				for _, attr := range t.Attr {
					if attr.Name.Local == "type" && (attr.Value == "title" || attr.Value == "ctrTitle") {
						inTitle = true
					}
				}
			case "tbl":
				slide.Tables++
			case "pic":
				slide.Pictures++
			case "graphicData":
				for _, attr := range t.Attr {
					if attr.Name.Local == "uri" && strings.HasSuffix(attr.Value, "/chart") {
						slide.Charts++
					}
				}
			}
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text != "" {
				if inTitle && slide.Title == "" {
					slide.Title = text
				}
				texts = append(texts, text)
			}
		case xml.EndElement:
			if t.Name.Local == "sp" {
				inTitle = false
			}
		}
	}

	slide.TextContent = texts
	return slide, nil
}

// PlainText returns all slide content as plain text.
func (d *DeckInfo) PlainText() string {
	var b strings.Builder
	for _, slide := range d.Slides {
		fmt.Fprintf(&b, "--- Slide %d ---\n", slide.Number)
		if slide.Title != "" {
			fmt.Fprintf(&b, "%s\n\n", slide.Title)
		}
		for _, text := range slide.TextContent {
			fmt.Fprintf(&b, "%s\n", text)
		}
		b.WriteString("\n")
	}
	return b.String()
}
