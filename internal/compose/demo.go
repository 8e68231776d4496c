package compose

import (
	"fmt"

	"github.com/decklab/decksmith/internal/dataset"
	"github.com/decklab/decksmith/internal/deck"
	"github.com/decklab/decksmith/internal/frame"
	"github.com/decklab/decksmith/internal/plot"
)

// DocsURL is the hyperlink target on the text-example slide.
const DocsURL = "https://github.com/decklab/decksmith"

// BuildDemoDeck renders the feature tour: a title slide, text and shape
// examples, a stacked column chart, a table with sparkline overlays, an
// embedded picture, and a closing slide. The synthetic data is seeded so the
// same seed reproduces the same deck.
func BuildDemoDeck(seed int64) (*deck.Presentation, error) {
	data := dataset.Demo(seed)

	wide, err := data.Pivot("Region", "Year", "Sales")
	if err != nil {
		return nil, err
	}
	if err := wide.AddTotalsRow("Total"); err != nil {
		return nil, err
	}
	growth, err := wide.GrowthAcross(1)
	if err != nil {
		return nil, err
	}

	prs := deck.New()
	addTransition(prs.AddSlide(), "Presentation Demo", "decksmith")
	buildTextExampleSlide(prs.AddSlide())
	buildShapesExampleSlide(prs.AddSlide())
	if err := buildChartExampleSlide(prs.AddSlide(), data); err != nil {
		return nil, err
	}
	if err := buildTableExampleSlide(prs.AddSlide(), wide, growth); err != nil {
		return nil, err
	}
	buildPictureExampleSlide(prs.AddSlide(), data)
	buildConclusionSlide(prs.AddSlide())
	return prs, nil
}

func buildTextExampleSlide(slide *deck.Slide) {
	addHeader(slide, "Text Example")

	addTextBox(slide, 0.93, 0.86, 4.34, 1.00,
		[]string{"Textbox example. Each textbox has a single text frame and is made up of multiple paragraphs."},
		textStyle{size: 14})
	addTextBox(slide, 0.93, 2.10, 4.34, 1.92, []string{
		"A paragraph is any block of text broken up by a new line character.",
		"This is paragraph 2.",
		"This is paragraph 3.",
		"A text frame contains at least one initial paragraph.",
	}, textStyle{size: 14})
	addTextBox(slide, 0.93, 4.25, 4.34, 1.31,
		[]string{"A paragraph is made up of multiple runs. A run is a segment of text with shared styling."},
		textStyle{size: 14})

	// Outlined boxes showing the two alignment levels.
	aligned := addTextBox(slide, 9.73, 0.86, 3.10, 0.71,
		[]string{"Horizontal alignment is done at the paragraph level."},
		textStyle{size: 14, align: deck.AlignRight})
	aligned.Line = &navy
	anchored := addTextBox(slide, 9.73, 1.76, 4.34, 1.30,
		[]string{"Vertical alignment is done at the text frame level."},
		textStyle{size: 14, anchor: deck.AnchorBottom})
	anchored.Line = &navy

	addTextBox(slide, 9.73, 3.36, 4.34, 0.40,
		[]string{"Text formatting is done at the run level:"},
		textStyle{size: 14})

	// Run-level formatting showcase: color, emphasis, size, and a link.
	red := deck.RGB{R: 255, G: 0, B: 0}
	formats := addTextBox(slide, 9.73, 3.80, 4.34, 2.02,
		[]string{"Text color can be any RGB value. "},
		textStyle{size: 14, color: red})
	p := formats.Text.AddParagraph()
	plain := p.AddRun("Text emphasis such as ")
	plain.Size = 14
	plain.Color = &navy
	bold := p.AddRun("bold, ")
	bold.Size = 14
	bold.Bold = true
	bold.Color = &navy
	italic := p.AddRun("italics, ")
	italic.Size = 14
	italic.Italic = true
	italic.Color = &navy
	underline := p.AddRun("underline. ")
	underline.Size = 14
	underline.Underline = true
	underline.Color = &navy
	big := p.AddRun("Font size can be any point value. ")
	big.Size = 30
	big.Color = &navy
	link := p.AddRun("Text can be hyperlinked to a URL.")
	link.Size = 14
	link.Color = &navy
	link.Hyperlink = DocsURL
}

func buildShapesExampleSlide(slide *deck.Slide) {
	addHeader(slide, "Shapes Example")

	gray := deck.RGB{R: 127, G: 127, B: 127}
	yellow := deck.RGB{R: 255, G: 255, B: 0}

	cloud := slide.AddShape(deck.ShapeCloud, inFrame(3.00, 1.50, 3.00, 2.00))
	cloud.Fill = &gray
	cloud.Line = &white
	cloud.LineWidth = deck.Points(3)

	bolt := slide.AddShape(deck.ShapeLightningBolt, inFrame(5.10, 3.30, 1.20, 1.70))
	bolt.Fill = &yellow
	bolt.Line = &white

	rotated := slide.AddShape(deck.ShapeLightningBolt, inFrame(6.30, 1.90, 1.20, 1.70))
	rotated.Fill = &yellow
	rotated.Line = &white
	rotated.Rotation = 315

	flat := slide.AddShape(deck.ShapeLightningBolt, inFrame(3.00, 3.50, 1.20, 1.70))
	flat.Fill = &yellow
	flat.Line = &white
	flat.Rotation = 55
	flat.Shadow = false

	stars := []deck.ShapePreset{deck.ShapeStar5Point, deck.ShapeStar6Point, deck.ShapeStar7Point, deck.ShapeStar8Point}
	for i, preset := range stars {
		star := slide.AddShape(preset, inFrame(9.00, 1.00+2.00*float64(i), 1.50, 1.50))
		star.Fill = &navy
		star.Line = &white
		setText(&star.Text, []string{fmt.Sprintf("%d", i+5)}, textStyle{
			size: 32, bold: true, color: white,
			align: deck.AlignCenter, anchor: deck.AnchorMiddle,
		})
	}

	addTextBox(slide, 0.40, 0.95, 4.03, 0.81,
		[]string{"Shape fill/outline color along with outline weight. This cloud is colored dark gray with a white border that is 3px thick."},
		textStyle{size: 14})
	addTextBox(slide, 6.71, 0.81, 1.64, 1.52,
		[]string{"Shapes can be rotated by any degree. This lightning bolt is rotated 315 degrees."},
		textStyle{size: 14})
	addTextBox(slide, 1.35, 5.40, 4.03, 0.81,
		[]string{"Most shapes are created with a shadow effect by default. This lightning bolt has its shadow effect removed."},
		textStyle{size: 14})
	addTextBox(slide, 10.93, 1.44, 3.75, 1.04,
		[]string{"Most shape objects have an existing text frame that can be used to insert text. Each star below has the number of points written in the center of the shape."},
		textStyle{size: 14})
}

func buildChartExampleSlide(slide *deck.Slide, data *frame.Frame) error {
	addHeader(slide, "Charts Example")

	categories, err := data.Unique("Year")
	if err != nil {
		return err
	}
	regions, err := data.Unique("Region")
	if err != nil {
		return err
	}
	var series []chartSeries
	for _, region := range regions {
		rows, err := data.FilterEq("Region", region)
		if err != nil {
			return err
		}
		values, err := rows.Numbers("Sales")
		if err != nil {
			return err
		}
		series = append(series, chartSeries{name: region, values: values})
	}
	addStackedColumnChart(slide, inFrame(0.30, 2.00, 14.50, 4.30), "Yearly Sales", categories, series)

	addTextBox(slide, 0.51, 0.95, 13.56, 0.34,
		[]string{"Most of the built-in PowerPoint chart types can be generated directly. This is an example of a stacked column chart with randomly generated data. The plot contains 4 series, one for each region."},
		textStyle{size: 14})
	addTextBox(slide, 0.43, 6.37, 6.51, 0.57,
		[]string{"Axes labels can also be formatted, such as formatting the y-axis as $ amounts, or rotating the x-axis labels by 45/90 degrees for easier readability."},
		textStyle{size: 14})
	addTextBox(slide, 13.73, 6.43, 2.15, 0.57,
		[]string{"Chart legends can also be added/positioned."},
		textStyle{size: 14})
	return nil
}

func buildTableExampleSlide(slide *deck.Slide, wide, growth *frame.Frame) error {
	addHeader(slide, "Tables and Sparklines Example")

	// Show the label column plus the trailing ten years.
	cols := wide.Columns()
	if len(cols) > 11 {
		cols = append(cols[:1:1], cols[len(cols)-10:]...)
	}
	shown, err := wide.Select(cols...)
	if err != nil {
		return err
	}

	addValueTable(slide, shown, "Yearly Sales ($)", 0.30, 2.00, demoTable)
	addTrendTable(slide, shown, "10 Year", "Trend", 11.70, 2.00, "line", 10, demoTable)
	addTrendTable(slide, growth, "10 Year", "YoY Growth (%)", 13.10, 2.00, "bar", 10, demoTable)

	addTextBox(slide, 0.30, 0.82, 8.18, 0.57,
		[]string{"A table is created by setting the number of rows x columns. Each cell is like its own textbox and can have individual formatting. Cells can be accessed by looping through the table's index matrix."},
		textStyle{size: 14})
	addTextBox(slide, 0.70, 1.60, 6.66, 0.34,
		[]string{"Cells can be merged together. The first row in the table is merged as a single cell."},
		textStyle{size: 14})
	addTextBox(slide, 9.85, 0.91, 1.50, 1.04,
		[]string{"A cell's background color can be any RGB value."},
		textStyle{size: 14})
	addTextBox(slide, 0.39, 4.30, 3.56, 0.34,
		[]string{"Borders can be applied to individual cells."},
		textStyle{size: 14})
	addTextBox(slide, 7.24, 4.31, 3.56, 1.04,
		[]string{"Cell margins can be altered for better readability. All $ value cells have a left, top, and bottom cell margin of 0 inches with a small margin on the right."},
		textStyle{size: 14})
	addTextBox(slide, 11.53, 4.31, 3.56, 1.52,
		[]string{"Sparklines can be recreated by inserting a table with blank values and overlaying a small line chart to fit within the cell dimensions. All other plot elements are removed such as axes, labels, gridlines, and legends."},
		textStyle{size: 14})
	return nil
}

// buildPictureExampleSlide embeds a rendered boxplot, falling back to
// explanatory text when rendering fails.
func buildPictureExampleSlide(slide *deck.Slide, data *frame.Frame) {
	addHeader(slide, "Pictures Example")

	groups, err := regionSalesGroups(data)
	if err == nil {
		var png []byte
		png, err = plot.BoxPlot(groups, "", "Sales", 10, 5)
		if err == nil {
			slide.AddPicture(png, inFrame(0.30, 2.00, 10.00, 5.00))
			addTextBox(slide, 0.30, 0.82, 8.18, 0.57,
				[]string{"Any image file can be inserted into PowerPoint. For example, boxplots are not a built-in chart part, so the chart is rendered to a PNG image and inserted onto the slide."},
				textStyle{size: 14})
			return
		}
	}
	addTextBox(slide, 0.30, 0.82, 8.18, 0.57,
		[]string{"Any image file can be inserted into PowerPoint. The image file was unable to be inserted into the file."},
		textStyle{size: 14})
}

func regionSalesGroups(data *frame.Frame) ([]plot.Group, error) {
	regions, err := data.Unique("Region")
	if err != nil {
		return nil, err
	}
	var groups []plot.Group
	for _, region := range regions {
		rows, err := data.FilterEq("Region", region)
		if err != nil {
			return nil, err
		}
		values, err := rows.Numbers("Sales")
		if err != nil {
			return nil, err
		}
		groups = append(groups, plot.Group{Label: region, Values: values})
	}
	return groups, nil
}

func buildConclusionSlide(slide *deck.Slide) {
	addHeader(slide, "Conclusion")
	addTextBox(slide, 0.30, 1.31, 14.33, 2.00, []string{
		"Generating decks from code is useful for analyses that require many different cuts of the data or have a refresh cycle, such as a slide deck that is updated at the end of every month or quarter. The metrics and visuals are computed quickly and consistently on every run.",
		"The generated file can then be opened and finished by hand with any additional comments or formatting.",
	}, textStyle{size: 18})
}
