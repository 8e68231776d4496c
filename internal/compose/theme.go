// Package compose builds the slide decks: the feature demo deck and the
// plan-driven superstore analysis deck. It turns frames from the dataset
// package into deck shapes, tables, charts, and pictures.
package compose

import "github.com/decklab/decksmith/internal/deck"

// Deck palette.
var (
	navy  = deck.RGB{R: 7, G: 24, B: 45}
	gold  = deck.RGB{R: 241, G: 221, B: 157}
	white = deck.RGB{R: 255, G: 255, B: 255}

	positiveFill   = deck.RGB{R: 204, G: 255, B: 204}
	positiveAccent = deck.RGB{R: 0, G: 108, B: 49}
	negativeFill   = deck.RGB{R: 255, G: 209, B: 209}
	negativeAccent = deck.RGB{R: 155, G: 17, B: 27}
)

// Sparkbar point colors by sign.
var (
	sparkPositive = deck.RGB{R: 0, G: 176, B: 80}
	sparkNegative = deck.RGB{R: 235, G: 70, B: 81}
	sparkZero     = deck.RGB{R: 0, G: 0, B: 0}
)

// seriesPalette colors the stacked column chart series, one per group.
var seriesPalette = []deck.RGB{
	{R: 0, G: 48, B: 78},
	{R: 214, G: 40, B: 40},
	{R: 247, G: 127, B: 0},
	{R: 252, G: 191, B: 73},
}

// medalColors are gold, silver, and bronze for the top-customer stars.
var medalColors = []deck.RGB{
	{R: 211, G: 175, B: 55},
	{R: 196, G: 196, B: 196},
	{R: 206, G: 137, B: 54},
}

// tableStyle fixes the geometry and type size of one family of tables.
type tableStyle struct {
	font       float64 // point size for every cell
	colWidth   float64 // standard column width, inches
	pivotWidth float64 // first (label) column width, inches
	rowHeight  float64 // inches
	sparkbarW  float64 // sparkbar overlay size, inches
	sparkbarH  float64
}

// demoTable is the roomy style of the feature demo deck.
var demoTable = tableStyle{font: 14, colWidth: 1.00, pivotWidth: 1.30, rowHeight: 0.30, sparkbarW: 1.30, sparkbarH: 0.30}

// compactTable is the dense style of the superstore analysis deck.
var compactTable = tableStyle{font: 10, colWidth: 0.70, pivotWidth: 1.30, rowHeight: 0.20, sparkbarW: 1.18, sparkbarH: 0.12}
