package dataset

import (
	"math/rand"
	"strconv"

	"github.com/decklab/decksmith/internal/frame"
)

// DemoRegions are the categories of the synthetic demo set.
var DemoRegions = []string{"North", "South", "East", "West"}

// Demo years: 2015 through 2025 inclusive.
const (
	demoFirstYear = 2015
	demoLastYear  = 2025
)

// Demo builds a synthetic region x year sales frame: one row per region per
// year, sales drawn uniformly from [10000, 30000). The same seed always
// yields the same data.
func Demo(seed int64) *frame.Frame {
	rng := rand.New(rand.NewSource(seed))

	n := len(DemoRegions) * (demoLastYear - demoFirstYear + 1)
	regions := make([]string, 0, n)
	years := make([]string, 0, n)
	sales := make([]float64, 0, n)

	for _, region := range DemoRegions {
		for year := demoFirstYear; year <= demoLastYear; year++ {
			regions = append(regions, region)
			years = append(years, strconv.Itoa(year))
			sales = append(sales, 10000+rng.Float64()*20000)
		}
	}

	f := frame.New()
	// Lengths always agree, the errors cannot fire.
	_ = f.SetStrings("Region", regions)
	_ = f.SetStrings("Year", years)
	_ = f.SetNumbers("Sales", sales)
	return f
}
