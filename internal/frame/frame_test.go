package frame

import (
	"math"
	"testing"
)

func salesFixture(t *testing.T) *Frame {
	t.Helper()
	f := New()
	if err := f.SetStrings("Region", []string{"East", "East", "West", "West", "East", "West"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetStrings("Year", []string{"2023", "2024", "2023", "2024", "2025", "2025"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetNumbers("Sales", []float64{100, 150, 200, 100, 300, 0}); err != nil {
		t.Fatal(err)
	}
	return f
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSetColumnLengthMismatch(t *testing.T) {
	f := New()
	if err := f.SetStrings("Region", []string{"East", "West"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetNumbers("Sales", []float64{1, 2, 3}); err == nil {
		t.Fatal("expected an error for mismatched column length")
	}
}

func TestFilterEq(t *testing.T) {
	f := salesFixture(t)
	east, err := f.FilterEq("Region", "East")
	if err != nil {
		t.Fatal(err)
	}
	if east.Len() != 3 {
		t.Fatalf("expected 3 East rows, got %d", east.Len())
	}
	sales, _ := east.Numbers("Sales")
	if sales[0] != 100 || sales[1] != 150 || sales[2] != 300 {
		t.Errorf("filter changed row order or values: %v", sales)
	}
}

func TestGroupSum(t *testing.T) {
	f := salesFixture(t)
	g, err := f.GroupSum([]string{"Region"}, "Sales")
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 2 {
		t.Fatalf("expected 2 groups, got %d", g.Len())
	}
	regions, _ := g.Strings("Region")
	sales, _ := g.Numbers("Sales")
	if regions[0] != "East" || sales[0] != 550 {
		t.Errorf("East group wrong: %s=%v", regions[0], sales[0])
	}
	if regions[1] != "West" || sales[1] != 300 {
		t.Errorf("West group wrong: %s=%v", regions[1], sales[1])
	}
}

func TestPivotWideColumns(t *testing.T) {
	f := salesFixture(t)
	wide, err := f.Pivot("Region", "Year", "Sales")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Region", "2023", "2024", "2025"}
	got := wide.Columns()
	if len(got) != len(want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columns = %v, want %v", got, want)
		}
	}
	y2024, _ := wide.Numbers("2024")
	if y2024[0] != 150 || y2024[1] != 100 {
		t.Errorf("2024 column = %v", y2024)
	}
}

// The totals row must equal the sum of its constituent rows.
func TestTotalsRowSumsConstituents(t *testing.T) {
	f := salesFixture(t)
	wide, err := f.Pivot("Region", "Year", "Sales")
	if err != nil {
		t.Fatal(err)
	}
	if err := wide.AddTotalsRow("Total"); err != nil {
		t.Fatal(err)
	}
	regions, _ := wide.Strings("Region")
	if regions[wide.Len()-1] != "Total" {
		t.Fatalf("last row label = %q, want Total", regions[wide.Len()-1])
	}
	for _, year := range []string{"2023", "2024", "2025"} {
		vals, _ := wide.Numbers(year)
		sum := 0.0
		for _, v := range vals[:len(vals)-1] {
			sum += v
		}
		if !almostEqual(vals[len(vals)-1], sum) {
			t.Errorf("%s total = %v, want %v", year, vals[len(vals)-1], sum)
		}
	}
}

func TestGrowthFormula(t *testing.T) {
	cases := []struct {
		prior, current, want float64
	}{
		{100, 150, 50},
		{200, 100, -50},
		{100, 100, 0},
		{0, 42, 100}, // fresh category reads as full growth
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := Growth(c.prior, c.current); !almostEqual(got, c.want) {
			t.Errorf("Growth(%v, %v) = %v, want %v", c.prior, c.current, got, c.want)
		}
	}
}

func TestGrowthAcross(t *testing.T) {
	f := salesFixture(t)
	wide, _ := f.Pivot("Region", "Year", "Sales")
	growth, err := wide.GrowthAcross(1)
	if err != nil {
		t.Fatal(err)
	}
	cols := growth.Columns()
	if len(cols) != 3 || cols[1] != "2024" || cols[2] != "2025" {
		t.Fatalf("growth columns = %v", cols)
	}
	y2024, _ := growth.Numbers("2024")
	// East: 100 -> 150, West: 200 -> 100
	if !almostEqual(y2024[0], 50) || !almostEqual(y2024[1], -50) {
		t.Errorf("2024 growth = %v", y2024)
	}
	y2025, _ := growth.Numbers("2025")
	// West drops to zero: (0-100)/100*100
	if !almostEqual(y2025[1], -100) {
		t.Errorf("2025 West growth = %v, want -100", y2025[1])
	}
}

// Mix percentages must sum to 100 per column.
func TestMixSumsToHundred(t *testing.T) {
	f := salesFixture(t)
	wide, _ := f.Pivot("Region", "Year", "Sales")
	mix, err := wide.Mix()
	if err != nil {
		t.Fatal(err)
	}
	for _, year := range []string{"2023", "2024"} {
		vals, _ := mix.Numbers(year)
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		if !almostEqual(sum, 100) {
			t.Errorf("%s mix sums to %v, want 100", year, sum)
		}
	}
}

func TestMixZeroColumn(t *testing.T) {
	f := New()
	f.SetStrings("Region", []string{"East", "West"})
	f.SetNumbers("2024", []float64{0, 0})
	mix, err := f.Mix()
	if err != nil {
		t.Fatal(err)
	}
	vals, _ := mix.Numbers("2024")
	if vals[0] != 0 || vals[1] != 0 {
		t.Errorf("zero-sum column mix = %v, want zeros", vals)
	}
}

func TestSortByOrder(t *testing.T) {
	f := New()
	f.SetStrings("Mode", []string{"Standard Class", "First Class", "Same Day", "Second Class"})
	f.SetNumbers("Days", []float64{5, 2, 0, 3})
	order := []string{"Same Day", "First Class", "Second Class", "Standard Class"}
	if err := f.SortByOrder("Mode", order); err != nil {
		t.Fatal(err)
	}
	modes, _ := f.Strings("Mode")
	days, _ := f.Numbers("Days")
	for i, want := range order {
		if modes[i] != want {
			t.Fatalf("modes after sort = %v", modes)
		}
	}
	if days[0] != 0 || days[3] != 5 {
		t.Errorf("values did not follow the sort: %v", days)
	}
}

func TestSortNumbersDescending(t *testing.T) {
	f := New()
	f.SetStrings("Customer", []string{"A", "B", "C"})
	f.SetNumbers("Sales", []float64{10, 30, 20})
	if err := f.SortNumbers("Sales", true); err != nil {
		t.Fatal(err)
	}
	customers, _ := f.Strings("Customer")
	if customers[0] != "B" || customers[1] != "C" || customers[2] != "A" {
		t.Errorf("descending sort order = %v", customers)
	}
}

func TestLeftMerge(t *testing.T) {
	left := New()
	left.SetStrings("Customer", []string{"A", "B", "C"})
	left.SetNumbers("Sales", []float64{10, 30, 20})

	right := New()
	right.SetStrings("Customer", []string{"B", "A"})
	right.SetStrings("Segment", []string{"Corporate", "Consumer"})

	merged, err := left.LeftMerge(right, "Customer")
	if err != nil {
		t.Fatal(err)
	}
	if merged.Len() != 3 {
		t.Fatalf("merged length = %d, want 3", merged.Len())
	}
	segments, _ := merged.Strings("Segment")
	if segments[0] != "Consumer" || segments[1] != "Corporate" || segments[2] != "" {
		t.Errorf("segments = %v", segments)
	}
}

func TestHeadAndUnique(t *testing.T) {
	f := salesFixture(t)
	if got := f.Head(2).Len(); got != 2 {
		t.Errorf("Head(2) length = %d", got)
	}
	if got := f.Head(100).Len(); got != 6 {
		t.Errorf("Head(100) length = %d", got)
	}
	regions, err := f.Unique("Region")
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 2 || regions[0] != "East" || regions[1] != "West" {
		t.Errorf("unique regions = %v", regions)
	}
}
