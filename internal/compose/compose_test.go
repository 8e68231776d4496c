package compose

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/decklab/decksmith/internal/deck"
	"github.com/decklab/decksmith/internal/frame"
)

// storeFixture builds a small pre-derived superstore frame: two segments
// across five quarters, one order per row.
func storeFixture(t *testing.T) *frame.Frame {
	t.Helper()

	type q struct {
		quarter string
		year    string
		month   string
		calMon  string
		date    string
	}
	quarters := []q{
		{"2016-Q1", "2016", "1", "Jan-2016", "15/1/2016"},
		{"2016-Q2", "2016", "4", "Apr-2016", "15/4/2016"},
		{"2016-Q3", "2016", "7", "Jul-2016", "15/7/2016"},
		{"2016-Q4", "2016", "10", "Oct-2016", "15/10/2016"},
		{"2017-Q1", "2017", "1", "Jan-2017", "15/1/2017"},
	}
	type cust struct {
		segment, name, id, product, mode string
		delivery                         float64
		sales                            []float64
	}
	customers := []cust{
		{"Consumer", "Alice Park", "AP-1", "Desk", "First Class", 2, []float64{100, 110, 120, 130, 140}},
		{"Corporate", "Bob Reyes", "BR-1", "Chair", "Standard Class", 5, []float64{200, 190, 180, 170, 160}},
	}

	var segment, quarter, year, month, calMon, orderID, orderDate, name, id, product, mode []string
	var delivery, sales []float64
	for _, c := range customers {
		for i, p := range quarters {
			segment = append(segment, c.segment)
			quarter = append(quarter, p.quarter)
			year = append(year, p.year)
			month = append(month, p.month)
			calMon = append(calMon, p.calMon)
			orderID = append(orderID, c.id+"-"+p.quarter)
			orderDate = append(orderDate, p.date)
			name = append(name, c.name)
			id = append(id, c.id)
			product = append(product, c.product)
			mode = append(mode, c.mode)
			delivery = append(delivery, c.delivery)
			sales = append(sales, c.sales[i])
		}
	}

	f := frame.New()
	for _, col := range []struct {
		name string
		vals []string
	}{
		{"Segment", segment}, {"Calendar_Quarter", quarter}, {"Order_Year", year},
		{"Order_Month", month}, {"Calendar_Month", calMon}, {"Order_ID", orderID},
		{"Order_Date", orderDate}, {"Customer_Name", name}, {"Customer_ID", id},
		{"Product_Name", product}, {"Ship_Mode", mode},
	} {
		if err := f.SetStrings(col.name, col.vals); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SetNumbers("Delivery_Length", delivery); err != nil {
		t.Fatal(err)
	}
	if err := f.SetNumbers("Sales", sales); err != nil {
		t.Fatal(err)
	}
	return f
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestBuildPivotTables(t *testing.T) {
	tables, err := BuildPivotTables(storeFixture(t), "Segment", nil)
	if err != nil {
		t.Fatalf("BuildPivotTables failed: %v", err)
	}

	labels, _ := tables.Values.Strings("Segment")
	if len(labels) != 3 || labels[0] != "Consumer" || labels[1] != "Corporate" || labels[2] != "Total" {
		t.Fatalf("value rows = %v", labels)
	}
	values, _ := tables.Values.Numbers("2017-Q1")
	if !near(values[0], 140) || !near(values[1], 160) || !near(values[2], 300) {
		t.Errorf("2017-Q1 values = %v", values)
	}

	growth, _ := tables.Growth.Numbers("2017-Q1")
	if !near(growth[0], 40) {
		t.Errorf("Consumer growth = %v, want 40", growth[0])
	}
	if !near(growth[1], -20) {
		t.Errorf("Corporate growth = %v, want -20", growth[1])
	}
	if !near(growth[2], 0) {
		t.Errorf("Total growth = %v, want 0", growth[2])
	}

	mixCols := tables.Mix.Columns()
	if len(mixCols) != 2 || mixCols[1] != "2017-Q1" {
		t.Fatalf("mix columns = %v", mixCols)
	}
	mix, _ := tables.Mix.Numbers("2017-Q1")
	if !near(mix[0], 140.0/300*100) || !near(mix[1], 160.0/300*100) {
		t.Errorf("mix shares = %v", mix)
	}
	if !near(mix[2], 100) {
		t.Errorf("mix total = %v, want 100", mix[2])
	}
}

func TestBuildPivotTablesFiltered(t *testing.T) {
	tables, err := BuildPivotTables(storeFixture(t), "Segment", &Filter{Column: "Segment", Equals: "Consumer"})
	if err != nil {
		t.Fatalf("BuildPivotTables failed: %v", err)
	}
	labels, _ := tables.Values.Strings("Segment")
	if len(labels) != 2 || labels[0] != "Consumer" {
		t.Fatalf("filtered rows = %v", labels)
	}

	if _, err := BuildPivotTables(storeFixture(t), "Segment", &Filter{Column: "Segment", Equals: "Nope"}); err == nil {
		t.Fatal("expected an error for a filter matching no rows")
	}
}

func TestBuildPivotTablesNeedsHistory(t *testing.T) {
	f := storeFixture(t)
	short, err := f.FilterEq("Calendar_Quarter", "2016-Q1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := BuildPivotTables(short, "Segment", nil); err == nil {
		t.Fatal("expected an error for too few quarters")
	}
}

func TestMonthlyChartData(t *testing.T) {
	categories, series, err := monthlyChartData(storeFixture(t), "Segment")
	if err != nil {
		t.Fatalf("monthlyChartData failed: %v", err)
	}
	// 2016 is the first (dropped) year; only Jan-2017 remains.
	if len(categories) != 1 || categories[0] != "Jan-2017" {
		t.Fatalf("categories = %v", categories)
	}
	if len(series) != 2 || series[0].name != "Consumer" || series[1].name != "Corporate" {
		t.Fatalf("series = %+v", series)
	}
	if !near(series[0].values[0], 140) || !near(series[1].values[0], 160) {
		t.Errorf("series values = %v, %v", series[0].values, series[1].values)
	}
}

func TestTopCustomers(t *testing.T) {
	profiles, err := topCustomers(storeFixture(t))
	if err != nil {
		t.Fatalf("topCustomers failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	// Bob out-sells Alice in the recent window (160 vs 140).
	if profiles[0].Name != "Bob Reyes" {
		t.Errorf("top customer = %s, want Bob Reyes", profiles[0].Name)
	}
	if !near(profiles[0].TotalSales, 160) {
		t.Errorf("top sales = %v, want 160", profiles[0].TotalSales)
	}
	if profiles[0].FirstMonth != "Jan-2016" {
		t.Errorf("first month = %s, want Jan-2016", profiles[0].FirstMonth)
	}
	if profiles[0].OrderCount != 1 {
		t.Errorf("recent order count = %d, want 1", profiles[0].OrderCount)
	}
	// Five orders spaced ~91.5 days apart.
	if profiles[0].MonthsBetween < 3.0 || profiles[0].MonthsBetween > 3.1 {
		t.Errorf("months between orders = %v", profiles[0].MonthsBetween)
	}
	if len(profiles[0].TopProducts) != 1 || profiles[0].TopProducts[0][0] != "Chair" {
		t.Errorf("top products = %v", profiles[0].TopProducts)
	}
}

func TestBuildSuperstoreDeck(t *testing.T) {
	plan := []PlanSlide{
		{Type: SlideTransition, Title: "Store Review", Subtitle: "fixture"},
		{Type: SlidePivotSummary, Pivot: "Segment", Title: "Segment"},
		{Type: SlideTopCustomers, Title: "Top Performing Customers"},
		{Type: SlideShipMode, Title: "Ship Mode Comparison"},
	}
	prs, err := BuildSuperstoreDeck(storeFixture(t), plan)
	if err != nil {
		t.Fatalf("BuildSuperstoreDeck failed: %v", err)
	}

	data, err := prs.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	info, err := deck.Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(info.Slides) != len(plan) {
		t.Fatalf("slide count = %d, want %d", len(info.Slides), len(plan))
	}

	pivot := info.Slides[1]
	if pivot.Tables != 5 {
		t.Errorf("pivot slide tables = %d, want 5", pivot.Tables)
	}
	// Three sparklines, three sparkbars, and the monthly chart.
	if pivot.Charts != 7 {
		t.Errorf("pivot slide charts = %d, want 7", pivot.Charts)
	}
	if info.Slides[3].Pictures != 1 {
		t.Errorf("ship mode slide pictures = %d, want 1", info.Slides[3].Pictures)
	}
}

func TestBuildDemoDeck(t *testing.T) {
	prs, err := BuildDemoDeck(7)
	if err != nil {
		t.Fatalf("BuildDemoDeck failed: %v", err)
	}
	data, err := prs.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	info, err := deck.Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(info.Slides) != 7 {
		t.Fatalf("slide count = %d, want 7", len(info.Slides))
	}
	if info.Slides[4].Tables != 3 {
		t.Errorf("table slide tables = %d, want 3", info.Slides[4].Tables)
	}
	if info.Slides[5].Pictures != 1 {
		t.Errorf("picture slide pictures = %d, want 1", info.Slides[5].Pictures)
	}
}

func TestDefaultPlanValid(t *testing.T) {
	plan := DefaultPlan()
	if len(plan) != 14 {
		t.Fatalf("default plan has %d slides, want 14", len(plan))
	}
	for i, s := range plan {
		if err := validatePlanSlide(s); err != nil {
			t.Errorf("slide %d invalid: %v", i+1, err)
		}
	}
}

func TestLoadPlan(t *testing.T) {
	content := `
- type: transition
  title: Overview
- type: pivot_dbl_click
  title: "Region: East"
  pivot: State
  filter:
    column: Region
    equals: East
`
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if len(plan) != 2 {
		t.Fatalf("plan length = %d, want 2", len(plan))
	}
	if plan[1].Filter == nil || plan[1].Filter.Equals != "East" {
		t.Errorf("filter not parsed: %+v", plan[1].Filter)
	}
}

func TestLoadPlanRejectsBadType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte("- type: pie_chart\n  title: Nope\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlan(path); err == nil {
		t.Fatal("expected an error for an unknown slide type")
	}
}

func TestFormatHelpers(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{formatMoney(1234567.4), "$ 1,234,567"},
		{formatMoney(-383.03), "$ -383"},
		{formatAmount(9999.6), "$10,000"},
		{formatPercent(-12.34), "-12.3%"},
		{formatPercent(1234.56), "1,234.6%"},
		{formatDecimal(3.051), "3.05"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}
