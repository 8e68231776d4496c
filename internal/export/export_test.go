package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/decklab/decksmith/internal/compose"
	"github.com/decklab/decksmith/internal/frame"
)

func exportFixture(t *testing.T) *frame.Frame {
	t.Helper()

	quarters := []string{"2016-Q1", "2016-Q2", "2016-Q3", "2016-Q4", "2017-Q1"}
	var segment, quarter []string
	var sales []float64
	for _, seg := range []string{"Consumer", "Corporate"} {
		for i, q := range quarters {
			segment = append(segment, seg)
			quarter = append(quarter, q)
			sales = append(sales, float64(100+10*i))
		}
	}

	f := frame.New()
	if err := f.SetStrings("Segment", segment); err != nil {
		t.Fatal(err)
	}
	if err := f.SetStrings("Calendar_Quarter", quarter); err != nil {
		t.Fatal(err)
	}
	if err := f.SetNumbers("Sales", sales); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestWorkbook(t *testing.T) {
	plan := []compose.PlanSlide{
		{Type: compose.SlideTransition, Title: "Overview"},
		{Type: compose.SlidePivotSummary, Pivot: "Segment", Title: "Segment"},
	}
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	if err := Workbook(path, exportFixture(t), plan); err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("could not reopen workbook: %v", err)
	}
	defer wb.Close()

	want := map[string]bool{"Segment Sales": true, "Segment Growth": true, "Segment Mix": true}
	for _, sheet := range wb.GetSheetList() {
		delete(want, sheet)
	}
	for sheet := range want {
		t.Errorf("missing sheet %q", sheet)
	}

	header, err := wb.GetCellValue("Segment Sales", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if header != "Segment" {
		t.Errorf("A1 = %q, want Segment", header)
	}
	label, err := wb.GetCellValue("Segment Sales", "A4")
	if err != nil {
		t.Fatal(err)
	}
	if label != "Total" {
		t.Errorf("A4 = %q, want Total", label)
	}
}

func TestWorkbookNoPivots(t *testing.T) {
	plan := []compose.PlanSlide{{Type: compose.SlideTransition, Title: "Overview"}}
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	if err := Workbook(path, exportFixture(t), plan); err == nil {
		t.Fatal("expected an error for a plan without pivot slides")
	}
}

func TestSheetName(t *testing.T) {
	cases := []struct {
		title, suffix, want string
	}{
		{"Segment", "Sales", "Segment Sales"},
		{"Region: East/West", "Mix", "Region East West Mix"},
		{"A very long pivot title that keeps going", "Growth", "A very long pivot title Growth"},
	}
	for _, c := range cases {
		if got := sheetName(c.title, c.suffix); got != c.want {
			t.Errorf("sheetName(%q, %q) = %q, want %q", c.title, c.suffix, got, c.want)
		}
	}
}
