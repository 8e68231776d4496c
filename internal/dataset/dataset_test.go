package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCSV = `Row ID,Order ID,Order Date,Ship Date,Ship Mode,Customer Name,Region,Category,Sales,Quantity,Discount,Profit
1,CA-2017-1001,2/1/2017,6/1/2017,Standard Class,Claire Gute,South,Furniture,261.96,2,0,41.91
2,CA-2017-1002,15/3/2017,15/3/2017,Same Day,Darrin Van Huff,West,Office Supplies,14.62,3,0,6.87
3,US-2018-1003,30/11/2018,4/12/2018,First Class,Sean O'Donnell,East,Technology,957.58,5,0.45,-383.03
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "superstore.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSuperstoreCSV(t *testing.T) {
	f, err := LoadSuperstore(writeSample(t))
	if err != nil {
		t.Fatalf("LoadSuperstore failed: %v", err)
	}
	if f.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", f.Len())
	}
	if f.HasColumn("Row_ID") {
		t.Error("Row ID column should be dropped")
	}
	if !f.HasColumn("Order_Date") || !f.HasColumn("Ship_Mode") {
		t.Errorf("column names not underscored: %v", f.Columns())
	}

	sales, err := f.Numbers("Sales")
	if err != nil {
		t.Fatal(err)
	}
	if sales[0] != 261.96 {
		t.Errorf("Sales[0] = %v, want 261.96", sales[0])
	}
	profit, _ := f.Numbers("Profit")
	if profit[2] != -383.03 {
		t.Errorf("Profit[2] = %v, want -383.03", profit[2])
	}
}

func TestDerivedColumns(t *testing.T) {
	f, err := LoadSuperstore(writeSample(t))
	if err != nil {
		t.Fatalf("LoadSuperstore failed: %v", err)
	}

	delivery, err := f.Numbers("Delivery_Length")
	if err != nil {
		t.Fatal(err)
	}
	// 2 Jan -> 6 Jan is 4 days; Same Day ships in 0.
	if delivery[0] != 4 {
		t.Errorf("Delivery_Length[0] = %v, want 4", delivery[0])
	}
	if delivery[1] != 0 {
		t.Errorf("Delivery_Length[1] = %v, want 0", delivery[1])
	}

	years, _ := f.Strings("Order_Year")
	if years[0] != "2017" || years[2] != "2018" {
		t.Errorf("Order_Year = %v", years)
	}
	months, _ := f.Strings("Order_Month")
	if months[1] != "3" || months[2] != "11" {
		t.Errorf("Order_Month = %v", months)
	}
	quarters, _ := f.Strings("Calendar_Quarter")
	if quarters[0] != "2017-Q1" || quarters[2] != "2018-Q4" {
		t.Errorf("Calendar_Quarter = %v", quarters)
	}
	calMonths, _ := f.Strings("Calendar_Month")
	if calMonths[0] != "Jan-2017" || calMonths[1] != "Mar-2017" {
		t.Errorf("Calendar_Month = %v", calMonths)
	}
}

func TestLoadSuperstoreBadFormat(t *testing.T) {
	if _, err := LoadSuperstore("data.txt"); err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
}

func TestLoadSuperstoreMissingFile(t *testing.T) {
	if _, err := LoadSuperstore(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadSuperstoreBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "Order Date,Ship Date,Sales\n2017-01-02,2017-01-06,100\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSuperstore(path); err == nil {
		t.Fatal("expected an error for an ISO-formatted date")
	}
}

func TestDemoDeterministic(t *testing.T) {
	a := Demo(42)
	b := Demo(42)

	if a.Len() != len(DemoRegions)*11 {
		t.Fatalf("demo length = %d, want %d", a.Len(), len(DemoRegions)*11)
	}

	salesA, _ := a.Numbers("Sales")
	salesB, _ := b.Numbers("Sales")
	for i := range salesA {
		if salesA[i] != salesB[i] {
			t.Fatalf("same seed produced different data at row %d", i)
		}
		if salesA[i] < 10000 || salesA[i] >= 30000 {
			t.Errorf("sales[%d] = %v outside [10000, 30000)", i, salesA[i])
		}
	}

	years, _ := a.Strings("Year")
	if years[0] != "2015" || years[10] != "2025" {
		t.Errorf("year range = %s..%s", years[0], years[10])
	}
}
