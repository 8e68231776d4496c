//go:build ignore

// This program generates sample datasets for trying out decksmith:
//
//	go run testdata/generate_fixtures.go
//	decksmith superstore --data testdata/superstore_sample.csv
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

var header = []string{
	"Row ID", "Order ID", "Order Date", "Ship Date", "Ship Mode",
	"Customer ID", "Customer Name", "Segment", "Country", "City", "State",
	"Region", "Product ID", "Category", "Sub-Category", "Product Name",
	"Sales", "Quantity", "Discount", "Profit",
}

type customer struct {
	id, name, segment, city, state, region string
}

var customers = []customer{
	{"AB-10015", "Aaron Bergman", "Consumer", "Oklahoma City", "Oklahoma", "Central"},
	{"CK-12205", "Chloris Kastensmidt", "Consumer", "Jacksonville", "Florida", "South"},
	{"DV-13045", "Darrin Van Huff", "Corporate", "Los Angeles", "California", "West"},
	{"EH-13765", "Edward Hooks", "Corporate", "New York City", "New York", "East"},
	{"IM-15070", "Irene Maddox", "Consumer", "Seattle", "Washington", "West"},
	{"SO-20335", "Sean O'Donnell", "Home Office", "Philadelphia", "Pennsylvania", "East"},
}

type product struct {
	id, category, subCategory, name string
}

var products = []product{
	{"FUR-BO-10001798", "Furniture", "Bookcases", "Bush Somerset Collection Bookcase"},
	{"FUR-CH-10000454", "Furniture", "Chairs", "Hon Deluxe Fabric Upholstered Stacking Chairs"},
	{"OFF-LA-10000240", "Office Supplies", "Labels", "Self-Adhesive Address Labels for Typewriters"},
	{"OFF-ST-10000760", "Office Supplies", "Storage", "Eldon Fold 'N Roll Cart System"},
	{"TEC-PH-10002275", "Technology", "Phones", "Mitel 5320 IP Phone VoIP phone"},
	{"TEC-AC-10003027", "Technology", "Accessories", "Imation 8GB Micro Traveldrive USB Flash Drive"},
}

var shipModes = []string{"Same Day", "First Class", "Second Class", "Standard Class"}

func main() {
	rows := sampleRows()

	if err := writeCSV(filepath.Join("testdata", "superstore_sample.csv"), rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating sample CSV: %v\n", err)
		os.Exit(1)
	}
	if err := writeXLSX(filepath.Join("testdata", "superstore_sample.xlsx"), rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating sample XLSX: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d sample orders.\n", len(rows))
}

// sampleRows builds four years of orders so the quarterly pivots have enough
// history for year-over-year growth.
func sampleRows() [][]string {
	rng := rand.New(rand.NewSource(1))

	var rows [][]string
	rowID := 1
	for year := 2015; year <= 2018; year++ {
		for month := 1; month <= 12; month++ {
			for _, c := range customers {
				orders := 1 + rng.Intn(2)
				for o := 0; o < orders; o++ {
					p := products[rng.Intn(len(products))]
					mode := shipModes[rng.Intn(len(shipModes))]
					ordered := time.Date(year, time.Month(month), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
					shipped := ordered.AddDate(0, 0, shipDays(mode, rng))

					sales := 20 + rng.Float64()*480
					quantity := 1 + rng.Intn(8)
					discount := float64(rng.Intn(4)) * 0.1
					profit := sales * (0.3 - discount)

					rows = append(rows, []string{
						strconv.Itoa(rowID),
						fmt.Sprintf("US-%d-%06d", year, rowID),
						dmy(ordered),
						dmy(shipped),
						mode,
						c.id, c.name, c.segment,
						"United States", c.city, c.state, c.region,
						p.id, p.category, p.subCategory, p.name,
						fmt.Sprintf("%.2f", sales),
						strconv.Itoa(quantity),
						fmt.Sprintf("%.1f", discount),
						fmt.Sprintf("%.2f", profit),
					})
					rowID++
				}
			}
		}
	}
	return rows
}

func shipDays(mode string, rng *rand.Rand) int {
	switch mode {
	case "Same Day":
		return 0
	case "First Class":
		return 1 + rng.Intn(2)
	case "Second Class":
		return 2 + rng.Intn(3)
	default:
		return 4 + rng.Intn(4)
	}
}

func dmy(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writeXLSX(path string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return err
	}
	for r, row := range rows {
		for i, v := range row {
			cells[i] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
