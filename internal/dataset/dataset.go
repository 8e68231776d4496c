// Package dataset loads the tabular inputs the slide builders run on: the
// retail superstore transactions (CSV or XLSX) and a synthetic demo set.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/decklab/decksmith/internal/frame"
)

// dateLayout is day/month/year, the format the superstore extract ships with.
const dateLayout = "2/1/2006"

// numericColumns are parsed as float64; everything else stays a string.
var numericColumns = map[string]bool{
	"Sales":    true,
	"Quantity": true,
	"Discount": true,
	"Profit":   true,
}

// LoadSuperstore reads a superstore extract from a .csv or .xlsx file and
// returns a cleaned frame: Row ID dropped, column names underscored, dates
// parsed, and the derived period and delivery columns appended.
func LoadSuperstore(path string) (*frame.Frame, error) {
	var records [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err = readCSV(path)
	case ".xlsx":
		records, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported data format %q — use a .csv or .xlsx file", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return buildFrame(records)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s — check that the path is correct", path)
		}
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return records, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func buildFrame(records [][]string) (*frame.Frame, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset is empty — expected a header row and at least one data row")
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	}

	colIdx := map[string]int{}
	for i, name := range header {
		colIdx[name] = i
	}
	for _, required := range []string{"Order_Date", "Ship_Date"} {
		if _, ok := colIdx[required]; !ok {
			return nil, fmt.Errorf("dataset is missing the %s column", strings.ReplaceAll(required, "_", " "))
		}
	}

	rows := records[1:]
	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	f := frame.New()
	for i, name := range header {
		if name == "Row_ID" {
			continue
		}
		if numericColumns[name] {
			vals := make([]float64, len(rows))
			for r, row := range rows {
				raw := cell(row, i)
				if raw == "" {
					continue
				}
				v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
				if err != nil {
					return nil, fmt.Errorf("row %d: could not parse %s value %q: %w", r+2, name, raw, err)
				}
				vals[r] = v
			}
			if err := f.SetNumbers(name, vals); err != nil {
				return nil, err
			}
		} else {
			vals := make([]string, len(rows))
			for r, row := range rows {
				vals[r] = cell(row, i)
			}
			if err := f.SetStrings(name, vals); err != nil {
				return nil, err
			}
		}
	}

	return deriveColumns(f, rows, colIdx)
}

// deriveColumns parses the order and ship dates and appends the period
// columns the pivot builders key on.
func deriveColumns(f *frame.Frame, rows [][]string, colIdx map[string]int) (*frame.Frame, error) {
	orderIdx := colIdx["Order_Date"]
	shipIdx := colIdx["Ship_Date"]

	n := len(rows)
	delivery := make([]float64, n)
	month := make([]string, n)
	quarter := make([]string, n)
	year := make([]string, n)
	calQuarter := make([]string, n)
	calMonth := make([]string, n)

	for r, row := range rows {
		orderDate, err := parseDate(row, orderIdx)
		if err != nil {
			return nil, fmt.Errorf("row %d: could not parse Order Date: %w", r+2, err)
		}
		shipDate, err := parseDate(row, shipIdx)
		if err != nil {
			return nil, fmt.Errorf("row %d: could not parse Ship Date: %w", r+2, err)
		}

		delivery[r] = shipDate.Sub(orderDate).Hours() / 24
		m := int(orderDate.Month())
		q := (m-1)/3 + 1
		month[r] = strconv.Itoa(m)
		quarter[r] = strconv.Itoa(q)
		year[r] = strconv.Itoa(orderDate.Year())
		calQuarter[r] = fmt.Sprintf("%d-Q%d", orderDate.Year(), q)
		calMonth[r] = fmt.Sprintf("%s-%d", orderDate.Month().String()[:3], orderDate.Year())
	}

	derived := []struct {
		name string
		strs []string
	}{
		{"Order_Month", month},
		{"Order_Quarter", quarter},
		{"Order_Year", year},
		{"Calendar_Quarter", calQuarter},
		{"Calendar_Month", calMonth},
	}
	if err := f.SetNumbers("Delivery_Length", delivery); err != nil {
		return nil, err
	}
	for _, d := range derived {
		if err := f.SetStrings(d.name, d.strs); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func parseDate(row []string, idx int) (time.Time, error) {
	if idx >= len(row) {
		return time.Time{}, fmt.Errorf("missing value")
	}
	raw := strings.TrimSpace(row[idx])
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a d/m/Y date", raw)
	}
	return t, nil
}
