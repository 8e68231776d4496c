// Package export writes the derived superstore summary tables to an Excel
// workbook so the numbers behind a deck stay inspectable.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/decklab/decksmith/internal/compose"
	"github.com/decklab/decksmith/internal/frame"
)

// Workbook derives the pivot tables for every pivot slide in the plan and
// writes them to an .xlsx file at path: three sheets per pivot (sales,
// growth, mix).
func Workbook(path string, data *frame.Frame, plan []compose.PlanSlide) error {
	f := excelize.NewFile()
	defer f.Close()

	wrote := false
	for i, ps := range plan {
		if ps.Type != compose.SlidePivotSummary && ps.Type != compose.SlidePivotDetail {
			continue
		}
		tables, err := compose.BuildPivotTables(data, ps.Pivot, ps.Filter)
		if err != nil {
			return fmt.Errorf("slide %d (%s): %w", i+1, ps.Title, err)
		}
		for _, part := range []struct {
			suffix string
			fr     *frame.Frame
		}{
			{"Sales", tables.Values},
			{"Growth", tables.Growth},
			{"Mix", tables.Mix},
		} {
			sheet := sheetName(ps.Title, part.suffix)
			if err := writeSheet(f, sheet, part.fr); err != nil {
				return fmt.Errorf("sheet %q: %w", sheet, err)
			}
			wrote = true
		}
	}
	if !wrote {
		return fmt.Errorf("plan contains no pivot slides — nothing to export")
	}

	// The workbook starts with a default sheet that never got data.
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, fr *frame.Frame) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	cols := fr.Columns()
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	numeric := make([][]float64, len(cols))
	labels := make([][]string, len(cols))
	for i, name := range cols {
		var err error
		if fr.IsNumeric(name) {
			numeric[i], err = fr.Numbers(name)
		} else {
			labels[i], err = fr.Strings(name)
		}
		if err != nil {
			return err
		}
	}

	for r := 0; r < fr.Len(); r++ {
		row := make([]interface{}, len(cols))
		for c := range cols {
			if numeric[c] != nil {
				row[c] = numeric[c][r]
			} else {
				row[c] = labels[c][r]
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// sheetName builds a legal sheet name: Excel forbids []:*?/\ and caps names
// at 31 characters.
func sheetName(title, suffix string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return ' '
		}
		return r
	}, title)
	clean = strings.Join(strings.Fields(clean), " ")

	max := 31 - len(suffix) - 1
	if len(clean) > max {
		clean = strings.TrimSpace(clean[:max])
	}
	return clean + " " + suffix
}
