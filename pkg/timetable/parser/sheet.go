// Package parser reads timetable worksheets with excelize.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the workbook has no sheet of the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptySheet indicates the sheet has no header row.
var ErrEmptySheet = errors.New("sheet has no header row")

// ReadTable reads sheetName as text. The first row is the header; when
// skipSubHeader is set the second row is kept apart as the sub-header.
// Every row is padded to the width of the widest non-empty cell so merged
// header cells do not shorten the table.
func ReadTable(f *excelize.File, sheetName string, skipSubHeader bool) (models.RawTable, error) {
	sheet, ok := findSheet(f, sheetName)
	if !ok {
		return models.RawTable{}, fmt.Errorf("%w: %q (have %s)", ErrSheetNotFound, sheetName,
			strings.Join(f.GetSheetList(), ", "))
	}

	// Get all rows as text
	rows, err := f.GetRows(sheet)
	if err != nil {
		return models.RawTable{}, err
	}

	// Trim trailing blank rows and columns
	maxRow, maxCol := dataBounds(rows)
	if maxRow < 0 {
		return models.RawTable{}, fmt.Errorf("%w: %q", ErrEmptySheet, sheet)
	}
	width := maxCol + 1
	rows = rows[:maxRow+1]

	// GetRows stops at the last set cell, so merged header cells come
	// back short. Pad every row to the full width.
	table := models.RawTable{Sheet: sheet, Header: padRow(rows[0], width)}
	// Keep the sub-header apart from data rows
	start := 1
	if skipSubHeader && len(rows) > 1 {
		table.SubHeader = padRow(rows[1], width)
		start = 2
	}
	for i := start; i < len(rows); i++ {
		table.Rows = append(table.Rows, models.RawRow{
			R:     i + 1, // 1-based row index
			Cells: padRow(rows[i], width),
		})
	}
	return table, nil
}

// findSheet resolves name against the workbook's sheets, falling back to a
// case-insensitive match.
func findSheet(f *excelize.File, name string) (string, bool) {
	list := f.GetSheetList()
	for _, s := range list {
		if s == name {
			return s, true
		}
	}
	for _, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(name)) {
			return s, true
		}
	}
	return "", false
}

// dataBounds finds the last row and column holding a non-blank cell.
// Both are -1 for an empty sheet.
func dataBounds(rows [][]string) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	return
}

func padRow(row []string, width int) []string {
	out := make([]string, width)
	for i := 0; i < width && i < len(row); i++ {
		out[i] = strings.TrimSpace(row[i])
	}
	return out
}
