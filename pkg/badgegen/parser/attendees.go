package parser

import (
	"strings"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/models"
	"github.com/xuri/excelize/v2"
)

// ReadAttendees extracts attendee rows from a sheet.
// The first non-empty row is the header; each later row becomes an
// Attendee unless its three displayed fields are all blank.
func ReadAttendees(f *excelize.File, sheetName string, cols models.Columns) (*models.AttendeeSheet, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	result := &models.AttendeeSheet{SheetName: sheetName}
	headerIdx := findHeaderRow(rows)
	if headerIdx < 0 {
		result.MissingColumns = []string{cols.FirstName, cols.FullName, cols.Company, cols.LastName}
		return result, nil
	}
	result.HeaderRow = headerIdx + 1

	index := headerIndex(rows[headerIdx])
	lookup := func(name string) int {
		i, ok := index[strings.TrimSpace(name)]
		if !ok {
			result.MissingColumns = append(result.MissingColumns, name)
			return -1
		}
		return i
	}
	firstCol := lookup(cols.FirstName)
	fullCol := lookup(cols.FullName)
	companyCol := lookup(cols.Company)
	lastCol := lookup(cols.LastName)

	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		a := models.Attendee{
			Row:       rowIdx + 1, // 1-based row index
			FirstName: cellValue(row, firstCol),
			FullName:  cellValue(row, fullCol),
			Company:   cellValue(row, companyCol),
			LastName:  cellValue(row, lastCol),
		}
		if a.Blank() {
			if !isEmptyRow(row) {
				result.Dropped++
			}
			continue
		}
		result.Attendees = append(result.Attendees, a)
	}

	return result, nil
}

// findHeaderRow returns the index of the first row with a non-blank cell, or -1.
func findHeaderRow(rows [][]string) int {
	for rowIdx, row := range rows {
		if !isEmptyRow(row) {
			return rowIdx
		}
	}
	return -1
}

// headerIndex maps trimmed header names to their column index.
// The first occurrence of a repeated name wins.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for colIdx, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := index[name]; !ok {
			index[name] = colIdx
		}
	}
	return index
}

// cellValue returns the cell at col, or "" when the column is missing or
// the cell holds only whitespace.
func cellValue(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	v := row[col]
	if strings.TrimSpace(v) == "" {
		return ""
	}
	return v
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
