// Package parser reads attendee data from Excel workbooks.
package parser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// OpenWorkbook opens the workbook at path. password may be empty.
func OpenWorkbook(path, password string) (*excelize.File, error) {
	return excelize.OpenFile(path, excelize.Options{Password: password})
}

// ResolveSheet returns name if the workbook has such a sheet, or the first
// sheet when name is empty.
func ResolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if name == "" {
		if len(sheets) == 0 {
			return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}
