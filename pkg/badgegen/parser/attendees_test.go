package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/models"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

// saveWorkbook writes rows to Sheet1 of a new workbook and reopens it.
func saveWorkbook(t *testing.T, rows [][]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "attendees.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := OpenWorkbook(tmpFile, "")
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestReadAttendees(t *testing.T) {
	f := saveWorkbook(t, [][]interface{}{
		{"NAME", "LASTNAME", "FULL NAME", "COMPANY"},
		{"Jane Marie", "Doe", "Jane  Doe", "Acme"},
		{"", "", "", ""},
		{"  ", "Ghost", " ", ""},
		{"", "", "", "Solo Corp"},
		{"Ben", "O'Brien", "Ben O'Brien", 42},
	})

	sheet, err := ReadAttendees(f, "Sheet1", models.DefaultColumns())
	if err != nil {
		t.Fatalf("ReadAttendees failed: %v", err)
	}

	want := &models.AttendeeSheet{
		SheetName: "Sheet1",
		HeaderRow: 1,
		Attendees: []models.Attendee{
			{Row: 2, FirstName: "Jane Marie", FullName: "Jane  Doe", Company: "Acme", LastName: "Doe"},
			{Row: 5, Company: "Solo Corp"},
			{Row: 6, FirstName: "Ben", FullName: "Ben O'Brien", Company: "42", LastName: "O'Brien"},
		},
		Dropped: 1,
	}
	if diff := cmp.Diff(want, sheet); diff != "" {
		t.Errorf("ReadAttendees mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAttendeesHeaderOffset(t *testing.T) {
	f := saveWorkbook(t, [][]interface{}{
		{},
		{"Registrations"},
		{"NAME", "FULL NAME"},
		{"Anna", "Anna Bell"},
	})

	sheet, err := ReadAttendees(f, "Sheet1", models.DefaultColumns())
	if err != nil {
		t.Fatalf("ReadAttendees failed: %v", err)
	}
	// The title row is the first non-empty row, so it is taken as the header.
	if sheet.HeaderRow != 2 {
		t.Errorf("HeaderRow = %d, want 2", sheet.HeaderRow)
	}
	if len(sheet.MissingColumns) != 4 {
		t.Errorf("MissingColumns = %v, want all four columns", sheet.MissingColumns)
	}
	if len(sheet.Attendees) != 0 {
		t.Errorf("got %d attendees, want 0", len(sheet.Attendees))
	}
}

func TestReadAttendeesCustomColumns(t *testing.T) {
	f := saveWorkbook(t, [][]interface{}{
		{"Vorname", " Name ", "Firma"},
		{"Jürgen", "Jürgen Groß", "Groß AG"},
	})

	cols := models.Columns{
		FirstName: "Vorname",
		FullName:  "Name",
		Company:   "Firma",
		LastName:  "Nachname",
	}
	sheet, err := ReadAttendees(f, "Sheet1", cols)
	if err != nil {
		t.Fatalf("ReadAttendees failed: %v", err)
	}

	if diff := cmp.Diff([]string{"Nachname"}, sheet.MissingColumns); diff != "" {
		t.Errorf("MissingColumns (-want +got):\n%s", diff)
	}
	want := []models.Attendee{{Row: 2, FirstName: "Jürgen", FullName: "Jürgen Groß", Company: "Groß AG"}}
	if diff := cmp.Diff(want, sheet.Attendees); diff != "" {
		t.Errorf("Attendees (-want +got):\n%s", diff)
	}
}

func TestReadAttendeesEmptySheet(t *testing.T) {
	f := saveWorkbook(t, nil)

	sheet, err := ReadAttendees(f, "Sheet1", models.DefaultColumns())
	if err != nil {
		t.Fatalf("ReadAttendees failed: %v", err)
	}
	if sheet.HeaderRow != 0 || len(sheet.Attendees) != 0 {
		t.Errorf("got header row %d and %d attendees, want none", sheet.HeaderRow, len(sheet.Attendees))
	}
}

func TestResolveSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Guests"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "Sheet1", false},
		{"Guests", "Guests", false},
		{"Speakers", "", true},
	}

	for _, tt := range tests {
		got, err := ResolveSheet(f, tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrSheetNotFound) {
				t.Errorf("ResolveSheet(%q) error = %v, want ErrSheetNotFound", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveSheet(%q) failed: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("ResolveSheet(%q) = %q, expected %q", tt.name, got, tt.want)
		}
	}
}

func TestOpenWorkbookMissing(t *testing.T) {
	if _, err := OpenWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"), ""); err == nil {
		t.Error("expected error for missing workbook")
	}
}
