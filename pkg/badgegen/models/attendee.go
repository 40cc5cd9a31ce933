// Package models defines data structures for badge generation.
package models

// Attendee represents one spreadsheet row of badge data.
// Empty fields are missing cells.
type Attendee struct {
	// Row is the source row index (1-based).
	Row int `json:"row"`
	// FirstName is the raw first-name cell.
	FirstName string `json:"first_name,omitempty"`
	// FullName is the raw full-name cell.
	FullName string `json:"full_name,omitempty"`
	// Company is the raw company cell.
	Company string `json:"company,omitempty"`
	// LastName is the raw last-name cell.
	LastName string `json:"last_name,omitempty"`
}

// Blank reports whether none of the three displayed fields has a value.
func (a Attendee) Blank() bool {
	return a.FirstName == "" && a.FullName == "" && a.Company == ""
}

// AttendeeSheet is the attendee data read from one worksheet.
type AttendeeSheet struct {
	// SheetName is the worksheet the rows were read from.
	SheetName string `json:"sheet_name"`
	// HeaderRow is the row holding the column names (1-based, 0 when the sheet is empty).
	HeaderRow int `json:"header_row"`
	// Attendees contains the non-blank data rows in sheet order.
	Attendees []Attendee `json:"attendees,omitempty"`
	// MissingColumns lists configured column names absent from the header.
	MissingColumns []string `json:"missing_columns,omitempty"`
	// Dropped counts data rows skipped because all displayed fields were blank.
	Dropped int `json:"dropped"`
}
