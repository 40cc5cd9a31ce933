// Package badgegen renders attendee spreadsheets onto PDF badge sheets.
package badgegen

import (
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/layout"
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/models"
)

// Columns names the spreadsheet columns holding each attendee field.
type Columns = models.Columns

// DefaultFontPath is the badge font used when none is configured.
const DefaultFontPath = "fonts/calibri-regular.ttf"

// FontSpec selects the badge font and its sizing range.
type FontSpec struct {
	// Path is the TrueType/OpenType font file.
	Path string
	// Alias is the name the font is embedded under.
	Alias string
	layout.FontSizes
}

// DefaultFontSpec returns the default font and sizes.
func DefaultFontSpec() FontSpec {
	return FontSpec{
		Path:      DefaultFontPath,
		Alias:     "custom",
		FontSizes: layout.DefaultFontSizes(),
	}
}

// Options configures badge generation.
type Options struct {
	// ExcelPath is the attendee workbook.
	ExcelPath string
	// TemplatePath is the single-page badge sheet PDF.
	TemplatePath string
	// OutputDir receives one PDF per page; it is created if absent.
	OutputDir string
	// Sheet selects the worksheet. Empty means the first sheet.
	Sheet string
	// Password opens encrypted workbooks.
	Password string

	Columns Columns
	Layout  layout.Config
	Font    FontSpec

	// FillLastPage pads a short final batch by repeating its last attendee,
	// so that no slot is left blank. If nil, defaults to true.
	FillLastPage *bool
	// Workers is the number of pages rendered concurrently. Values below 1 mean 1.
	Workers int
	// MergePath, when set, receives all pages combined into one PDF.
	MergePath string
	// OnPage is called after each page is saved.
	OnPage func(done, total int, file string)
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		OutputDir: "badge_output",
		Columns:   models.DefaultColumns(),
		Layout:    layout.DefaultConfig(),
		Font:      DefaultFontSpec(),
		Workers:   1,
	}
}

// ShouldFillLastPage returns whether short final batches are padded.
func (o Options) ShouldFillLastPage() bool {
	if o.FillLastPage != nil {
		return *o.FillLastPage
	}
	return true
}

// WorkerCount returns the effective number of concurrent page renders.
func (o Options) WorkerCount() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}
