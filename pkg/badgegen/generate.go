package badgegen

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/fontutil"
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/models"
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/parser"
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/render"
)

// Result summarizes a generation run.
type Result struct {
	// Sheet is the worksheet the attendees were read from.
	Sheet string
	// Attendees counts rows rendered, before padding.
	Attendees int
	// Files lists the written page files in page order.
	Files []string
	// Merged is the combined document, if one was requested.
	Merged string
}

// Pages returns the number of page files written.
func (r *Result) Pages() int {
	return len(r.Files)
}

// Generate renders the attendees of opts.ExcelPath onto copies of
// opts.TemplatePath, writing one PDF per page into opts.OutputDir.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := requireFile(opts.TemplatePath); err != nil {
		return nil, err
	}

	sheet, err := ReadSheet(opts)
	if err != nil {
		return nil, err
	}

	font, err := fontutil.Load(opts.Font.Path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrFontLoad, opts.Font.Path, err)
	}

	tpl, err := render.OpenTemplate(opts.TemplatePath, font, opts.Font.Alias)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] template %s: %.2fx%.2fpt, %dx%d slots",
		opts.TemplatePath, tpl.Bounds().Width(), tpl.Bounds().Height(), opts.Layout.Rows, opts.Layout.Cols)

	d := &Driver{
		Template:  tpl,
		Measurer:  font,
		Layout:    opts.Layout,
		Sizes:     opts.Font.FontSizes,
		OutputDir: opts.OutputDir,
		Pad:       opts.ShouldFillLastPage(),
		Workers:   opts.WorkerCount(),
		OnPage:    opts.OnPage,
	}
	files, err := d.Run(ctx, sheet.Attendees)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Sheet:     sheet.SheetName,
		Attendees: len(sheet.Attendees),
		Files:     files,
	}
	if opts.MergePath != "" && len(files) > 0 {
		if err := render.Merge(files, opts.MergePath); err != nil {
			return nil, err
		}
		result.Merged = opts.MergePath
	}
	return result, nil
}

// PlanPages reads the attendees of opts.ExcelPath and returns the pages
// Generate would write, without touching the template or the font.
func PlanPages(opts Options) ([]models.PagePlan, error) {
	sheet, err := ReadSheet(opts)
	if err != nil {
		return nil, err
	}
	return Plan(sheet.Attendees, opts.Layout, opts.ShouldFillLastPage()), nil
}

// ReadSheet reads the attendee rows selected by opts.
func ReadSheet(opts Options) (*models.AttendeeSheet, error) {
	if err := requireFile(opts.ExcelPath); err != nil {
		return nil, err
	}

	f, err := parser.OpenWorkbook(opts.ExcelPath, opts.Password)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", opts.ExcelPath, err)
	}
	defer f.Close()

	sheetName, err := parser.ResolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	sheet, err := parser.ReadAttendees(f, sheetName, opts.Columns)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	for _, col := range sheet.MissingColumns {
		log.Printf("[WARN] sheet %q has no column %q; its values are left blank", sheetName, col)
	}
	log.Printf("[INFO] sheet %q: %d attendees, %d blank rows skipped", sheetName, len(sheet.Attendees), sheet.Dropped)
	return sheet, nil
}

func requireFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	} else if err != nil {
		return err
	}
	return nil
}
