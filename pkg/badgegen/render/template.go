// Package render draws badge pages onto a PDF template.
//
// Template geometry and merging go through pdfcpu; page content is
// produced with gopdf, which imports the template page as a background
// and embeds the badge font.
package render

import (
	"errors"
	"fmt"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/fontutil"
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/layout"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/signintech/gopdf"
)

// ErrNoPages indicates the template document has no pages.
var ErrNoPages = errors.New("template has no pages")

func init() {
	// pdfcpu otherwise writes its configuration below the user config dir.
	api.DisableConfigDir()
}

// Template is a single-page PDF used as the background of every badge sheet.
type Template struct {
	path   string
	width  float64
	height float64
	font   *fontutil.Font
	alias  string
}

// OpenTemplate reads the page geometry of the template at path. Pages
// created from it embed font under alias.
func OpenTemplate(path string, font *fontutil.Font, alias string) (*Template, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPages)
	}
	if alias == "" {
		alias = "custom"
	}
	return &Template{
		path:   path,
		width:  dims[0].Width,
		height: dims[0].Height,
		font:   font,
		alias:  alias,
	}, nil
}

// Bounds returns the page rectangle in points.
func (t *Template) Bounds() layout.Rect {
	return layout.Rect{X1: t.width, Y1: t.height}
}

// NewPage starts a new document holding one copy of the template page.
func (t *Template) NewPage() (page layout.Page, err error) {
	// gofpdi reports malformed sources by panicking.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("import template %s: %v", t.path, r)
		}
	}()

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: t.width, H: t.height}})
	pdf.AddPage()
	if err := pdf.AddTTFFontData(t.alias, t.font.Data); err != nil {
		return nil, fmt.Errorf("embed font %s: %w", t.alias, err)
	}
	tpl := pdf.ImportPage(t.path, 1, "/MediaBox")
	pdf.UseImportedTemplate(tpl, 0, 0, t.width, t.height)

	return &Page{pdf: pdf, alias: t.alias}, nil
}
