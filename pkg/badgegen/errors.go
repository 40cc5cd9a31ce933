package badgegen

import (
	"errors"
	"fmt"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/parser"
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/render"
)

// ErrFileNotFound indicates a required input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrNoTemplatePage indicates the template PDF has no pages.
var ErrNoTemplatePage = render.ErrNoPages

// ErrFontLoad indicates the badge font could not be read or parsed.
var ErrFontLoad = errors.New("cannot load font")

// PageError represents a failure while rendering or saving one page.
type PageError struct {
	Page int    // 1-based page number
	File string // output file name
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d (%s): %v", e.Page, e.File, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// NewPageError creates a new PageError.
func NewPageError(page int, file string, err error) *PageError {
	return &PageError{
		Page: page,
		File: file,
		Err:  err,
	}
}
