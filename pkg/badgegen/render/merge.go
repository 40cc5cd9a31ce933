package render

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merge concatenates the PDF files in order into out.
func Merge(files []string, out string) error {
	if len(files) == 0 {
		return fmt.Errorf("merge %s: no input files", out)
	}
	if err := api.MergeCreateFile(files, out, false, nil); err != nil {
		return fmt.Errorf("merge %s: %w", out, err)
	}
	return nil
}
