package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/layout"
	"github.com/signintech/gopdf"
)

var errClosed = errors.New("page is closed")

// Page is one badge sheet under construction.
type Page struct {
	pdf   *gopdf.GoPdf
	alias string
}

// DrawText draws text in r. The text hangs from the top edge of r as read
// after rotating by rotation degrees around the center of r.
func (p *Page) DrawText(r layout.Rect, text string, size float64, rotation int, align layout.Align) error {
	if p.pdf == nil {
		return errClosed
	}
	if err := p.pdf.SetFont(p.alias, "", size); err != nil {
		return fmt.Errorf("set font: %w", err)
	}
	if rotation%360 != 0 {
		cx, cy := r.Center()
		p.pdf.Rotate(float64(rotation), cx, cy)
		defer p.pdf.RotateReset()
	}
	p.pdf.SetXY(r.X0, r.Y0)
	return p.pdf.CellWithOption(&gopdf.Rect{W: r.Width(), H: r.Height()}, text, gopdf.CellOption{
		Align: cellAlign(align) | gopdf.Top,
	})
}

func cellAlign(a layout.Align) int {
	switch a {
	case layout.AlignCenter:
		return gopdf.Center
	case layout.AlignRight:
		return gopdf.Right
	default:
		return gopdf.Left
	}
}

// Save writes the document to path. The file is written under a temporary
// name in the same directory and renamed into place once complete.
func (p *Page) Save(path string) (err error) {
	if p.pdf == nil {
		return errClosed
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".badge-*.pdf")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = p.pdf.WriteTo(tmp); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Close releases the document. Further calls fail.
func (p *Page) Close() error {
	p.pdf = nil
	return nil
}
