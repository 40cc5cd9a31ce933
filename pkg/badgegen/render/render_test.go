package render

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/fontutil"
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/layout"
	"github.com/signintech/gopdf"
	"golang.org/x/image/font/gofont/goregular"
)

// writeTemplate creates a one-page A4 template with a cut line across the middle.
func writeTemplate(t *testing.T, dir string) string {
	t.Helper()

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()
	pdf.Line(0, gopdf.PageSizeA4.H/2, gopdf.PageSizeA4.W, gopdf.PageSizeA4.H/2)

	path := filepath.Join(dir, "template.pdf")
	if err := pdf.WritePdf(path); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

func testFont(t *testing.T) *fontutil.Font {
	t.Helper()
	f, err := fontutil.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("parse font: %v", err)
	}
	return f
}

func TestOpenTemplate(t *testing.T) {
	dir := t.TempDir()
	tpl, err := OpenTemplate(writeTemplate(t, dir), testFont(t), "")
	if err != nil {
		t.Fatalf("OpenTemplate: %v", err)
	}

	b := tpl.Bounds()
	if b.X0 != 0 || b.Y0 != 0 {
		t.Errorf("Bounds origin = (%v, %v), want (0, 0)", b.X0, b.Y0)
	}
	if math.Abs(b.Width()-gopdf.PageSizeA4.W) > 1 || math.Abs(b.Height()-gopdf.PageSizeA4.H) > 1 {
		t.Errorf("Bounds = %vx%v, want A4", b.Width(), b.Height())
	}
}

func TestOpenTemplateMissing(t *testing.T) {
	if _, err := OpenTemplate(filepath.Join(t.TempDir(), "missing.pdf"), testFont(t), ""); err == nil {
		t.Error("expected error for missing template")
	}
}

func TestPageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	font := testFont(t)
	tpl, err := OpenTemplate(writeTemplate(t, dir), font, "goregular")
	if err != nil {
		t.Fatalf("OpenTemplate: %v", err)
	}

	page, err := tpl.NewPage()
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	defer page.Close()

	blocks := []layout.Block{
		layout.PrepareBlock("Jane", "Jane Doe", "Acme"),
		layout.PrepareBlock("Ben", "Ben O'Brien", "Initech"),
	}
	if err := layout.Compose(page, font, tpl.Bounds(), blocks, layout.DefaultConfig(), layout.DefaultFontSizes()); err != nil {
		t.Fatalf("Compose: %v", err)
	}

	out := filepath.Join(dir, "badge.pdf")
	if err := page.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, ".badge-*"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}

	merged := filepath.Join(dir, "all.pdf")
	if err := Merge([]string{out, out}, merged); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if _, err := os.Stat(merged); err != nil {
		t.Errorf("merged file missing: %v", err)
	}
}

func TestClosedPage(t *testing.T) {
	p := &Page{pdf: &gopdf.GoPdf{}, alias: "x"}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.DrawText(layout.Rect{X1: 10, Y1: 10}, "x", 10, 0, layout.AlignLeft); !errors.Is(err, errClosed) {
		t.Errorf("DrawText after Close = %v, want errClosed", err)
	}
	if err := p.Save(filepath.Join(t.TempDir(), "x.pdf")); !errors.Is(err, errClosed) {
		t.Errorf("Save after Close = %v, want errClosed", err)
	}
}

func TestMergeNoFiles(t *testing.T) {
	if err := Merge(nil, filepath.Join(t.TempDir(), "out.pdf")); err == nil {
		t.Error("expected error when merging nothing")
	}
}

func TestCellAlign(t *testing.T) {
	tests := map[layout.Align]int{
		layout.AlignLeft:    gopdf.Left,
		layout.AlignCenter:  gopdf.Center,
		layout.AlignRight:   gopdf.Right,
		layout.AlignJustify: gopdf.Left,
	}
	for a, want := range tests {
		if got := cellAlign(a); got != want {
			t.Errorf("cellAlign(%d) = %d, want %d", a, got, want)
		}
	}
}
