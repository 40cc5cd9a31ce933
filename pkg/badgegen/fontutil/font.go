// Package fontutil loads TrueType/OpenType fonts and measures text set in them.
package fontutil

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is a parsed font together with its raw bytes.
// It is safe for concurrent use.
type Font struct {
	// Data holds the original font file, for embedding into documents.
	Data []byte
	Font *sfnt.Font

	mu         sync.Mutex
	facesCache map[float64]font.Face
}

// Load reads and parses the font file at path.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses font data.
func Parse(data []byte) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{
		Data:       data,
		Font:       f,
		facesCache: map[float64]font.Face{},
	}, nil
}

// Face returns a face for size points at 72 DPI, so that face units are points.
func (f *Font) Face(size float64) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.facesCache[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.Font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	f.facesCache[size] = face
	return face, nil
}

// TextWidth returns the advance width of text at size, in points.
// Sizes the font cannot produce a face for measure as zero.
func (f *Font) TextWidth(text string, size float64) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	face, err := f.Face(size)
	if err != nil {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	// opentype faces share a glyph buffer and are not safe for concurrent use.
	return Fixed266ToFloat64(font.MeasureString(face, text))
}

// Fixed266ToFloat64 converts a 26.6 fixed point value.
func Fixed266ToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / float64(64)
}
