package layout

// Canvas is a page surface that text can be drawn onto.
type Canvas interface {
	// DrawText draws a single line of text at size inside r, rotated by
	// rotation degrees around the center of r.
	DrawText(r Rect, text string, size float64, rotation int, align Align) error
}

// Page is one rendered badge sheet.
type Page interface {
	Canvas
	Save(path string) error
	Close() error
}

// Template produces fresh pages that carry the badge sheet background.
type Template interface {
	Bounds() Rect
	NewPage() (Page, error)
}
