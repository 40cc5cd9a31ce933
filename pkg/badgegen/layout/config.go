package layout

// Align is a horizontal text alignment code.
type Align int

const (
	// AlignLeft places text against the left edge of its rect.
	AlignLeft Align = 0
	// AlignCenter centers text within its rect.
	AlignCenter Align = 1
	// AlignRight places text against the right edge of its rect.
	AlignRight Align = 2
	// AlignJustify justifies text. Single lines render as AlignLeft.
	AlignJustify Align = 3
)

// Valid reports whether a is a known alignment code.
func (a Align) Valid() bool {
	return a >= AlignLeft && a <= AlignJustify
}

// Config describes the badge sheet geometry.
type Config struct {
	// MarginX is the horizontal inset of the text block from each slot edge.
	MarginX float64
	// TopOffset is the distance from the slot's reading-top edge to the first line.
	TopOffset float64
	// BoxHeight is the height of each text line's rect.
	BoxHeight float64
	// Rows and Cols give the slot grid dimensions.
	Rows int
	Cols int
	// RotationTop applies to grid-row 0, RotationBottom to every other row.
	RotationTop    int
	RotationBottom int
	// Align is the horizontal alignment of every line.
	Align Align
}

// DefaultConfig returns the geometry of the standard 2x2 A4 badge sheet.
func DefaultConfig() Config {
	return Config{
		MarginX:        30,
		TopOffset:      125,
		BoxHeight:      200,
		Rows:           2,
		Cols:           2,
		RotationTop:    0,
		RotationBottom: 180,
		Align:          AlignCenter,
	}
}

// SlotsPerPage returns the number of slots on one page.
func (c Config) SlotsPerPage() int {
	return c.Rows * c.Cols
}

// FontSizes holds the sizing range for the title line and the two detail lines.
type FontSizes struct {
	Big      float64
	Small    float64
	MinBig   float64
	MinSmall float64
	Step     float64
}

// DefaultFontSizes returns the standard sizing range.
func DefaultFontSizes() FontSizes {
	return FontSizes{
		Big:      40,
		Small:    16,
		MinBig:   24,
		MinSmall: 10,
		Step:     1,
	}
}
