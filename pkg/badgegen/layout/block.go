package layout

import "fmt"

// InnerRect returns the rect of the title line inside slot. Unrotated text
// hangs TopOffset below the slot's top edge; any other rotation mirrors it
// from the bottom edge so that the flipped half still reads upright.
func InnerRect(slot Rect, cfg Config, rotation int) Rect {
	r := Rect{X0: slot.X0 + cfg.MarginX, X1: slot.X1 - cfg.MarginX}
	if rotation == 0 {
		r.Y0 = slot.Y0 + cfg.TopOffset
		r.Y1 = slot.Y0 + cfg.TopOffset + cfg.BoxHeight
	} else {
		r.Y0 = slot.Y1 - cfg.TopOffset - cfg.BoxHeight
		r.Y1 = slot.Y1 - cfg.TopOffset
	}
	return r
}

// Line is one positioned line of a badge block.
type Line struct {
	Rect     Rect
	Text     string
	Start    float64
	Min      float64
	Rotation int
}

// BlockLines lays out the three lines of b inside slot. The full name and
// company stack away from the title line: downward for rotation 0,
// upward otherwise.
func BlockLines(slot Rect, b Block, cfg Config, fs FontSizes, rotation int) [3]Line {
	inner := InnerRect(slot, cfg, rotation)
	dir := 1.0
	if rotation != 0 {
		dir = -1
	}
	shiftFull := fs.Big + 2
	shiftCompany := shiftFull + fs.Small + 4
	return [3]Line{
		{Rect: inner, Text: b.FirstName, Start: fs.Big, Min: fs.MinBig, Rotation: rotation},
		{Rect: inner.ShiftY(dir * shiftFull), Text: b.FullName, Start: fs.Small, Min: fs.MinSmall, Rotation: rotation},
		{Rect: inner.ShiftY(dir * shiftCompany), Text: b.Company, Start: fs.Small, Min: fs.MinSmall, Rotation: rotation},
	}
}

// WriteBlock fits and draws the three lines of b into slot on c.
// Empty lines are left blank.
func WriteBlock(c Canvas, m Measurer, slot Rect, b Block, cfg Config, fs FontSizes, rotation int) error {
	for _, ln := range BlockLines(slot, b, cfg, fs, rotation) {
		if ln.Text == "" {
			continue
		}
		size := Fit(m, ln.Text, ln.Rect.Width(), ln.Start, ln.Min, fs.Step)
		if err := c.DrawText(ln.Rect, ln.Text, size, ln.Rotation, cfg.Align); err != nil {
			return fmt.Errorf("draw %q: %w", ln.Text, err)
		}
	}
	return nil
}
