package layout

import "fmt"

// Slot is one badge position on a page.
type Slot struct {
	Rect Rect `json:"rect"`
	// GridRow is the slot's row in the grid, 0 being the top row.
	GridRow int `json:"grid_row"`
	// Rotation is the text rotation in degrees.
	Rotation int `json:"rotation"`
	// Source is the index of the batch row shown in this slot.
	Source int `json:"source"`
}

// Slots returns the slot plan for a page. Slots in the first grid-row show
// batch rows 0..Cols-1; every later slot idx shows batch row idx-Cols, so
// the lower half of a two-row sheet repeats the upper half.
func Slots(page Rect, cfg Config) []Slot {
	rects := Grid(page, cfg.Rows, cfg.Cols)
	slots := make([]Slot, len(rects))
	for idx, r := range rects {
		s := Slot{Rect: r, GridRow: idx / cfg.Cols, Source: idx}
		if idx >= cfg.Cols {
			s.Source = idx - cfg.Cols
		}
		if s.GridRow == 0 {
			s.Rotation = cfg.RotationTop
		} else {
			s.Rotation = cfg.RotationBottom
		}
		slots[idx] = s
	}
	return slots
}

// Compose draws blocks onto c following the slot plan of page. It stops at
// the first slot whose index reaches len(blocks), which only happens for an
// unpadded final batch.
func Compose(c Canvas, m Measurer, page Rect, blocks []Block, cfg Config, fs FontSizes) error {
	for idx, s := range Slots(page, cfg) {
		if idx >= len(blocks) {
			break
		}
		if err := WriteBlock(c, m, s.Rect, blocks[s.Source], cfg, fs, s.Rotation); err != nil {
			return fmt.Errorf("slot %d: %w", idx, err)
		}
	}
	return nil
}
