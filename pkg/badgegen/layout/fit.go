package layout

// Measurer reports the advance width, in points, of text set at size.
type Measurer interface {
	TextWidth(text string, size float64) float64
}

// Fit returns the largest size, going down from start in decrements of
// step, at which text is no wider than width. min is a hard floor: text
// that still overflows at min is returned at min.
//
// A non-positive step, or start not above min, leaves start unchanged.
func Fit(m Measurer, text string, width, start, min, step float64) float64 {
	if step <= 0 || start <= min {
		return start
	}
	size := start
	for size > min && m.TextWidth(text, size) > width {
		size -= step
	}
	if size < min {
		size = min
	}
	return size
}
