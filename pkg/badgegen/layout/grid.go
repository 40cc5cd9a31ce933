package layout

// Grid partitions page into rows*cols equal cells, ordered row-major.
// Neighbouring cells share identical edge values and the last row and
// column end exactly on the page edge.
// rows and cols must be at least 1.
func Grid(page Rect, rows, cols int) []Rect {
	rects := make([]Rect, 0, rows*cols)
	for r := 0; r < rows; r++ {
		y0 := edge(page.Y0, page.Y1, r, rows)
		y1 := edge(page.Y0, page.Y1, r+1, rows)
		for c := 0; c < cols; c++ {
			rects = append(rects, Rect{
				X0: edge(page.X0, page.X1, c, cols),
				Y0: y0,
				X1: edge(page.X0, page.X1, c+1, cols),
				Y1: y1,
			})
		}
	}
	return rects
}

// edge returns the i-th of n+1 evenly spaced positions between lo and hi.
func edge(lo, hi float64, i, n int) float64 {
	if i == n {
		return hi
	}
	return lo + (hi-lo)*float64(i)/float64(n)
}
