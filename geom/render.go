package geom

import "iter"

// Render yields the grid cells covered by triangle v0, v1, v2 in row-major
// order. Cells on an edge belong to the triangle only if that edge is a top
// or left edge, so triangles sharing an edge never both claim its cells.
// Degenerate triangles yield nothing.
func Render(v0, v1, v2 Point) iter.Seq[Point] {
	if Orient(v0, v1, v2) < 0 {
		v0, v1 = v1, v0
	}
	return func(yield func(Point) bool) {
		if Orient(v0, v1, v2) == 0 {
			return
		}
		x0, x1 := min(v0.X, v1.X, v2.X), max(v0.X, v1.X, v2.X)
		y0, y1 := min(v0.Y, v1.Y, v2.Y), max(v0.Y, v1.Y, v2.Y)
		b0, b1, b2 := bias(v1, v2), bias(v2, v0), bias(v0, v1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				p := Point{X: x, Y: y}
				if Orient(v1, v2, p)+b0 < 0 || Orient(v2, v0, p)+b1 < 0 || Orient(v0, v1, p)+b2 < 0 {
					continue
				}
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Cells collects Render into a slice.
func Cells(v0, v1, v2 Point) []Point {
	var cells []Point
	for p := range Render(v0, v1, v2) {
		cells = append(cells, p)
	}
	return cells
}

// bias is 0 for a top or left edge of a counter-clockwise triangle, -1
// otherwise. Edge functions are integers, so -1 turns ">= 0" into "> 0".
func bias(a, b Point) int {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dy < 0 || (dy == 0 && dx < 0) {
		return 0
	}
	return -1
}
