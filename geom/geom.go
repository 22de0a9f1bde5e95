// Package geom holds the exact integer geometry used by the rules: orientation,
// collinearity, segment crossing and triangle rasterization.
package geom

import (
	"encoding/json"
	"fmt"
	"math"

	"lighthouses/utils"
)

// Point is a grid coordinate. Y grows upward; row 0 is the bottom map row.
type Point struct {
	X int
	Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Less orders points by X, then Y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Compare is Less in slices.SortFunc form.
func Compare(p, q Point) int {
	switch {
	case p.Less(q):
		return -1
	case q.Less(p):
		return 1
	}
	return 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// MarshalJSON encodes the point as [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var xy [2]int
	if err := json.Unmarshal(data, &xy); err != nil {
		return fmt.Errorf("point must be an [x, y] integer pair: %w", err)
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

// Orient is twice the signed area of a, b, c: positive when c lies to the
// left of a->b, negative to the right, zero when collinear.
func Orient(a, b, c Point) int {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

func Collinear(a, b, c Point) bool {
	return Orient(a, b, c) == 0
}

// Between reports whether p lies on the closed segment a-b without being
// one of its endpoints.
func Between(a, b, p Point) bool {
	if p == a || p == b {
		return false
	}
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	if p.X < x0 || p.X > x1 || p.Y < y0 || p.Y > y1 {
		return false
	}
	return Collinear(a, b, p)
}

// Intersect reports a proper crossing of p1-p2 and q1-q2. Touching at an
// endpoint or overlapping collinearly is not a crossing.
func Intersect(p1, p2, q1, q2 Point) bool {
	return utils.Sign(Orient(q1, q2, p1))*utils.Sign(Orient(q1, q2, p2)) < 0 &&
		utils.Sign(Orient(p1, p2, q1))*utils.Sign(Orient(p1, p2, q2)) < 0
}

// Dist is the Euclidean distance. Only energy diffusion and view horizons use
// it; validity checks stay on integers.
func Dist(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
