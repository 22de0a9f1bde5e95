package game

import (
	"math"

	"lighthouses/geom"
	"lighthouses/utils"
)

// Island is the walkable map and the energy field laid over it.
type Island struct {
	walkable  [][]bool // [y][x]
	energy    [][]int  // [y][x]
	maxEnergy int
	w, h      int
}

func NewIsland(walkable [][]bool, maxEnergy int) *Island {
	h := len(walkable)
	w := 0
	if h > 0 {
		w = len(walkable[0])
	}
	island := &Island{
		walkable:  make([][]bool, h),
		energy:    make([][]int, h),
		maxEnergy: maxEnergy,
		w:         w,
		h:         h,
	}
	for y, row := range walkable {
		island.walkable[y] = append([]bool(nil), row...)
		island.energy[y] = make([]int, len(row))
	}
	return island
}

func (i *Island) Width() int  { return i.w }
func (i *Island) Height() int { return i.h }

func (i *Island) Walkable(p Position) bool {
	if p.Y < 0 || p.Y >= i.h || p.X < 0 || p.X >= len(i.walkable[p.Y]) {
		return false
	}
	return i.walkable[p.Y][p.X]
}

// Energy is always 0 off the island.
func (i *Island) Energy(p Position) int {
	if !i.Walkable(p) {
		return 0
	}
	return i.energy[p.Y][p.X]
}

// SetEnergy clamps to the cell cap and ignores cells off the island.
func (i *Island) SetEnergy(p Position, value int) {
	if value < 0 {
		panic("island energy cannot be negative")
	}
	if !i.Walkable(p) {
		return
	}
	i.energy[p.Y][p.X] = min(value, i.maxEnergy)
}

func (i *Island) AddEnergy(p Position, delta int) {
	i.SetEnergy(p, utils.Clamp(i.Energy(p)+delta, 0, math.MaxInt))
}

// Inject spreads floor(radius - distance) energy around center, halved when
// halfRate is set.
func (i *Island) Inject(center Position, radius int, halfRate bool) {
	for y := center.Y - radius + 1; y < center.Y+radius; y++ {
		for x := center.X - radius + 1; x < center.X+radius; x++ {
			p := Position{X: x, Y: y}
			delta := math.Floor(float64(radius) - geom.Dist(center, p))
			if halfRate {
				delta = math.Floor(delta / 2)
			}
			if delta > 0 {
				i.AddEnergy(p, int(delta))
			}
		}
	}
}

// Consume empties the cell and returns what it held.
func (i *Island) Consume(p Position) int {
	energy := i.Energy(p)
	i.SetEnergy(p, 0)
	return energy
}

// View returns the energy readings in a (2*horizon+1) square around p, row 0
// being the lowest row. Cells beyond the circular horizon read -1.
func (i *Island) View(p Position, horizon int) [][]int {
	view := make([][]int, 0, 2*horizon+1)
	for dy := -horizon; dy <= horizon; dy++ {
		row := make([]int, 0, 2*horizon+1)
		for dx := -horizon; dx <= horizon; dx++ {
			offset := Position{X: dx, Y: dy}
			if geom.Dist(Position{}, offset) > float64(horizon) {
				row = append(row, -1)
				continue
			}
			row = append(row, i.Energy(p.Add(offset)))
		}
		view = append(view, row)
	}
	return view
}

// Map copies the walkability bitmap.
func (i *Island) Map() [][]bool {
	out := make([][]bool, i.h)
	for y, row := range i.walkable {
		out[y] = append([]bool(nil), row...)
	}
	return out
}
