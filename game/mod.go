package game

import "lighthouses/geom"

// Position is a cell of the island grid.
type Position = geom.Point

// PlayerID indexes Board players in turn order.
type PlayerID int

// Neutral owns every lighthouse nobody has captured.
const Neutral PlayerID = -1

type StateHash uint64

// Deltas are the legal move offsets, including standing still.
var Deltas = []Position{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}
