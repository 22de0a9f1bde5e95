package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// openMap is a w x h map with a water border and the given lighthouses and
// spawns (spawn i gets symbol '0'+i).
func openMap(w, h int, lighthouses []Position, spawns ...Position) *Map {
	m := &Map{Lighthouses: lighthouses}
	for y := 0; y < h; y++ {
		row := make([]bool, w)
		for x := 0; x < w; x++ {
			row[x] = x > 0 && y > 0 && x < w-1 && y < h-1
		}
		m.Island = append(m.Island, row)
	}
	for i, p := range spawns {
		m.Spawns = append(m.Spawns, Spawn{Symbol: rune('0' + i), Pos: p})
	}
	return m
}

func newBoard(t *testing.T, m *Map) *Board {
	t.Helper()
	b, err := NewBoard(m, DefaultRules(), 0)
	require.NoError(t, err)
	return b
}

// own hands lighthouses to a player with the given energy and the keys for
// each of them.
func own(b *Board, pid PlayerID, energy int, positions ...Position) {
	for _, p := range positions {
		lh := b.lighthouses[p]
		lh.Owner = pid
		lh.Energy = energy
		b.players[pid].keys.Put(p)
	}
}

// place teleports a player, bypassing movement rules.
func place(b *Board, pid PlayerID, p Position) {
	b.players[pid].Pos = p
}

func pos(x, y int) Position {
	return Position{X: x, Y: y}
}
