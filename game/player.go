package game

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"lighthouses/geom"
	"lighthouses/utils"
)

// Player is a single worker moving over the island.
type Player struct {
	ID     PlayerID
	Symbol rune // map character the player spawned from
	Pos    Position
	Energy int
	Score  int
	keys   mapset.Set[Position]
}

func newPlayer(id PlayerID, symbol rune, pos Position) *Player {
	return &Player{
		ID:     id,
		Symbol: symbol,
		Pos:    pos,
		keys:   mapset.New[Position](),
	}
}

func (p *Player) HasKey(lh Position) bool {
	return p.keys.Has(lh)
}

// Keys lists the held keys ordered by position.
func (p *Player) Keys() []Position {
	keys := make([]Position, 0, p.keys.Size())
	p.keys.Each(func(k Position) {
		keys = append(keys, k)
	})
	slices.SortFunc(keys, geom.Compare)
	return keys
}

func (p *Player) String() string {
	return fmt.Sprintf("Player%d", p.ID)
}

// Player panics on an unknown id: ids come from the board itself.
func (b *Board) Player(pid PlayerID) *Player {
	if pid < 0 || int(pid) >= len(b.players) {
		panic(fmt.Sprintf("unknown player %d", pid))
	}
	return b.players[pid]
}

func (b *Board) Players() []*Player {
	return append([]*Player(nil), b.players...)
}

// Move steps the player by one of Deltas onto a walkable cell.
func (b *Board) Move(pid PlayerID, delta Position) error {
	player := b.Player(pid)
	if utils.Abs(delta.X) > 1 || utils.Abs(delta.Y) > 1 {
		return ErrBadDelta
	}
	target := player.Pos.Add(delta)
	if !b.island.Walkable(target) {
		return ErrNotWalkable
	}
	player.Pos = target
	return nil
}

// grantKeys hands every player standing on a lighthouse its key.
func (b *Board) grantKeys() {
	for _, player := range b.players {
		if _, ok := b.lighthouses[player.Pos]; ok {
			player.keys.Put(player.Pos)
		}
	}
}

// harvest splits each occupied cell's energy evenly between its occupants
// and empties the cell.
func (b *Board) harvest() {
	occupants := make(map[Position][]*Player)
	var cells []Position
	for _, player := range b.players {
		if _, ok := occupants[player.Pos]; !ok {
			cells = append(cells, player.Pos)
		}
		occupants[player.Pos] = append(occupants[player.Pos], player)
	}
	for _, cell := range cells {
		players := occupants[cell]
		share := b.island.Energy(cell) / len(players)
		for _, player := range players {
			player.Energy += share
		}
		b.island.Consume(cell)
	}
}
