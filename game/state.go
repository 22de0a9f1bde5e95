package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"slices"

	"lighthouses/geom"
)

type Phase int

const (
	PreRoundPhase Phase = iota
	TurnPhase
	PostRoundPhase
)

func (p Phase) String() string {
	switch p {
	case PreRoundPhase:
		return "pre-round"
	case TurnPhase:
		return "turn"
	case PostRoundPhase:
		return "post-round"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Board owns the whole game state. Sibling collections are looked up by
// position; nothing holds a pointer back to the board.
type Board struct {
	rules       Rules
	island      *Island
	lighthouses map[Position]*Lighthouse
	order       []Position // lighthouse positions, ascending
	graph       *Graph
	players     []*Player // indexed by PlayerID, also the turn order
	phase       Phase
	turn        int // index into players during TurnPhase
	round       int
}

// NewBoard sets up a game for the first numPlayers spawns of m, or for all of
// them when numPlayers is 0.
func NewBoard(m *Map, rules Rules, numPlayers int) (*Board, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if numPlayers <= 0 {
		numPlayers = len(m.Spawns)
	}
	if numPlayers > len(m.Spawns) {
		return nil, gameErrorf("map has %d spawns, cannot seat %d players", len(m.Spawns), numPlayers)
	}

	b := &Board{
		rules:       rules,
		island:      NewIsland(m.Island, rules.MaxEnergy),
		lighthouses: make(map[Position]*Lighthouse, len(m.Lighthouses)),
		graph:       NewGraph(),
	}
	for _, p := range m.Lighthouses {
		if !b.island.Walkable(p) {
			return nil, gameErrorf("lighthouse %v is not on the island", p)
		}
		if _, dup := b.lighthouses[p]; dup {
			return nil, gameErrorf("duplicate lighthouse at %v", p)
		}
		b.lighthouses[p] = &Lighthouse{Pos: p, Owner: Neutral}
		b.order = append(b.order, p)
	}
	slices.SortFunc(b.order, geom.Compare)

	for i, spawn := range m.Spawns[:numPlayers] {
		if !b.island.Walkable(spawn.Pos) {
			return nil, gameErrorf("player %q spawns off the island at %v", spawn.Symbol, spawn.Pos)
		}
		b.players = append(b.players, newPlayer(PlayerID(i), spawn.Symbol, spawn.Pos))
	}
	return b, nil
}

func (b *Board) Rules() Rules    { return b.rules }
func (b *Board) Island() *Island { return b.island }
func (b *Board) Phase() Phase    { return b.phase }
func (b *Board) Round() int      { return b.round }
func (b *Board) NumPlayers() int { return len(b.players) }

// Hash fingerprints everything a replay must reproduce.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()
	write := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}

	write(b.round)
	write(int(b.phase))
	write(b.turn)

	for _, player := range b.players {
		write(player.Pos.X)
		write(player.Pos.Y)
		write(player.Energy)
		write(player.Score)
		for _, k := range player.Keys() {
			write(k.X)
			write(k.Y)
		}
	}

	for _, lh := range b.Lighthouses() {
		write(int(lh.Owner))
		write(lh.Energy)
	}

	for _, l := range b.graph.Links() {
		write(l.A.X)
		write(l.A.Y)
		write(l.B.X)
		write(l.B.Y)
	}

	for y := 0; y < b.island.Height(); y++ {
		for x := 0; x < b.island.Width(); x++ {
			write(b.island.Energy(Position{X: x, Y: y}))
		}
	}

	return StateHash(hasher.Sum64())
}

// CheckInvariants verifies the structural rules that must hold between any
// two commands.
func (b *Board) CheckInvariants() error {
	links := b.graph.Links()
	for _, l := range links {
		a, c := b.lighthouses[l.A], b.lighthouses[l.B]
		if a == nil || c == nil {
			return fmt.Errorf("connection %v references a missing lighthouse", l)
		}
		if a.IsNeutral() || a.Owner != c.Owner {
			return fmt.Errorf("connection %v endpoints are not owned by one player", l)
		}
		if a.Energy <= 0 || c.Energy <= 0 {
			return fmt.Errorf("connection %v has an endpoint without energy", l)
		}
		for _, p := range b.order {
			if geom.Between(l.A, l.B, p) {
				return fmt.Errorf("connection %v passes through lighthouse %v", l, p)
			}
		}
	}
	for i, l := range links {
		for _, m := range links[i+1:] {
			if geom.Intersect(l.A, l.B, m.A, m.B) {
				return fmt.Errorf("connections %v and %v intersect", l, m)
			}
		}
	}

	for _, t := range b.graph.Triangles() {
		if !b.graph.Has(t[0], t[1]) || !b.graph.Has(t[1], t[2]) || !b.graph.Has(t[0], t[2]) {
			return fmt.Errorf("triangle %v is missing an edge", t)
		}
	}
	for i, l := range links {
		for _, m := range links[i+1:] {
			if l.A != m.A {
				continue
			}
			if !b.graph.Has(l.B, m.B) {
				continue
			}
			if _, ok := b.graph.tris[NewTriangle(l.A, l.B, m.B)]; !ok {
				return fmt.Errorf("links %v and %v close an unregistered triangle", l, m)
			}
		}
	}

	for y := 0; y < b.island.Height(); y++ {
		for x := 0; x < b.island.Width(); x++ {
			if e := b.island.Energy(Position{X: x, Y: y}); e < 0 || e > b.rules.MaxEnergy {
				return fmt.Errorf("cell (%d,%d) has energy %d out of range", x, y, e)
			}
		}
	}

	for _, player := range b.players {
		if !b.island.Walkable(player.Pos) {
			return fmt.Errorf("%v stands off the island at %v", player, player.Pos)
		}
		for _, k := range player.Keys() {
			if _, ok := b.lighthouses[k]; !ok {
				return fmt.Errorf("%v holds a key for missing lighthouse %v", player, k)
			}
		}
		if player.Energy < 0 || player.Score < 0 {
			return fmt.Errorf("%v has negative energy or score", player)
		}
	}
	return nil
}
