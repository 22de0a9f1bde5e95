package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Lighthouse is created at load time and lives for the whole game; only its
// owner and energy change.
type Lighthouse struct {
	Pos    Position
	Owner  PlayerID
	Energy int
}

func (lh *Lighthouse) IsNeutral() bool { return lh.Owner == Neutral }

// Lighthouse returns nil when no lighthouse stands at p.
func (b *Board) Lighthouse(p Position) *Lighthouse {
	return b.lighthouses[p]
}

// Lighthouses lists every lighthouse ordered by position.
func (b *Board) Lighthouses() []*Lighthouse {
	out := make([]*Lighthouse, len(b.order))
	for i, p := range b.order {
		out[i] = b.lighthouses[p]
	}
	return out
}

// Attack spends up to strength of the player's energy on the lighthouse they
// stand on. Enemy energy is worn down first; whatever is left over claims the
// lighthouse for the attacker.
func (b *Board) Attack(pid PlayerID, strength int) error {
	player := b.Player(pid)
	lh, ok := b.lighthouses[player.Pos]
	if !ok {
		return ErrNotAtLighthouse
	}
	if strength < 0 {
		return ErrNegativeStrength
	}

	strength = min(strength, player.Energy)
	player.Energy -= strength
	if !lh.IsNeutral() && lh.Owner != pid {
		d := min(lh.Energy, strength)
		b.DecayLighthouse(lh.Pos, d)
		strength -= d
	}
	if strength > 0 {
		lh.Owner = pid
		lh.Energy += strength
	}
	return nil
}

// DecayLighthouse drains a lighthouse. Reaching zero neutralizes it and tears
// down every connection and triangle touching it in the same call.
func (b *Board) DecayLighthouse(p Position, amount int) {
	lh, ok := b.lighthouses[p]
	if !ok {
		panic(fmt.Sprintf("decay of unknown lighthouse %v", p))
	}
	lh.Energy -= amount
	if lh.Energy > 0 {
		return
	}
	lh.Energy = 0
	if !lh.IsNeutral() {
		log.Debug().Msgf("lighthouse %v lost by player %d", p, lh.Owner)
	}
	lh.Owner = Neutral
	if links, tris := b.graph.CloseAt(p); links > 0 {
		log.Debug().Msgf("lighthouse %v dropped %d connections and %d triangles", p, links, tris)
	}
}
