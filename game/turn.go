package game

import "fmt"

// PreRound opens a round: lighthouses charge the island, players standing on
// lighthouses pick up keys and harvest their cell, then every lighthouse pays
// its upkeep.
func (b *Board) PreRound() {
	b.expect(PreRoundPhase)

	for _, p := range b.order {
		b.island.Inject(p, b.rules.InfluenceRadius, b.rules.HalfRate)
	}
	b.grantKeys()
	b.harvest()
	for _, p := range b.order {
		b.DecayLighthouse(p, b.rules.upkeep())
	}

	b.turn = 0
	b.phase = TurnPhase
	if len(b.players) == 0 {
		b.phase = PostRoundPhase
	}
}

// CurrentPlayer is the player whose command Play applies next.
func (b *Board) CurrentPlayer() PlayerID {
	b.expect(TurnPhase)
	return b.players[b.turn].ID
}

// Play applies cmd for the current player and hands the turn on. A rejected
// command changes nothing but still uses up the turn.
func (b *Board) Play(cmd Command) error {
	b.expect(TurnPhase)
	err := b.Apply(b.players[b.turn].ID, cmd)
	b.advance()
	return err
}

func (b *Board) advance() {
	b.turn++
	if b.turn == len(b.players) {
		b.phase = PostRoundPhase
	}
}

// PostRound scores the round. Links and triangles always have a single owner
// across their lighthouses, so each is credited through its lowest position.
func (b *Board) PostRound() {
	b.expect(PostRoundPhase)

	for _, p := range b.order {
		if lh := b.lighthouses[p]; !lh.IsNeutral() {
			b.players[lh.Owner].Score += b.rules.ScoreLighthouse
		}
	}
	for _, l := range b.graph.Links() {
		b.players[b.lighthouses[l.A].Owner].Score += b.rules.ScoreConnection
	}
	for _, t := range b.graph.Triangles() {
		b.players[b.lighthouses[t[0]].Owner].Score += len(b.graph.Cells(t)) * b.rules.ScoreCell
	}

	b.round++
	b.phase = PreRoundPhase
}

// Scores lists every player's score in turn order.
func (b *Board) Scores() []int {
	scores := make([]int, len(b.players))
	for i, player := range b.players {
		scores[i] = player.Score
	}
	return scores
}

func (b *Board) expect(phase Phase) {
	if b.phase != phase {
		panic(fmt.Sprintf("board is in %v phase, not %v", b.phase, phase))
	}
}
