package game

// LighthouseView is what a player sees of one lighthouse.
type LighthouseView struct {
	Pos         Position
	Owner       PlayerID
	Energy      int
	Connections []Position
	HaveKey     bool
}

// Snapshot is the read-only state handed to a player before its turn.
type Snapshot struct {
	Player      PlayerID
	Pos         Position
	Score       int
	Energy      int
	View        [][]int
	Lighthouses []LighthouseView
}

// Intro is sent once when a player joins.
type Intro struct {
	Player      PlayerID
	PlayerCount int
	Pos         Position
	Map         [][]bool
	Lighthouses []Position
}

func (b *Board) Snapshot(pid PlayerID) Snapshot {
	player := b.Player(pid)
	views := make([]LighthouseView, 0, len(b.order))
	for _, lh := range b.Lighthouses() {
		views = append(views, LighthouseView{
			Pos:         lh.Pos,
			Owner:       lh.Owner,
			Energy:      lh.Energy,
			Connections: b.graph.Neighbors(lh.Pos),
			HaveKey:     player.HasKey(lh.Pos),
		})
	}
	return Snapshot{
		Player:      pid,
		Pos:         player.Pos,
		Score:       player.Score,
		Energy:      player.Energy,
		View:        b.island.View(player.Pos, b.rules.Horizon),
		Lighthouses: views,
	}
}

func (b *Board) Intro(pid PlayerID) Intro {
	player := b.Player(pid)
	return Intro{
		Player:      pid,
		PlayerCount: len(b.players),
		Pos:         player.Pos,
		Map:         b.island.Map(),
		Lighthouses: append([]Position(nil), b.order...),
	}
}
