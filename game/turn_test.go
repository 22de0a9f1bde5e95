package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"lighthouses/geom"
)

func TestPhases(t *testing.T) {
	b := newBoard(t, openMap(8, 8, []Position{pos(2, 2)}, pos(1, 1), pos(6, 6)))

	require.Equal(t, PreRoundPhase, b.Phase())
	require.Panics(t, func() { b.Play(Pass()) }, "Turns cannot be played before the round opens")
	require.Panics(t, func() { b.PostRound() })
	require.Panics(t, func() { b.CurrentPlayer() })

	b.PreRound()
	require.Equal(t, TurnPhase, b.Phase())
	require.Panics(t, func() { b.PreRound() })
	require.Equal(t, PlayerID(0), b.CurrentPlayer())

	require.NoError(t, b.Play(Pass()))
	require.Equal(t, PlayerID(1), b.CurrentPlayer())
	require.NoError(t, b.Play(MoveBy(-1, 0)))
	require.Equal(t, PostRoundPhase, b.Phase())
	require.Panics(t, func() { b.Play(Pass()) })

	b.PostRound()
	require.Equal(t, PreRoundPhase, b.Phase())
	require.Equal(t, 1, b.Round())
	require.Equal(t, pos(5, 6), b.Player(1).Pos)
}

func TestRejectedCommandUsesTheTurn(t *testing.T) {
	b := newBoard(t, openMap(8, 8, nil, pos(1, 1), pos(6, 6)))
	b.PreRound()

	require.ErrorIs(t, b.Play(MoveBy(2, 0)), ErrBadDelta)
	require.Equal(t, pos(1, 1), b.Player(0).Pos)
	require.Equal(t, PlayerID(1), b.CurrentPlayer(), "A rejected command should count as a pass")

	require.ErrorIs(t, b.Play(MoveBy(1, 1)), ErrNotWalkable, "The border is water")
	require.Equal(t, PostRoundPhase, b.Phase())
}

func TestMove(t *testing.T) {
	b := newBoard(t, openMap(5, 5, nil, pos(2, 2)))
	for _, d := range Deltas {
		place(b, 0, pos(2, 2))
		require.NoError(t, b.Move(0, d), "delta %v", d)
		require.Equal(t, pos(2, 2).Add(d), b.Player(0).Pos)
	}
	require.ErrorIs(t, b.Move(0, pos(0, -2)), ErrBadDelta)
}

func TestPreRound(t *testing.T) {
	t.Run("players on a lighthouse pick up its key", func(t *testing.T) {
		b := newBoard(t, openMap(12, 12, []Position{pos(2, 2), pos(9, 9)}, pos(2, 2), pos(5, 5)))
		b.PreRound()

		require.Equal(t, []Position{pos(2, 2)}, b.Player(0).Keys())
		require.Empty(t, b.Player(1).Keys())
	})

	t.Run("harvest is split between co-located players", func(t *testing.T) {
		b := newBoard(t, openMap(8, 8, nil, pos(3, 3), pos(3, 3), pos(5, 5)))
		b.Island().SetEnergy(pos(3, 3), 9)
		b.Island().SetEnergy(pos(5, 5), 7)
		b.Island().SetEnergy(pos(4, 4), 3)

		b.PreRound()

		require.Equal(t, 4, b.Player(0).Energy)
		require.Equal(t, 4, b.Player(1).Energy)
		require.Equal(t, 7, b.Player(2).Energy)
		require.Zero(t, b.Island().Energy(pos(3, 3)), "Harvested cells are emptied")
		require.Zero(t, b.Island().Energy(pos(5, 5)))
		require.Equal(t, 3, b.Island().Energy(pos(4, 4)), "Unoccupied cells keep their energy")
	})

	t.Run("player on a lighthouse harvests its charge", func(t *testing.T) {
		b := newBoard(t, openMap(14, 14, []Position{pos(3, 3)}, pos(3, 3)))
		b.PreRound()
		require.Equal(t, 5, b.Player(0).Energy)
	})

	t.Run("lighthouses pay upkeep", func(t *testing.T) {
		m := openMap(14, 14, []Position{pos(3, 3), pos(10, 10)}, pos(6, 6))

		b := newBoard(t, m)
		own(b, 0, 25, pos(3, 3), pos(10, 10))
		b.graph.Add(pos(3, 3), pos(10, 10))
		b.Lighthouse(pos(10, 10)).Energy = 8
		b.PreRound()
		require.Equal(t, 15, b.Lighthouse(pos(3, 3)).Energy)
		require.True(t, b.Lighthouse(pos(10, 10)).IsNeutral(), "Upkeep can neutralize a lighthouse")
		require.Zero(t, b.Graph().Len())

		rules := DefaultRules()
		rules.HalfRate = true
		b, err := NewBoard(m, rules, 0)
		require.NoError(t, err)
		own(b, 0, 25, pos(3, 3))
		b.PreRound()
		require.Equal(t, 20, b.Lighthouse(pos(3, 3)).Energy)
	})
}

func TestPostRound(t *testing.T) {
	b := newBoard(t, openMap(12, 12, []Position{pos(2, 2), pos(8, 2), pos(5, 8), pos(9, 9)}, pos(1, 1), pos(10, 10)))
	own(b, 0, 50, pos(2, 2), pos(8, 2), pos(5, 8))
	own(b, 1, 50, pos(9, 9))
	b.graph.Add(pos(2, 2), pos(8, 2))
	b.graph.Add(pos(8, 2), pos(5, 8))
	b.graph.Add(pos(2, 2), pos(5, 8))
	tri := NewTriangle(pos(2, 2), pos(8, 2), pos(5, 8))
	cells := geom.Cells(tri[0], tri[1], tri[2])
	b.graph.AddTriangle(tri, cells)
	require.NoError(t, b.CheckInvariants())

	b.phase = PostRoundPhase
	b.PostRound()
	require.Equal(t, []int{3*2 + 3*2 + len(cells), 2}, b.Scores())

	b.phase = PostRoundPhase
	b.PostRound()
	require.Equal(t, []int{2 * (12 + len(cells)), 4}, b.Scores(), "Scores accumulate every round")
}

// randomCommand favors commands that can change the board.
func randomCommand(r *rand.Rand, b *Board) Command {
	switch r.Intn(6) {
	case 0:
		return Pass()
	case 1, 2:
		d := Deltas[r.Intn(len(Deltas))]
		return MoveBy(d.X, d.Y)
	case 3:
		return AttackWith(r.Intn(80) - 5)
	default:
		lhs := b.Lighthouses()
		return ConnectTo(lhs[r.Intn(len(lhs))].Pos)
	}
}

func playRandomGame(t *testing.T, seed uint64, rounds int) []StateHash {
	m := openMap(12, 12, []Position{
		pos(2, 2), pos(5, 3), pos(9, 2), pos(3, 8), pos(8, 8), pos(6, 6),
	}, pos(2, 2), pos(9, 2), pos(8, 8))
	b := newBoard(t, m)
	r := rand.New(rand.NewSource(seed))

	var hashes []StateHash
	for range rounds {
		b.PreRound()
		require.NoError(t, b.CheckInvariants(), "after pre-round %d", b.Round())
		for b.Phase() == TurnPhase {
			pid := b.CurrentPlayer()
			cmd := randomCommand(r, b)
			b.Play(cmd)
			require.NoError(t, b.CheckInvariants(), "round %d, player %d played %v", b.Round(), pid, cmd)
			hashes = append(hashes, b.Hash())
		}
		b.PostRound()
	}
	return hashes
}

func TestRandomGamesKeepInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		playRandomGame(t, seed, 300)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	first := playRandomGame(t, 42, 100)
	second := playRandomGame(t, 42, 100)
	require.Equal(t, first, second)
	require.NotEqual(t, first[0], first[len(first)-1])
}
