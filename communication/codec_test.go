package communication

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"lighthouses/game"
)

func TestDecodeCommand(t *testing.T) {
	valid := []struct {
		input    string
		expected game.Command
	}{
		{`{"command": "pass"}`, game.Pass()},
		{`{"command": "pass", "x": "ignored"}`, game.Pass()},
		{`{"command": "move", "x": -1, "y": 1}`, game.MoveBy(-1, 1)},
		{`{"command": "move", "x": 0, "y": 0}`, game.MoveBy(0, 0)},
		{`{"command": "move", "x": 3, "y": 0}`, game.MoveBy(3, 0)},
		{`{"command": "attack", "energy": 40}`, game.AttackWith(40)},
		{`{"command": "attack", "energy": -2}`, game.AttackWith(-2)},
		{`{"command": "connect", "destination": [4, 7]}`, game.ConnectTo(game.Position{X: 4, Y: 7})},
		{`{"command": "pass", "energy": {"nested": true}, "destination": "here"}`, game.Pass()},
		{`{"command": "move", "x": 1, "y": 0, "energy": "n/a"}`, game.MoveBy(1, 0)},
		{`{"command": "move", "x": 0, "y": -1, "destination": 5}`, game.MoveBy(0, -1)},
		{`{"command": "attack", "energy": 7, "x": "left", "destination": null}`, game.AttackWith(7)},
		{`{"command": "connect", "destination": [2, 3], "x": [], "energy": "all"}`, game.ConnectTo(game.Position{X: 2, Y: 3})},
	}
	for _, tc := range valid {
		t.Run(tc.input, func(t *testing.T) {
			cmd, err := DecodeCommand([]byte(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.expected, cmd)
		})
	}

	t.Run("protocol violations", func(t *testing.T) {
		for _, input := range []string{
			``,
			`not json`,
			`[1, 2]`,
			`"pass"`,
			`{}`,
			`{"x": 1, "y": 0}`,
			`{"command": 3}`,
			`{"command": null}`,
			`{"command": "pass"} {"command": "pass"}`,
		} {
			_, err := DecodeCommand([]byte(input))
			var commErr *CommError
			require.ErrorAs(t, err, &commErr, "input %q", input)
			var moveErr *game.MoveError
			require.False(t, errors.As(err, &moveErr), "input %q should not be a move error", input)
		}
	})

	t.Run("invalid commands", func(t *testing.T) {
		for _, input := range []string{
			`{"command": "fly"}`,
			`{"command": "move"}`,
			`{"command": "move", "x": 1}`,
			`{"command": "move", "x": "1", "y": 0}`,
			`{"command": "attack"}`,
			`{"command": "attack", "energy": 2.5}`,
			`{"command": "attack", "energy": "all"}`,
			`{"command": "attack", "energy": 99999999999999999999}`,
			`{"command": "connect"}`,
			`{"command": "connect", "destination": [1]}`,
			`{"command": "connect", "destination": [1, 2, 3]}`,
			`{"command": "connect", "destination": {"x": 1, "y": 2}}`,
		} {
			_, err := DecodeCommand([]byte(input))
			require.ErrorIs(t, err, game.ErrInvalidCommand, "input %q", input)
			var commErr *CommError
			require.False(t, errors.As(err, &commErr), "input %q should not break the protocol", input)
		}
	})
}

func TestEncodeCommand(t *testing.T) {
	for _, cmd := range []game.Command{
		game.Pass(),
		game.MoveBy(1, -1),
		game.AttackWith(0),
		game.ConnectTo(game.Position{X: 2, Y: 9}),
	} {
		data, err := EncodeCommand(cmd)
		require.NoError(t, err)
		decoded, err := DecodeCommand(data)
		require.NoError(t, err)
		require.Equal(t, cmd, decoded, "%s should survive the wire", data)
	}

	data, err := EncodeCommand(game.MoveBy(0, 1))
	require.NoError(t, err)
	require.JSONEq(t, `{"command": "move", "x": 0, "y": 1}`, string(data))
}

func TestEncodeState(t *testing.T) {
	snapshot := game.Snapshot{
		Player: 1,
		Pos:    game.Position{X: 3, Y: 2},
		Score:  12,
		Energy: 40,
		View:   [][]int{{-1, 3, -1}, {2, 0, 5}, {-1, 1, -1}},
		Lighthouses: []game.LighthouseView{
			{Pos: game.Position{X: 1, Y: 1}, Owner: 1, Energy: 30, Connections: []game.Position{{X: 5, Y: 5}}, HaveKey: true},
			{Pos: game.Position{X: 5, Y: 5}, Owner: 1, Energy: 10, Connections: []game.Position{{X: 1, Y: 1}}},
			{Pos: game.Position{X: 7, Y: 2}, Owner: game.Neutral},
		},
	}

	data, err := EncodeState(snapshot)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"version": 1,
		"position": [3, 2],
		"score": 12,
		"energy": 40,
		"view": [[-1, 3, -1], [2, 0, 5], [-1, 1, -1]],
		"lighthouses": [
			{"position": [1, 1], "owner": 1, "energy": 30, "connections": [[5, 5]], "have_key": true},
			{"position": [5, 5], "owner": 1, "energy": 10, "connections": [[1, 1]], "have_key": false},
			{"position": [7, 2], "owner": null, "energy": 0, "connections": [], "have_key": false}
		]
	}`, string(data))
}

func TestEncodeIntro(t *testing.T) {
	m, err := game.LoadMap("../game/testdata/island.txt")
	require.NoError(t, err)
	b, err := game.NewBoard(m, game.DefaultRules(), 0)
	require.NoError(t, err)

	data, err := EncodeIntro(b.Intro(0))
	require.NoError(t, err)

	var msg IntroMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	require.Equal(t, Version, msg.Version)
	require.Equal(t, 0, msg.PlayerNum)
	require.Equal(t, 2, msg.PlayerCount)
	require.Equal(t, game.Position{X: 1, Y: 3}, msg.Position)
	require.Equal(t, []int{0, 1, 1, 1, 1, 1, 1, 1, 0}, msg.Map[3], "Rows are indexed by y")
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 0}, msg.Map[0])
	require.Len(t, msg.Lighthouses, 4)
}

func TestCommError(t *testing.T) {
	cause := errors.New("boom")
	err := error(&CommError{Err: cause})
	require.ErrorIs(t, err, cause)
	require.Equal(t, "communication error: boom", err.Error())
}
