package communication

import (
	"lighthouses/game"
	"lighthouses/meta"
)

const Version = meta.PROTOCOL_VERSION

type IntroMessage struct {
	Version     int             `json:"version"`
	PlayerNum   int             `json:"player_num"`
	PlayerCount int             `json:"player_count"`
	Position    game.Position   `json:"position"`
	Map         [][]int         `json:"map"` // [y][x], 1 = island
	Lighthouses []game.Position `json:"lighthouses"`
}

type LighthouseMessage struct {
	Position    game.Position   `json:"position"`
	Owner       *int            `json:"owner"` // null when neutral
	Energy      int             `json:"energy"`
	Connections []game.Position `json:"connections"`
	HaveKey     bool            `json:"have_key"`
}

type StateMessage struct {
	Version     int                 `json:"version"`
	Position    game.Position       `json:"position"`
	Score       int                 `json:"score"`
	Energy      int                 `json:"energy"`
	View        [][]int             `json:"view"` // [dy][dx] around position, -1 beyond the horizon
	Lighthouses []LighthouseMessage `json:"lighthouses"`
}

type CommandMessage struct {
	Command     string         `json:"command"`
	X           *int           `json:"x,omitempty"`
	Y           *int           `json:"y,omitempty"`
	Energy      *int           `json:"energy,omitempty"`
	Destination *game.Position `json:"destination,omitempty"`
}

func NewIntroMessage(intro game.Intro) IntroMessage {
	rows := make([][]int, len(intro.Map))
	for y, row := range intro.Map {
		rows[y] = make([]int, len(row))
		for x, walkable := range row {
			if walkable {
				rows[y][x] = 1
			}
		}
	}
	return IntroMessage{
		Version:     Version,
		PlayerNum:   int(intro.Player),
		PlayerCount: intro.PlayerCount,
		Position:    intro.Pos,
		Map:         rows,
		Lighthouses: nonNil(intro.Lighthouses),
	}
}

func NewStateMessage(s game.Snapshot) StateMessage {
	lighthouses := make([]LighthouseMessage, len(s.Lighthouses))
	for i, lh := range s.Lighthouses {
		var owner *int
		if lh.Owner != game.Neutral {
			o := int(lh.Owner)
			owner = &o
		}
		lighthouses[i] = LighthouseMessage{
			Position:    lh.Pos,
			Owner:       owner,
			Energy:      lh.Energy,
			Connections: nonNil(lh.Connections),
			HaveKey:     lh.HaveKey,
		}
	}
	return StateMessage{
		Version:     Version,
		Position:    s.Pos,
		Score:       s.Score,
		Energy:      s.Energy,
		View:        s.View,
		Lighthouses: lighthouses,
	}
}

// NewCommandMessage sets only the fields of cmd's action.
func NewCommandMessage(cmd game.Command) CommandMessage {
	msg := CommandMessage{Command: cmd.Action.String()}
	switch cmd.Action {
	case game.MoveAction:
		x, y := cmd.Delta.X, cmd.Delta.Y
		msg.X, msg.Y = &x, &y
	case game.AttackAction:
		e := cmd.Energy
		msg.Energy = &e
	case game.ConnectAction:
		d := cmd.Destination
		msg.Destination = &d
	}
	return msg
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil(ps []game.Position) []game.Position {
	if ps == nil {
		return []game.Position{}
	}
	return ps
}
