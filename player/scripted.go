package player

import (
	"context"
	"fmt"

	"lighthouses/communication"
	"lighthouses/game"
)

var passCommand = []byte(`{"command": "pass"}`)

// Scripted replays a fixed list of raw commands, then passes forever. It
// records what the engine sent back so tests can inspect the exchange.
type Scripted struct {
	name     string
	commands [][]byte
	next     int

	Intro   []byte
	States  [][]byte
	Results []error
}

func NewScripted(name string, commands ...string) *Scripted {
	s := &Scripted{name: name}
	for _, c := range commands {
		s.commands = append(s.commands, []byte(c))
	}
	return s
}

// FromCommands scripts an actor from typed commands.
func FromCommands(name string, cmds ...game.Command) (*Scripted, error) {
	s := &Scripted{name: name}
	for _, cmd := range cmds {
		data, err := communication.EncodeCommand(cmd)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %v: %w", cmd, err)
		}
		s.commands = append(s.commands, data)
	}
	return s, nil
}

func (s *Scripted) Name() string {
	return s.name
}

func (s *Scripted) Initialize(ctx context.Context, intro []byte) error {
	s.Intro = intro
	return nil
}

func (s *Scripted) Turn(ctx context.Context, state []byte) ([]byte, error) {
	s.States = append(s.States, state)
	if s.next >= len(s.commands) {
		return passCommand, nil
	}
	cmd := s.commands[s.next]
	s.next++
	return cmd, nil
}

func (s *Scripted) Result(err error) {
	s.Results = append(s.Results, err)
}

// Remaining is the number of scripted commands not yet played.
func (s *Scripted) Remaining() int {
	return len(s.commands) - s.next
}
