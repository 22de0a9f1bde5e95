package engine

import (
	"time"

	"lighthouses/game"
	"lighthouses/meta"
)

// Update records one applied turn. Replaying the commands of a game's
// updates on a fresh board reproduces every hash.
type Update struct {
	Round   int
	Player  game.PlayerID
	Command game.Command
	Err     error // why the command was rejected or replaced by a pass
	Hash    game.StateHash
}

type Option func(*Engine)

// WithRounds sets how many rounds Run plays.
func WithRounds(rounds int) Option {
	return func(e *Engine) {
		e.rounds = rounds
	}
}

// WithMoveTimeout bounds each actor turn; a late actor passes.
func WithMoveTimeout(timeout time.Duration) Option {
	return func(e *Engine) {
		e.moveTimeout = timeout
	}
}

// WithInitTimeout bounds the intro handshake; a late actor is disconnected.
func WithInitTimeout(timeout time.Duration) Option {
	return func(e *Engine) {
		e.initTimeout = timeout
	}
}

func defaults() []Option {
	return []Option{
		WithRounds(meta.ROUNDS),
		WithMoveTimeout(meta.MOVE_TIMEOUT_MS * time.Millisecond),
		WithInitTimeout(meta.INIT_TIMEOUT_MS * time.Millisecond),
	}
}
