package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"lighthouses/communication"
	"lighthouses/game"
)

// ErrTimeout replaces the command of an actor that did not answer in time.
var ErrTimeout = errors.New("actor did not answer in time")

// ErrDisconnected replaces the command of an actor that broke the protocol.
var ErrDisconnected = errors.New("actor is disconnected")

// Engine runs the round loop for one board. Actors are asked for commands in
// turn order and only the loop goroutine touches the board. An actor never
// has more than one call in flight: while a late call is still running, its
// turns pass without calling it again.
type Engine struct {
	board   *game.Board
	actors  []communication.Actor
	alive   []bool
	busy    []<-chan struct{} // closed when the actor's late call returns
	updates []Update

	rounds      int
	moveTimeout time.Duration
	initTimeout time.Duration
}

// New pairs each board player with the actor at the same index.
func New(board *game.Board, actors []communication.Actor, opts ...Option) (*Engine, error) {
	if len(actors) != board.NumPlayers() {
		return nil, fmt.Errorf("board seats %d players but %d actors were given", board.NumPlayers(), len(actors))
	}
	e := &Engine{
		board:  board,
		actors: actors,
		alive:  make([]bool, len(actors)),
		busy:   make([]<-chan struct{}, len(actors)),
	}
	for i := range e.alive {
		e.alive[i] = true
	}
	for _, opt := range append(defaults(), opts...) {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Board() *game.Board { return e.board }

// Updates lists every turn played so far.
func (e *Engine) Updates() []Update { return e.updates }

// Connected reports whether the player's actor is still in the game.
func (e *Engine) Connected(pid game.PlayerID) bool { return e.alive[pid] }

// Init sends every actor its intro. Actors that fail or time out are
// disconnected and pass for the rest of the game.
func (e *Engine) Init(ctx context.Context) error {
	for i, actor := range e.actors {
		pid := game.PlayerID(i)
		intro, err := communication.EncodeIntro(e.board.Intro(pid))
		if err != nil {
			return fmt.Errorf("failed to encode intro for player %d: %w", pid, err)
		}
		_, late, err := call(ctx, e.initTimeout, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, actor.Initialize(ctx, intro)
		})
		e.busy[pid] = late
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			e.disconnect(pid, err)
			continue
		}
		log.Info().Msgf("player %d is %s", pid, actor.Name())
	}
	return nil
}

// Run plays the configured number of rounds and returns the final scores.
func (e *Engine) Run(ctx context.Context) ([]int, error) {
	for range e.rounds {
		if err := e.Round(ctx); err != nil {
			return e.board.Scores(), err
		}
	}
	log.Info().Msgf("game over after %d rounds, scores %v", e.board.Round(), e.board.Scores())
	return e.board.Scores(), nil
}

// Round plays a single round. It only fails when ctx is cancelled, which
// leaves the round unfinished.
func (e *Engine) Round(ctx context.Context) error {
	e.board.PreRound()
	for e.board.Phase() == game.TurnPhase {
		pid := e.board.CurrentPlayer()
		cmd, reason := e.request(ctx, pid)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		played := cmd
		if reason != nil {
			played = game.Pass()
		}
		err := e.board.Play(played)
		if reason != nil {
			err = reason
		}
		if err != nil {
			log.Debug().Msgf("round %d: player %d: %v", e.board.Round(), pid, err)
		}
		if e.alive[pid] && e.busy[pid] == nil {
			e.actors[pid].Result(err)
		}

		e.updates = append(e.updates, Update{
			Round:   e.board.Round(),
			Player:  pid,
			Command: played,
			Err:     err,
			Hash:    e.board.Hash(),
		})
	}
	e.board.PostRound()
	log.Debug().Msgf("round %d scores %v", e.board.Round(), e.board.Scores())
	return nil
}

// request asks the player's actor for a command. A non-nil reason means the
// turn is played as a pass.
func (e *Engine) request(ctx context.Context, pid game.PlayerID) (game.Command, error) {
	if !e.alive[pid] {
		return game.Pass(), ErrDisconnected
	}
	if !e.settle(pid) {
		return game.Pass(), ErrTimeout
	}
	state, err := communication.EncodeState(e.board.Snapshot(pid))
	if err != nil {
		panic(fmt.Sprintf("failed to encode state for player %d: %v", pid, err))
	}

	actor := e.actors[pid]
	data, late, err := call(ctx, e.moveTimeout, func(ctx context.Context) ([]byte, error) {
		return actor.Turn(ctx, state)
	})
	e.busy[pid] = late
	switch {
	case ctx.Err() != nil:
		return game.Pass(), ctx.Err()
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn().Msgf("player %d (%s) timed out", pid, actor.Name())
		return game.Pass(), ErrTimeout
	case err != nil:
		e.disconnect(pid, &communication.CommError{Err: err})
		return game.Pass(), ErrDisconnected
	}

	cmd, err := communication.DecodeCommand(data)
	var commErr *communication.CommError
	if errors.As(err, &commErr) {
		e.disconnect(pid, commErr)
		return game.Pass(), ErrDisconnected
	}
	return cmd, err
}

// settle reports whether the actor is free to be called. A late call that
// has since returned gets its ErrTimeout result now.
func (e *Engine) settle(pid game.PlayerID) bool {
	if e.busy[pid] == nil {
		return true
	}
	select {
	case <-e.busy[pid]:
		e.busy[pid] = nil
		e.actors[pid].Result(ErrTimeout)
		return true
	default:
		return false
	}
}

// disconnect drops the actor. An actor still stuck in a late call is not
// told.
func (e *Engine) disconnect(pid game.PlayerID, cause error) {
	log.Warn().Msgf("player %d (%s) disconnected: %v", pid, e.actors[pid].Name(), cause)
	e.alive[pid] = false
	if e.busy[pid] == nil {
		e.actors[pid].Result(cause)
	}
}

// call runs f with a deadline. When the deadline wins, the engine stops
// waiting and late is closed once f finally returns; otherwise late is nil.
func call[T any](ctx context.Context, timeout time.Duration, f func(context.Context) (T, error)) (value T, late <-chan struct{}, err error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	returned := make(chan struct{})
	go func() {
		defer close(returned)
		v, err := f(ctx)
		done <- result{v, err}
	}()

	select {
	case r := <-done:
		return r.value, nil, r.err
	case <-ctx.Done():
		return value, returned, ctx.Err()
	}
}
