package communication

import (
	"context"
	"fmt"
)

// Actor is anything that picks commands for one player: a bot, a scripted
// replay, a remote process. Messages are raw JSON so the transport stays the
// actor's business. The engine never calls an actor again before its
// previous call has returned, even one it stopped waiting for.
type Actor interface {
	Name() string
	// Initialize receives the intro message once before the first round.
	Initialize(ctx context.Context, intro []byte) error
	// Turn receives the player's state and answers with a command.
	Turn(ctx context.Context, state []byte) ([]byte, error)
	// Result reports the outcome of the last command, nil on success.
	Result(err error)
}

// CommError is a message that breaks the protocol. The actor that sent it is
// dropped from the game.
type CommError struct {
	Err error
}

func (e *CommError) Error() string {
	return fmt.Sprintf("communication error: %v", e.Err)
}

func (e *CommError) Unwrap() error {
	return e.Err
}

func commErrorf(format string, args ...any) *CommError {
	return &CommError{Err: fmt.Errorf(format, args...)}
}
