package game

import "fmt"

// MoveError is a well-formed command that the rules reject. The board is left
// untouched and the turn counts as a pass.
type MoveError struct {
	msg string
}

func (e *MoveError) Error() string {
	return e.msg
}

var (
	ErrInvalidCommand   = &MoveError{"invalid command"}
	ErrBadDelta         = &MoveError{"cannot move: delta must be one cell away"}
	ErrNotWalkable      = &MoveError{"cannot move: target position is not on the island"}
	ErrNotAtLighthouse  = &MoveError{"cannot attack: player must be located at the target lighthouse"}
	ErrNegativeStrength = &MoveError{"cannot attack: strength must be a non-negative integer"}

	ErrNotAtOrigin        = &MoveError{"cannot connect: player must be located at the origin lighthouse"}
	ErrUnknownDestination = &MoveError{"cannot connect: destination must be an existing lighthouse"}
	ErrNotOwned           = &MoveError{"cannot connect: both lighthouses must be player-owned"}
	ErrMissingKey         = &MoveError{"cannot connect: player does not have the destination key"}
	ErrSelfConnection     = &MoveError{"cannot connect: lighthouse cannot connect to itself"}
	ErrNoEnergy           = &MoveError{"cannot connect: both lighthouses must have energy"}
	ErrAlreadyConnected   = &MoveError{"cannot connect: connection already exists"}
	ErrLighthouseInPath   = &MoveError{"cannot connect: connection cannot pass through a lighthouse"}
	ErrCrossesConnection  = &MoveError{"cannot connect: connection cannot intersect another connection"}
)

// GameError is a broken static configuration. The game cannot start.
type GameError struct {
	msg string
}

func (e *GameError) Error() string {
	return e.msg
}

func gameErrorf(format string, args ...any) *GameError {
	return &GameError{msg: fmt.Sprintf(format, args...)}
}
