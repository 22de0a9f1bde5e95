package game

import "fmt"

// Command is one player's action for a turn. Only the fields of its Action
// are meaningful.
type Command struct {
	Action      ActionType
	Delta       Position // MoveAction
	Energy      int      // AttackAction
	Destination Position // ConnectAction
}

func Pass() Command                   { return Command{Action: PassAction} }
func MoveBy(dx, dy int) Command       { return Command{Action: MoveAction, Delta: Position{X: dx, Y: dy}} }
func AttackWith(energy int) Command   { return Command{Action: AttackAction, Energy: energy} }
func ConnectTo(dest Position) Command { return Command{Action: ConnectAction, Destination: dest} }

func (c Command) String() string {
	switch c.Action {
	case MoveAction:
		return fmt.Sprintf("move %v", c.Delta)
	case AttackAction:
		return fmt.Sprintf("attack %d", c.Energy)
	case ConnectAction:
		return fmt.Sprintf("connect %v", c.Destination)
	}
	return c.Action.String()
}

// Apply executes a command for a player regardless of whose turn it is.
func (b *Board) Apply(pid PlayerID, cmd Command) error {
	switch cmd.Action {
	case PassAction:
		return nil
	case MoveAction:
		return b.Move(pid, cmd.Delta)
	case AttackAction:
		return b.Attack(pid, cmd.Energy)
	case ConnectAction:
		return b.Connect(pid, cmd.Destination)
	}
	return ErrInvalidCommand
}
