package game

// ActionType represents the kind of command a player issues on their turn.
type ActionType int

const (
	PassAction ActionType = iota
	MoveAction
	AttackAction
	ConnectAction
)

var actionNames = map[ActionType]string{
	PassAction:    "pass",
	MoveAction:    "move",
	AttackAction:  "attack",
	ConnectAction: "connect",
}

func (a ActionType) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps a wire command name to its ActionType.
func ParseAction(name string) (ActionType, bool) {
	for action, n := range actionNames {
		if n == name {
			return action, true
		}
	}
	return 0, false
}
