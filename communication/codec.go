package communication

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"lighthouses/game"
)

// envelopeSchema is the part of a command every actor must get right. A
// message that fails it is a protocol violation.
var envelopeSchema = jsonschema.MustCompileString("command.json", `{
	"type": "object",
	"required": ["command"],
	"properties": {"command": {"type": "string"}}
}`)

// commandSchemas check the arguments of each command. A failure here is a
// bad move, not a broken actor.
var commandSchemas = map[game.ActionType]*jsonschema.Schema{
	game.MoveAction: jsonschema.MustCompileString("move.json", `{
		"required": ["x", "y"],
		"properties": {
			"x": {"type": "integer"},
			"y": {"type": "integer"}
		}
	}`),
	game.AttackAction: jsonschema.MustCompileString("attack.json", `{
		"required": ["energy"],
		"properties": {"energy": {"type": "integer"}}
	}`),
	game.ConnectAction: jsonschema.MustCompileString("connect.json", `{
		"required": ["destination"],
		"properties": {
			"destination": {
				"type": "array",
				"items": {"type": "integer"},
				"minItems": 2,
				"maxItems": 2
			}
		}
	}`),
}

// DecodeCommand parses an actor's answer. Protocol violations come back as
// *CommError, well-formed but unusable commands as a *game.MoveError
// wrapping game.ErrInvalidCommand.
func DecodeCommand(data []byte) (game.Command, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return game.Command{}, commErrorf("invalid json: %w", err)
	}
	if dec.More() {
		return game.Command{}, commErrorf("trailing data after command")
	}
	if err := envelopeSchema.Validate(doc); err != nil {
		return game.Command{}, commErrorf("invalid command structure: %w", err)
	}

	name := doc.(map[string]any)["command"].(string)
	action, ok := game.ParseAction(name)
	if !ok {
		return game.Command{}, invalidCommand("unknown command %q", name)
	}
	if schema, ok := commandSchemas[action]; ok {
		if err := schema.Validate(doc); err != nil {
			return game.Command{}, invalidCommand("%s: %v", name, err)
		}
	}

	cmd, err := fromFields(action, doc.(map[string]any))
	if err != nil {
		return game.Command{}, invalidCommand("%s: %v", name, err)
	}
	return cmd, nil
}

// fromFields reads only the arguments of action; anything else in the
// message is ignored.
func fromFields(action game.ActionType, fields map[string]any) (game.Command, error) {
	switch action {
	case game.MoveAction:
		x, err := integer(fields["x"])
		if err != nil {
			return game.Command{}, fmt.Errorf("x: %w", err)
		}
		y, err := integer(fields["y"])
		if err != nil {
			return game.Command{}, fmt.Errorf("y: %w", err)
		}
		return game.MoveBy(x, y), nil
	case game.AttackAction:
		energy, err := integer(fields["energy"])
		if err != nil {
			return game.Command{}, fmt.Errorf("energy: %w", err)
		}
		return game.AttackWith(energy), nil
	case game.ConnectAction:
		xy := fields["destination"].([]any)
		x, err := integer(xy[0])
		if err != nil {
			return game.Command{}, fmt.Errorf("destination: %w", err)
		}
		y, err := integer(xy[1])
		if err != nil {
			return game.Command{}, fmt.Errorf("destination: %w", err)
		}
		return game.ConnectTo(game.Position{X: x, Y: y}), nil
	}
	return game.Pass(), nil
}

// integer converts a schema-checked integer. Values written with a fraction
// part or beyond the int range are rejected.
func integer(v any) (int, error) {
	n, err := v.(json.Number).Int64()
	if err != nil {
		return 0, err
	}
	if int64(int(n)) != n {
		return 0, fmt.Errorf("%d is out of range", n)
	}
	return int(n), nil
}

func invalidCommand(format string, args ...any) error {
	return fmt.Errorf("%w: %s", game.ErrInvalidCommand, fmt.Sprintf(format, args...))
}

func EncodeCommand(cmd game.Command) ([]byte, error) {
	return json.Marshal(NewCommandMessage(cmd))
}

func EncodeState(s game.Snapshot) ([]byte, error) {
	return json.Marshal(NewStateMessage(s))
}

func EncodeIntro(intro game.Intro) ([]byte, error) {
	return json.Marshal(NewIntroMessage(intro))
}
