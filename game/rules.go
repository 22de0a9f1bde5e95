package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules are the tunable constants of a game.
type Rules struct {
	InfluenceRadius int  `yaml:"influence_radius"` // lighthouse energy diffusion radius
	Decay           int  `yaml:"decay"`            // passive lighthouse decay per round
	Horizon         int  `yaml:"horizon"`          // radius of the player's energy view
	MaxEnergy       int  `yaml:"max_energy"`       // cap of a single island cell
	HalfRate        bool `yaml:"half_rate"`        // halve both diffusion and passive decay

	ScoreLighthouse int `yaml:"score_lighthouse"`
	ScoreConnection int `yaml:"score_connection"`
	ScoreCell       int `yaml:"score_cell"`
}

func DefaultRules() Rules {
	return Rules{
		InfluenceRadius: 5,
		Decay:           10,
		Horizon:         3,
		MaxEnergy:       100,
		ScoreLighthouse: 2,
		ScoreConnection: 2,
		ScoreCell:       1,
	}
}

// ParseRules overlays YAML onto DefaultRules; missing keys keep their default.
func ParseRules(data []byte) (Rules, error) {
	rules := DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, &GameError{msg: fmt.Sprintf("rules: %v", err)}
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules: %w", err)
	}
	return ParseRules(data)
}

func (r Rules) Validate() error {
	switch {
	case r.InfluenceRadius <= 0:
		return gameErrorf("rules: influence_radius must be positive, got %d", r.InfluenceRadius)
	case r.Decay < 0:
		return gameErrorf("rules: decay must be non-negative, got %d", r.Decay)
	case r.Horizon < 0:
		return gameErrorf("rules: horizon must be non-negative, got %d", r.Horizon)
	case r.MaxEnergy <= 0:
		return gameErrorf("rules: max_energy must be positive, got %d", r.MaxEnergy)
	case r.ScoreLighthouse < 0 || r.ScoreConnection < 0 || r.ScoreCell < 0:
		return gameErrorf("rules: scores must be non-negative")
	}
	return nil
}

// upkeep is the passive decay applied to every lighthouse each round.
func (r Rules) upkeep() int {
	if r.HalfRate {
		return r.Decay / 2
	}
	return r.Decay
}
