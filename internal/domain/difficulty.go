package domain

import (
	"fmt"
	"strings"
)

// Difficulty tunes how the bot plays. All fractions are in [0, 1].
type Difficulty struct {
	Name              string  `json:"name"`
	TrumpConservation float64 `json:"trump_conservation"`
	ComboAggression   float64 `json:"combo_aggression"`
	Prediction        bool    `json:"prediction"`
	Bluffing          bool    `json:"bluffing"`
	EndgameAggression float64 `json:"endgame_aggression"`
}

// Preset names.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyExpert = "expert"
)

var (
	Easy   = Difficulty{Name: DifficultyEasy, TrumpConservation: 0.2, ComboAggression: 0.2, EndgameAggression: 0.2}
	Medium = Difficulty{Name: DifficultyMedium, TrumpConservation: 0.5, ComboAggression: 0.4, EndgameAggression: 0.5}
	Hard   = Difficulty{Name: DifficultyHard, TrumpConservation: 0.75, ComboAggression: 0.6, Prediction: true, EndgameAggression: 0.7}
	Expert = Difficulty{Name: DifficultyExpert, TrumpConservation: 0.9, ComboAggression: 0.75, Prediction: true, Bluffing: true, EndgameAggression: 0.9}
)

// Presets lists the built-in levels from weakest to strongest.
func Presets() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Expert}
}

// PresetByName looks up a built-in level, ignoring case.
func PresetByName(name string) (Difficulty, bool) {
	for _, d := range Presets() {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Validate checks that every fraction lies in [0, 1].
func (d Difficulty) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"trump_conservation", d.TrumpConservation},
		{"combo_aggression", d.ComboAggression},
		{"endgame_aggression", d.EndgameAggression},
	}
	for _, f := range fields {
		if !(f.v >= 0 && f.v <= 1) {
			return fmt.Errorf("difficulty %q: %s %.2f out of range [0,1]", d.Name, f.name, f.v)
		}
	}
	return nil
}

func (d Difficulty) String() string {
	if d.Name == "" {
		return "custom"
	}
	return d.Name
}
