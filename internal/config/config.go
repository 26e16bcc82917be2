package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// DifficultyOverride replaces the tunables of a built-in preset. Unset
// fields keep the preset value.
type DifficultyOverride struct {
	TrumpConservation *float64 `json:"trump_conservation,omitempty"`
	ComboAggression   *float64 `json:"combo_aggression,omitempty"`
	Prediction        *bool    `json:"prediction,omitempty"`
	Bluffing          *bool    `json:"bluffing,omitempty"`
	EndgameAggression *float64 `json:"endgame_aggression,omitempty"`
}

type GameConfig struct {
	DefaultDifficulty string                        `json:"default_difficulty"`
	Difficulties      map[string]DifficultyOverride `json:"difficulties"`
	BotsEnabled       bool                          `json:"bots_enabled"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding a bot to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// Bot think time is drawn uniformly from [min, max] milliseconds.
	BotMinThinkMillis int `json:"bot_min_think_ms"`
	BotMaxThinkMillis int `json:"bot_max_think_ms"`
}

// Defaults used when no config file has been loaded.
const (
	DefaultAutoFillDelaySeconds = 5
	DefaultMinThinkMillis       = 600
	DefaultMaxThinkMillis       = 1500
)

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// Parse decodes and validates a config file body.
func Parse(data []byte) (*GameConfig, error) {
	c := GameConfig{BotsEnabled: true}
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if c.BotMinThinkMillis < 0 || c.BotMaxThinkMillis < c.BotMinThinkMillis {
		return nil, fmt.Errorf("invalid bot think window [%d, %d]", c.BotMinThinkMillis, c.BotMaxThinkMillis)
	}
	if c.DefaultDifficulty != "" {
		if _, ok := domain.PresetByName(c.DefaultDifficulty); !ok {
			return nil, fmt.Errorf("unknown default difficulty %q", c.DefaultDifficulty)
		}
	}
	for name := range c.Difficulties {
		if _, ok := domain.PresetByName(name); !ok {
			return nil, fmt.Errorf("override for unknown difficulty %q", name)
		}
		if err := c.Difficulty(name).Validate(); err != nil {
			return nil, fmt.Errorf("invalid override: %w", err)
		}
	}
	return &c, nil
}

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c, err := Parse(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// Difficulty returns the named preset with any override applied. Unknown
// names resolve to the default difficulty.
func (c *GameConfig) Difficulty(name string) domain.Difficulty {
	d, ok := domain.PresetByName(name)
	if !ok {
		def := domain.DifficultyMedium
		if c != nil && c.DefaultDifficulty != "" {
			def = c.DefaultDifficulty
		}
		d, _ = domain.PresetByName(def)
		name = def
	}
	if c == nil {
		return d
	}

	for key, o := range c.Difficulties {
		if !strings.EqualFold(key, name) {
			continue
		}
		if o.TrumpConservation != nil {
			d.TrumpConservation = *o.TrumpConservation
		}
		if o.ComboAggression != nil {
			d.ComboAggression = *o.ComboAggression
		}
		if o.Prediction != nil {
			d.Prediction = *o.Prediction
		}
		if o.Bluffing != nil {
			d.Bluffing = *o.Bluffing
		}
		if o.EndgameAggression != nil {
			d.EndgameAggression = *o.EndgameAggression
		}
	}
	return d
}

// GetDifficulty resolves a difficulty against the loaded config, falling
// back to the built-in presets.
func GetDifficulty(name string) domain.Difficulty {
	return cfg.Difficulty(name)
}

// AutoFillDelaySeconds returns the solo lobby wait before a bot joins.
func (c *GameConfig) AutoFillDelaySeconds() int {
	if c == nil || c.BotAutoFillDelaySeconds <= 0 {
		return DefaultAutoFillDelaySeconds
	}
	return c.BotAutoFillDelaySeconds
}

// ThinkWindowMillis returns the bot think time bounds.
func (c *GameConfig) ThinkWindowMillis() (int, int) {
	if c == nil || c.BotMaxThinkMillis == 0 {
		return DefaultMinThinkMillis, DefaultMaxThinkMillis
	}
	return c.BotMinThinkMillis, c.BotMaxThinkMillis
}

// BotsAllowed reports whether lobbies may be filled with bots.
func (c *GameConfig) BotsAllowed() bool {
	return c == nil || c.BotsEnabled
}
