package bot

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

var (
	ErrNotSeated = errors.New("bot is not seated in this game")
	ErrNotOnTurn = errors.New("bot is not on turn")
	ErrEmptyHand = errors.New("bot has no cards to lead")
)

// NewBrain creates a new AI brain tuned by the given difficulty. A nil rng
// gets a time-seeded source.
func NewBrain(d domain.Difficulty, rng *rand.Rand) (Brain, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("new brain: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &StrategicBot{Difficulty: d, Tuning: DefaultTuning, rng: rng}, nil
}

// NewBrainForLevel resolves a preset name such as "hard" and builds its brain.
func NewBrainForLevel(level string, rng *rand.Rand) (Brain, error) {
	d, ok := domain.PresetByName(level)
	if !ok {
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
	return NewBrain(d, rng)
}
