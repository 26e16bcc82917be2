package bot

import (
	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// Move represents the decision made by the AI. Pickup is set when the bot
// takes the pile instead of answering the lead.
type Move struct {
	Pickup bool
	Play   domain.Play
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(game *domain.GameState, player domain.PlayerID) (Move, error)
}
