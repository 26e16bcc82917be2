package bot

import (
	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       domain.PlayerID
	Name     string
	Strategy Brain
}

// Play asks the agent to calculate its move based on the current game state.
func (a *Agent) Play(game *domain.GameState) (Move, error) {
	if game == nil || !game.HasPlayer(a.ID) {
		return Move{}, ErrNotSeated
	}
	if game.Turn != a.ID {
		return Move{}, ErrNotOnTurn
	}
	return a.Strategy.CalculateMove(game, a.ID)
}
