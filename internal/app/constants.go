package app

import "github.com/amabayar1999/Huzur-Game/internal/domain"

// PlayersPerGame is the number of seats in a Huzur game.
const PlayersPerGame = 2

// Default seat names used when a game is created without explicit players.
const (
	DefaultHumanPlayer domain.PlayerID = "player"
	DefaultBotPlayer   domain.PlayerID = "bot"
)
