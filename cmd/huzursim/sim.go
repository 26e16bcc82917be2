package main

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/amabayar1999/Huzur-Game/internal/app"
	"github.com/amabayar1999/Huzur-Game/internal/bot"
	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

const (
	seatA domain.PlayerID = "A"
	seatB domain.PlayerID = "B"
)

// Matchup describes a series of bot-vs-bot games.
type Matchup struct {
	Games    int
	Seed     int64
	A, B     domain.Difficulty
	MaxTurns int
}

// Summary aggregates the outcome of a series.
type Summary struct {
	Wins       map[domain.PlayerID]int
	Unfinished int
	Turns      int
	Pickups    int
	Exchanges  int
}

// AverageTurns is the mean number of moves of finished games.
func (s Summary) AverageTurns(games int) float64 {
	finished := games - s.Unfinished
	if finished <= 0 {
		return 0
	}
	return float64(s.Turns) / float64(finished)
}

// Simulate plays m.Games seeded games. Seats alternate the opening lead.
func Simulate(m Matchup, logger *slog.Logger) (Summary, error) {
	sum := Summary{Wins: make(map[domain.PlayerID]int, app.PlayersPerGame)}
	for i := 0; i < m.Games; i++ {
		seed := m.Seed + int64(i)
		players := [app.PlayersPerGame]domain.PlayerID{seatA, seatB}
		if i%2 == 1 {
			players[0], players[1] = players[1], players[0]
		}

		res, err := playOne(m, players, seed)
		if err != nil {
			return sum, fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
		}
		sum.Pickups += res.pickups
		sum.Exchanges += res.exchanges
		if res.winner == "" {
			sum.Unfinished++
			logger.Warn("game hit the move limit", "game", i+1, "seed", seed, "moves", res.moves)
			continue
		}
		sum.Wins[res.winner]++
		sum.Turns += res.moves
		logger.Debug("game finished", "game", i+1, "seed", seed, "winner", string(res.winner), "moves", res.moves)
	}
	return sum, nil
}

type gameResult struct {
	winner    domain.PlayerID
	moves     int
	pickups   int
	exchanges int
}

func playOne(m Matchup, players [app.PlayersPerGame]domain.PlayerID, seed int64) (gameResult, error) {
	rng := rand.New(rand.NewSource(seed))
	svc := app.NewService(rng)
	game, _, err := svc.StartGame(players, "", m.A)
	if err != nil {
		return gameResult{}, err
	}

	agents := make(map[domain.PlayerID]*bot.Agent, app.PlayersPerGame)
	for id, d := range map[domain.PlayerID]domain.Difficulty{seatA: m.A, seatB: m.B} {
		brain, err := bot.NewBrain(d, rng)
		if err != nil {
			return gameResult{}, err
		}
		agents[id] = &bot.Agent{ID: id, Name: d.String(), Strategy: brain}
	}

	var res gameResult
	for res.moves < m.MaxTurns && game.Winner == "" {
		player := game.Turn
		if game.CanExchange(player) {
			game, _ = svc.Apply(game, app.ExchangeTrump(player))
			res.exchanges++
		}

		move, err := agents[player].Play(game)
		if err != nil {
			return res, err
		}
		next, events := svc.Apply(game, moveAction(player, move))
		if rejectedMove(events) && !game.Lead.IsZero() {
			next, events = svc.Apply(game, app.Pickup(player))
		}
		if rejectedMove(events) {
			return res, fmt.Errorf("%s made an illegal move: %s", player, next.Log[len(next.Log)-1])
		}
		if move.Pickup {
			res.pickups++
		}
		game = next
		res.moves++
	}
	res.winner = game.Winner
	return res, nil
}

func moveAction(player domain.PlayerID, move bot.Move) app.Action {
	switch {
	case move.Pickup:
		return app.Pickup(player)
	case move.Play.IsCombo():
		return app.PlayCombo(player, move.Play.Cards)
	default:
		return app.Play(player, move.Play.Card())
	}
}

func rejectedMove(events []app.Event) bool {
	for _, ev := range events {
		if ev.Kind == app.EventActionRejected {
			return true
		}
	}
	return false
}
