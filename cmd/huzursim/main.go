// Command huzursim plays seeded bot-vs-bot Huzur games between two
// difficulty levels and prints the results.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/amabayar1999/Huzur-Game/internal/config"
	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

func main() {
	games := flag.Int("games", 100, "number of games to play")
	seed := flag.Int64("seed", 1, "seed of the first game")
	levelA := flag.String("a", domain.DifficultyMedium, "difficulty of seat A")
	levelB := flag.String("b", domain.DifficultyHard, "difficulty of seat B")
	maxTurns := flag.Int("max-turns", 2000, "moves before a game is abandoned")
	configPath := flag.String("config", "", "optional huzur_config.json with difficulty overrides")
	verbose := flag.Bool("v", false, "log every game")
	flag.Parse()

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)
	if *verbose {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}

	title, _ := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("H", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("uzur", pterm.FgDarkGray.ToStyle()),
	).Srender()
	pterm.Print(title)

	if *configPath != "" {
		if err := config.LoadGameConfig(*configPath); err != nil {
			logger.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}

	a, okA := domain.PresetByName(*levelA)
	b, okB := domain.PresetByName(*levelB)
	if !okA || !okB || *games <= 0 || *maxTurns <= 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [-games n] [-seed s] [-a level] [-b level]; levels: easy, medium, hard, expert\n", os.Args[0])
		os.Exit(2)
	}
	m := Matchup{
		Games:    *games,
		Seed:     *seed,
		A:        config.GetDifficulty(a.Name),
		B:        config.GetDifficulty(b.Name),
		MaxTurns: *maxTurns,
	}

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Playing %d games, %s vs %s ...", m.Games, m.A, m.B))
	sum, err := Simulate(m, logger)
	if err != nil {
		spinner.Fail(err.Error())
		os.Exit(1)
	}
	spinner.Success()

	if err := pterm.DefaultTable.WithHasHeader().WithData(resultTable(m, sum)).Render(); err != nil {
		logger.Error("failed to render results", "error", err)
	}
	pterm.Info.Printfln("Average game length: %.1f moves, %d pickups, %d trump exchanges", sum.AverageTurns(m.Games), sum.Pickups, sum.Exchanges)
	if sum.Unfinished > 0 {
		pterm.Warning.Printfln("%d game(s) hit the move limit", sum.Unfinished)
	}
}

func resultTable(m Matchup, sum Summary) pterm.TableData {
	rate := func(wins int) string {
		return fmt.Sprintf("%.1f%%", 100*float64(wins)/float64(m.Games))
	}
	return pterm.TableData{
		{"Seat", "Difficulty", "Wins", "Win rate"},
		{string(seatA), m.A.String(), fmt.Sprint(sum.Wins[seatA]), rate(sum.Wins[seatA])},
		{string(seatB), m.B.String(), fmt.Sprint(sum.Wins[seatB]), rate(sum.Wins[seatB])},
	}
}
