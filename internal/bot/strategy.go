package bot

import (
	"math"
	"math/rand"
	"sort"

	"github.com/amabayar1999/Huzur-Game/internal/bot/brain"
	botinternal "github.com/amabayar1999/Huzur-Game/internal/bot/internal"
	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// StrategicBot values every card by what it costs to give up and plays the
// cheapest legal option. The difficulty decides how jealously trumps are
// kept, how often combos are led and whether the opponent is modelled.
type StrategicBot struct {
	Difficulty domain.Difficulty
	Tuning     botinternal.BotTuning
	rng        *rand.Rand
}

func (b *StrategicBot) CalculateMove(game *domain.GameState, player domain.PlayerID) (Move, error) {
	hand := game.Hands[player]
	ctx := b.context(game, player)

	switch {
	case game.Lead.IsZero():
		return b.lead(game, hand, ctx)
	case game.Lead.IsCombo():
		return b.answerCombo(game, hand, ctx), nil
	default:
		return b.answerSingle(game, hand, ctx), nil
	}
}

func (b *StrategicBot) context(game *domain.GameState, player domain.PlayerID) botinternal.Context {
	phase := botinternal.DetectPhase(len(game.Deck))
	opponent := game.Opponent(player)
	hand := game.Hands[player]

	ctx := botinternal.Context{
		Trump:             game.TrumpSuit,
		Phase:             phase,
		Conserving:        botinternal.ShouldConserve(b.Difficulty.TrumpConservation, phase, b.Tuning, b.rng.Float64()),
		Leading:           game.Lead.IsZero(),
		HandSize:          len(hand),
		OpponentHandSize:  len(game.Hands[opponent]),
		DeckSize:          len(game.Deck),
		PileSize:          len(game.Pile),
		TrumpsInHand:      domain.CountTrumps(hand, game.TrumpSuit),
		EndgameAggression: b.Difficulty.EndgameAggression,
	}
	if b.Difficulty.Prediction {
		ctx.Read = readOpponent(game, player, opponent)
	}
	return ctx
}

// readOpponent builds the opponent read from public information and the
// bot's own hand only.
func readOpponent(game *domain.GameState, self, opponent domain.PlayerID) *botinternal.OpponentRead {
	mem := brain.NewMemory()
	mem.Observe(game.History, game.Hands[self], game.TrumpCard, game.TrumpCardDrawn)
	profile := brain.NewOpponentProfile(opponent)
	profile.Observe(game.History, game.TrumpSuit)
	est := brain.NewEstimator(mem, profile, game.TrumpSuit)

	read := &botinternal.OpponentRead{
		LikelyStrong:  est.OpponentLikelyStrong(len(game.Hands[opponent]), len(game.Deck)),
		WeakSuits:     est.WeakSuits(),
		Bosses:        make(map[domain.Card]bool),
		LeadWinChance: make(map[domain.Card]float64),
	}
	for _, c := range game.Hands[self] {
		if mem.IsBoss(c, game.TrumpSuit) {
			read.Bosses[c] = true
		}
		read.LeadWinChance[c] = est.LeadTurnProbability(c)
	}
	return read
}

func (b *StrategicBot) lead(game *domain.GameState, hand []domain.Card, ctx botinternal.Context) (Move, error) {
	if len(hand) == 0 {
		return Move{}, ErrEmptyHand
	}

	if combo := b.cheapestLeadCombo(game, hand, ctx); combo != nil && b.rng.Float64() < b.Difficulty.ComboAggression {
		return Move{Play: domain.ComboPlay(combo)}, nil
	}

	singles := append([]domain.Card(nil), hand...)
	sort.SliceStable(singles, func(i, j int) bool {
		return botinternal.CardValue(singles[i], ctx, b.Tuning) < botinternal.CardValue(singles[j], ctx, b.Tuning)
	})
	pick := singles[0]
	if b.Difficulty.Bluffing && len(singles) > 1 && b.rng.Float64() < b.Tuning.BluffChance {
		pick = singles[1]
	}
	return Move{Play: domain.SinglePlay(pick)}, nil
}

// cheapestLeadCombo picks the combo with the lowest average card value. A
// combo larger than the opponent's hand is never led.
func (b *StrategicBot) cheapestLeadCombo(game *domain.GameState, hand []domain.Card, ctx botinternal.Context) []domain.Card {
	var best []domain.Card
	bestAvg := math.Inf(1)
	for _, combo := range botinternal.FindCombos(hand, game.TrumpCardDrawn, b.Tuning.ComboSearchLimit) {
		if len(combo) > ctx.OpponentHandSize {
			continue
		}
		avg := botinternal.PlayValue(combo, ctx, b.Tuning) / float64(len(combo))
		if avg < bestAvg {
			best, bestAvg = combo, avg
		}
	}
	return best
}

// answerSingle plays the cheapest legal card that beats the lead. Without
// one the bot picks up rather than discard.
func (b *StrategicBot) answerSingle(game *domain.GameState, hand []domain.Card, ctx botinternal.Context) Move {
	lead := game.Lead.Card()
	found := false
	var best domain.Card
	bestVal := math.Inf(1)
	for _, c := range hand {
		if !domain.CanPlayCard(lead, c, hand, game.TrumpSuit) || !domain.CanBeat(lead, c, game.TrumpSuit) {
			continue
		}
		if v := botinternal.CardValue(c, ctx, b.Tuning); v < bestVal {
			best, bestVal, found = c, v, true
		}
	}
	if !found {
		return Move{Pickup: true}
	}
	return Move{Play: domain.SinglePlay(best)}
}

// answerCombo searches same-sized card groups for the cheapest one that
// beats the lead position by position. Among equal costs a group that also
// wins the sorted comparison is preferred. Large hands are narrowed to their
// cheapest cards first.
func (b *StrategicBot) answerCombo(game *domain.GameState, hand []domain.Card, ctx botinternal.Context) Move {
	lead := game.Lead.Cards
	trump := game.TrumpSuit
	if len(hand) < len(lead) {
		return Move{Pickup: true}
	}

	pool := hand
	if limit := b.Tuning.ComboSearchLimit; len(pool) > limit {
		pool = botinternal.CheapestCards(hand, limit, func(c domain.Card) float64 {
			return botinternal.CardValue(c, ctx, b.Tuning)
		})
	}

	var best []domain.Card
	bestVal := math.Inf(1)
	bestSorted := false
	for _, group := range botinternal.Subsets(pool, len(lead)) {
		order, ok := botinternal.FindBeatingOrder(lead, group, trump)
		if !ok {
			continue
		}
		v := botinternal.PlayValue(order, ctx, b.Tuning)
		sorted := domain.CanBeatCombo(lead, order, trump)
		if v < bestVal || (v == bestVal && sorted && !bestSorted) {
			best, bestVal, bestSorted = order, v, sorted
		}
	}

	if best == nil || !domain.CanBeatComboByPosition(lead, best, trump) {
		return Move{Pickup: true}
	}
	return Move{Play: domain.ComboPlay(best)}
}
