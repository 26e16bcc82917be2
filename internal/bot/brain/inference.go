package brain

import (
	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// Estimator provides probabilistic insights based on memory.
type Estimator struct {
	Memory  *GameMemory
	Profile *OpponentProfile
	Trump   domain.Suit
}

// NewEstimator creates a new reasoning engine.
func NewEstimator(m *GameMemory, p *OpponentProfile, trump domain.Suit) *Estimator {
	return &Estimator{Memory: m, Profile: p, Trump: trump}
}

// UnseenTrumps counts trump-suit cards and jokers the bot has not seen.
func (e *Estimator) UnseenTrumps() int {
	n := 0
	for _, c := range e.Memory.Unseen() {
		if c.IsTrump(e.Trump) {
			n++
		}
	}
	return n
}

// ExpectedOpponentTrumps spreads the unseen trumps over the opponent's hand
// and the deck in proportion to their sizes.
func (e *Estimator) ExpectedOpponentTrumps(opponentHand, deckSize int) float64 {
	total := opponentHand + deckSize
	if total == 0 {
		return 0
	}
	return float64(e.UnseenTrumps()) * float64(opponentHand) / float64(total)
}

// OpponentLikelyStrong guesses whether the opponent still holds trumps. An
// opponent who keeps burning trumps is assumed to have plenty.
func (e *Estimator) OpponentLikelyStrong(opponentHand, deckSize int) bool {
	expected := e.ExpectedOpponentTrumps(opponentHand, deckSize)
	if e.Profile != nil && e.Profile.RecentTrumps >= 2 {
		return expected >= 1
	}
	return expected >= 1.5
}

// WeakSuits returns the suits the opponent has shown to be void in, trump
// excluded.
func (e *Estimator) WeakSuits() map[domain.Suit]bool {
	out := make(map[domain.Suit]bool)
	if e.Profile == nil {
		return out
	}
	for _, s := range domain.Suits {
		if s != e.Trump && e.Profile.IsVoid(s) {
			out[s] = true
		}
	}
	return out
}

// LeadTurnProbability returns a 0.0 to 1.0 chance that leading c wins the
// trick, from the share of unseen cards that can beat it.
func (e *Estimator) LeadTurnProbability(c domain.Card) float64 {
	unseen := e.Memory.Unseen()
	if len(unseen) == 0 {
		return 1.0
	}
	beaters := 0
	for _, u := range unseen {
		if domain.CanBeat(c, u, e.Trump) {
			beaters++
		}
	}
	if beaters == 0 {
		return 1.0
	}
	return 1.0 / float64(beaters+1)
}
