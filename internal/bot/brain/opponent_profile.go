package brain

import (
	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// recentWindow is how many of the opponent's latest cards count as recent.
const recentWindow = 4

// OpponentProfile tracks what the opponent has shown so far.
type OpponentProfile struct {
	Player domain.PlayerID
	// SuitsPlayed counts non-joker cards per suit.
	SuitsPlayed map[domain.Suit]int
	// Voids holds suits the opponent failed to follow when answering a lead.
	Voids        map[domain.Suit]bool
	TrumpsPlayed int
	JokersPlayed int
	// RecentTrumps counts trumps and jokers among the last recentWindow cards.
	RecentTrumps int
	CardsPlayed  int
}

// NewOpponentProfile initializes a profile for a specific player.
func NewOpponentProfile(player domain.PlayerID) *OpponentProfile {
	return &OpponentProfile{
		Player:      player,
		SuitsPlayed: make(map[domain.Suit]int),
		Voids:       make(map[domain.Suit]bool),
	}
}

// Observe replays the history. Answering a single lead with a side-suit card
// of another suit marks the led suit as void; a later card of that suit
// clears the mark.
func (p *OpponentProfile) Observe(history []domain.PlayedCard, trump domain.Suit) {
	var mine []domain.PlayedCard
	for i, pc := range history {
		if pc.Player != p.Player {
			continue
		}
		mine = append(mine, pc)
		p.CardsPlayed++

		c := pc.Card
		switch {
		case c.IsJoker():
			p.JokersPlayed++
		case c.IsTrump(trump):
			p.TrumpsPlayed++
		}
		if !c.IsJoker() {
			p.SuitsPlayed[c.Suit]++
			delete(p.Voids, c.Suit)
		}

		if pc.Lead || i == 0 {
			continue
		}
		led := history[i-1]
		if led.Player == p.Player || !led.Lead || led.Card.IsJoker() || c.IsJoker() || c.IsTrump(trump) {
			continue
		}
		if i >= 2 && history[i-2].Lead && history[i-2].Player == led.Player {
			continue
		}
		if c.Suit != led.Card.Suit {
			p.Voids[led.Card.Suit] = true
		}
	}

	start := max(0, len(mine)-recentWindow)
	for _, pc := range mine[start:] {
		if pc.Card.IsJoker() || pc.Card.IsTrump(trump) {
			p.RecentTrumps++
		}
	}
}

// IsVoid reports whether the opponent has shown they lack suit s.
func (p *OpponentProfile) IsVoid(s domain.Suit) bool {
	return p.Voids[s]
}
