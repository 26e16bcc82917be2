package domain

import "math/rand"

const (
	// DeckSize is ten ranks in four suits plus two jokers.
	DeckSize = 42
	// HandSize is the number of cards each player is dealt and refilled to.
	HandSize = 5
	// StockSize is what remains in the deck right after the deal.
	StockSize = DeckSize - 2*HandSize
)

// NewDeck returns the 42 cards in a fixed order: suits in Suits order, each
// from 7 to A, followed by the black and red jokers.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return append(deck, Card{Rank: BlackJoker}, Card{Rank: RedJoker})
}

// CardIndex is the position of c in NewDeck, or -1 for a card outside the deck.
func CardIndex(c Card) int {
	if !c.Valid() {
		return -1
	}
	if c.IsJoker() {
		return len(Suits)*len(Ranks) + RankIndex(c.Rank) - len(Ranks)
	}
	for i, s := range Suits {
		if s == c.Suit {
			return i*len(Ranks) + RankIndex(c.Rank)
		}
	}
	return -1
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Draw pops cards from the top (the end) of the deck into hand until the
// hand holds target cards or the deck runs out. drewTrump is set when the
// face-up trump card left the deck.
func Draw(deck, hand []Card, trumpCard Card, target int) (newDeck, newHand []Card, drewTrump bool) {
	newDeck = append([]Card(nil), deck...)
	newHand = append([]Card(nil), hand...)
	for len(newHand) < target && len(newDeck) > 0 {
		c := newDeck[len(newDeck)-1]
		newDeck = newDeck[:len(newDeck)-1]
		newHand = append(newHand, c)
		if len(newDeck) == 0 && c == trumpCard {
			drewTrump = true
		}
	}
	return newDeck, newHand, drewTrump
}
