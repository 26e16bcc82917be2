package domain

import "fmt"

// Suit is one of the four French suits. Jokers carry SuitNone.
type Suit string

const (
	SuitNone Suit = ""
	Hearts   Suit = "H"
	Spades   Suit = "S"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

// Suits lists the suits in deck construction order.
var Suits = []Suit{Hearts, Spades, Diamonds, Clubs}

// Rank identifies a card face. The two jokers are ranks of their own.
type Rank string

const (
	Rank7      Rank = "7"
	Rank8      Rank = "8"
	Rank9      Rank = "9"
	Rank10     Rank = "10"
	RankJ      Rank = "J"
	RankQ      Rank = "Q"
	RankK      Rank = "K"
	Rank3      Rank = "3"
	Rank2      Rank = "2"
	RankA      Rank = "A"
	BlackJoker Rank = "BJ"
	RedJoker   Rank = "RJ"
)

// Ranks lists the suited ranks from weakest to strongest.
var Ranks = []Rank{Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK, Rank3, Rank2, RankA}

var rankIndex = func() map[Rank]int {
	m := make(map[Rank]int, len(Ranks)+2)
	for i, r := range Ranks {
		m[r] = i
	}
	m[BlackJoker] = len(Ranks)
	m[RedJoker] = len(Ranks) + 1
	return m
}()

// RankIndex returns the strength of a rank: 0 for 7 up to 9 for A,
// 10 for the black joker and 11 for the red joker. Unknown ranks yield -1.
func RankIndex(r Rank) int {
	if i, ok := rankIndex[r]; ok {
		return i
	}
	return -1
}

// Card is a single card of the Huzur deck.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit,omitempty"`
}

// NewCard builds a suited card.
func NewCard(r Rank, s Suit) Card { return Card{Rank: r, Suit: s} }

// IsJoker reports whether the card is one of the two jokers.
func (c Card) IsJoker() bool {
	return c.Rank == BlackJoker || c.Rank == RedJoker
}

// IsTrump reports whether the card counts as a trump: either joker, or a
// card of the trump suit.
func (c Card) IsTrump(trump Suit) bool {
	if c.IsJoker() {
		return true
	}
	return trump != SuitNone && c.Suit == trump
}

// Valid reports whether the card exists in the Huzur deck.
func (c Card) Valid() bool {
	if c.IsJoker() {
		return c.Suit == SuitNone
	}
	if RankIndex(c.Rank) < 0 {
		return false
	}
	for _, s := range Suits {
		if c.Suit == s {
			return true
		}
	}
	return false
}

var suitIcons = map[Suit]string{
	Hearts:   "♥",
	Spades:   "♠",
	Diamonds: "♦",
	Clubs:    "♣",
}

// String renders the card the way it is shown in the game log.
func (c Card) String() string {
	switch c.Rank {
	case BlackJoker:
		return "Joker♣♠"
	case RedJoker:
		return "Joker♥♦"
	}
	if icon, ok := suitIcons[c.Suit]; ok {
		return string(c.Rank) + icon
	}
	return fmt.Sprintf("%s?%s", c.Rank, c.Suit)
}

// Color returns "red" for hearts, diamonds and the red joker, "black" otherwise.
func (c Card) Color() string {
	switch {
	case c.Rank == RedJoker, c.Suit == Hearts, c.Suit == Diamonds:
		return "red"
	default:
		return "black"
	}
}

// TrumpSuitFor derives the trump suit from the card under the deck. A black
// joker makes spades trump, a red joker makes hearts trump.
func TrumpSuitFor(c Card) Suit {
	switch c.Rank {
	case BlackJoker:
		return Spades
	case RedJoker:
		return Hearts
	}
	return c.Suit
}

// FormatCards joins card labels with a comma.
func FormatCards(cards []Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += ", "
		}
		out += c.String()
	}
	return out
}
