package domain

// ContainsCard reports whether hand holds c.
func ContainsCard(hand []Card, c Card) bool {
	return IndexOf(hand, c) >= 0
}

// IndexOf returns the first index of c in cards, or -1.
func IndexOf(cards []Card, c Card) int {
	for i := range cards {
		if cards[i] == c {
			return i
		}
	}
	return -1
}

// ContainsAll reports whether hand holds every card of played, counting
// repeats.
func ContainsAll(hand, played []Card) bool {
	return len(RemoveCards(hand, played)) == len(hand)-len(played)
}

// RemoveCards removes the provided cards from a hand, one copy per entry.
func RemoveCards(hand []Card, played []Card) []Card {
	out := append([]Card{}, hand...)
	for _, pc := range played {
		for i := 0; i < len(out); i++ {
			if out[i] == pc {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}

// CountTrumps counts trumps in hand, jokers included.
func CountTrumps(hand []Card, trump Suit) int {
	n := 0
	for _, c := range hand {
		if c.IsTrump(trump) {
			n++
		}
	}
	return n
}

// FindSevenOfTrump returns the index of the 7 of the trump suit in hand, or -1.
func FindSevenOfTrump(hand []Card, trump Suit) int {
	return IndexOf(hand, Card{Rank: Rank7, Suit: trump})
}
