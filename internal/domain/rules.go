package domain

import "sort"

// CompareCards orders two cards under the given trump suit. It returns a
// positive number when a is stronger, negative when b is stronger and zero
// when they are equal or incomparable (different non-trump suits).
func CompareCards(a, b Card, trump Suit) int {
	aj, bj := a.IsJoker(), b.IsJoker()
	switch {
	case aj && bj:
		return RankIndex(a.Rank) - RankIndex(b.Rank)
	case aj:
		return 1
	case bj:
		return -1
	}

	at, bt := a.IsTrump(trump), b.IsTrump(trump)
	switch {
	case at && !bt:
		return 1
	case bt && !at:
		return -1
	}

	if a.Suit == b.Suit {
		return RankIndex(a.Rank) - RankIndex(b.Rank)
	}
	return 0
}

// CanBeat reports whether response beats lead under the given trump suit.
// A joker response beats anything, including the other joker.
func CanBeat(lead, response Card, trump Suit) bool {
	if response.IsJoker() {
		return true
	}
	if lead.IsJoker() {
		return false
	}
	lt, rt := lead.IsTrump(trump), response.IsTrump(trump)
	switch {
	case rt && !lt:
		return true
	case lt && !rt:
		return false
	}
	return lead.Suit == response.Suit && RankIndex(response.Rank) > RankIndex(lead.Rank)
}

// HasSuit reports whether the hand holds a non-joker card of the suit.
func HasSuit(hand []Card, suit Suit) bool {
	for _, c := range hand {
		if !c.IsJoker() && c.Suit == suit {
			return true
		}
	}
	return false
}

// CardsInSuit returns the non-joker cards of the given suit.
func CardsInSuit(hand []Card, suit Suit) []Card {
	var out []Card
	for _, c := range hand {
		if !c.IsJoker() && c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// MustFollowSuit reports whether a player holding hand is obliged to answer
// lead with a card of the led suit. A joker lead imposes no obligation.
func MustFollowSuit(lead Card, hand []Card) bool {
	if lead.IsJoker() {
		return false
	}
	return HasSuit(hand, lead.Suit)
}

// CanPlayCard reports whether card is a legal answer to a single lead.
// A player who holds the led suit may only play that suit, a trump or a
// joker, and the card must beat the lead. A player without the led suit
// may play anything and loses the trick if the card does not beat it.
func CanPlayCard(lead, card Card, hand []Card, trump Suit) bool {
	if !MustFollowSuit(lead, hand) {
		return true
	}
	if card.Suit != lead.Suit && !card.IsTrump(trump) {
		return false
	}
	return CanBeat(lead, card, trump)
}

// ResponseWins decides whether the response play takes the trick.
func ResponseWins(lead, response Play, trump Suit) bool {
	switch {
	case lead.IsCombo() && response.IsCombo():
		return CanBeatComboByPosition(lead.Cards, response.Cards, trump)
	case lead.IsCombo():
		return false
	case response.IsCombo():
		if len(response.Cards) == 0 || len(lead.Cards) == 0 {
			return false
		}
		sorted := SortByStrength(response.Cards, trump)
		return CanBeat(lead.Cards[0], sorted[len(sorted)-1], trump)
	case lead.IsSingle() && response.IsSingle():
		return CanBeat(lead.Cards[0], response.Cards[0], trump)
	}
	return false
}

// SortByStrength returns a copy of cards ordered weakest first by
// CompareCards. Incomparable cards keep their relative order.
func SortByStrength(cards []Card, trump Suit) []Card {
	out := append([]Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool {
		return CompareCards(out[i], out[j], trump) < 0
	})
	return out
}

// SortHand orders a hand for display: side suits first, then trumps, then
// jokers, each group by ascending rank.
func SortHand(cards []Card, trump Suit) {
	group := func(c Card) int {
		switch {
		case c.IsJoker():
			return 6
		case c.IsTrump(trump):
			return 5
		}
		for i, s := range Suits {
			if c.Suit == s {
				return i
			}
		}
		return 4
	}
	sort.SliceStable(cards, func(i, j int) bool {
		gi, gj := group(cards[i]), group(cards[j])
		if gi != gj {
			return gi < gj
		}
		return RankIndex(cards[i].Rank) < RankIndex(cards[j].Rank)
	})
}
